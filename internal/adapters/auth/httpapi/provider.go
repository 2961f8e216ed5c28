// Package httpapi implementa auth.CredentialProvider contra una API de
// autenticación remota (el "real provider"). El contrato es el de la app
// original: POST /api/auth/login y POST /api/auth/verify.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-lost-and-found/internal/platform/httpclient"
	"pet-lost-and-found/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth api not configured")
	ErrUnauthorized  = errors.New("auth api unauthorized")
	ErrUpstream      = errors.New("auth api upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header donde va la API key. Default "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Provider struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewProvider(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}

	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	return &Provider{
		client:       c,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u userPayload) claims() (auth.Claims, error) {
	id := strings.TrimSpace(u.ID)
	if id == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user id", ErrUpstream)
	}
	return auth.Claims{
		UserID: id,
		Email:  strings.TrimSpace(u.Email),
		Name:   strings.TrimSpace(u.Name),
	}, nil
}

func (p *Provider) headers() map[string]string {
	h := map[string]string{}
	if p.apiKey != "" {
		h[p.apiKeyHeader] = p.apiKey
	}
	return h
}

func (p *Provider) Login(ctx context.Context, email, password string) (auth.Session, error) {
	if p == nil || p.client == nil {
		return auth.Session{}, ErrNotConfigured
	}

	var out struct {
		User  userPayload `json:"user"`
		Token string      `json:"token"`
	}

	err := p.client.DoJSON(ctx, http.MethodPost, "/api/auth/login", p.headers(),
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return auth.Session{}, mapHTTPError(err)
	}

	user, err := out.User.claims()
	if err != nil {
		return auth.Session{}, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return auth.Session{}, fmt.Errorf("%w: response missing token", ErrUpstream)
	}

	return auth.Session{User: user, Token: out.Token}, nil
}

func (p *Provider) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if p == nil || p.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	headers := p.headers()
	headers["Authorization"] = "Bearer " + token

	var out struct {
		User userPayload `json:"user"`
	}

	if err := p.client.DoJSON(ctx, http.MethodPost, "/api/auth/verify", headers, nil, &out); err != nil {
		return auth.Claims{}, mapHTTPError(err)
	}

	return out.User.claims()
}

func mapHTTPError(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		switch he.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		default:
			return fmt.Errorf("%w: status=%d", ErrUpstream, he.StatusCode)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
