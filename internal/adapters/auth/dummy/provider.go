// Package dummy implementa auth.CredentialProvider con los usuarios demo
// de la app original. Sin red, sin hash de passwords: es el modo demo.
package dummy

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-lost-and-found/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// LegacyToken es el bearer fijo que la app demo repartía a todo el mundo.
// Se sigue aceptando y resuelve al primer usuario demo.
const LegacyToken = "dummy_jwt_token_12345"

var demoUsers = []auth.Claims{
	{UserID: "1", Email: "admin@test.com", Name: "Admin User"},
	{UserID: "2", Email: "user@test.com", Name: "Test User"},
	{UserID: "3", Email: "nasim@prof.com", Name: "Demo User"},
	{UserID: "4", Email: "demo@test.com", Name: "Demo User"},
}

type Provider struct {
	mu       sync.RWMutex
	sessions map[string]auth.Claims // token -> user
}

func NewProvider() *Provider {
	return &Provider{
		sessions: make(map[string]auth.Claims),
	}
}

// Login aplica la regla de passwords heredada: "12345678" para el profe,
// "password" para el resto. Emite un token de sesión nuevo por login.
func (p *Provider) Login(ctx context.Context, email, password string) (auth.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user auth.Claims
	found := false
	for _, u := range demoUsers {
		if u.Email == email {
			user = u
			found = true
			break
		}
	}
	if !found {
		return auth.Session{}, ErrUserNotFound
	}

	valid := (email == "nasim@prof.com" && password == "12345678") ||
		(email != "nasim@prof.com" && password == "password")
	if !valid {
		return auth.Session{}, ErrInvalidPassword
	}

	token := uuid.NewString()

	p.mu.Lock()
	p.sessions[token] = user
	p.mu.Unlock()

	return auth.Session{User: user, Token: token}, nil
}

func (p *Provider) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	if token == LegacyToken {
		return demoUsers[0], nil
	}

	p.mu.RLock()
	user, ok := p.sessions[token]
	p.mu.RUnlock()

	if !ok {
		return auth.Claims{}, ErrInvalidToken
	}
	return user, nil
}
