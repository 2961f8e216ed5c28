package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"pet-lost-and-found/internal/adapters/storage/memory"
	"pet-lost-and-found/internal/adapters/storage/sqlite"
	"pet-lost-and-found/internal/domain/reports"
	"pet-lost-and-found/internal/middleware"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/ports/auth"

	_ "pet-lost-and-found/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Verifier resuelve Bearer tokens. Puede ser nil (modo dev:
	// X-Debug-User-ID inyecta el usuario).
	Verifier auth.AuthVerifier

	// Provider atiende /auth/login y /auth/verify. Puede ser nil
	// (sin endpoints de auth, solo modo dev).
	Provider auth.CredentialProvider

	// Opcional: si viene, repo sobre SQLite. Si no, in-memory.
	Store *sqlite.Store

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var repo reports.Repository
	if opts.Store != nil {
		repo = sqlite.NewReportsRepo(opts.Store)
		log.Info("using sqlite reports repo", nil)
	} else {
		repo = memory.NewReportsRepo()
		log.Info("using in-memory reports repo", nil)
	}

	svc := reports.NewService(repo)
	reports.RegisterRoutes(r, svc, log)

	if opts.Provider != nil {
		r.Post("/auth/login", loginHandler(opts.Provider, log))
		r.Post("/auth/verify", verifyHandler(opts.Provider))
	}

	return r
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// loginHandler godoc
// @Summary Login con email y password
// @Description Contra el provider configurado (dummy en demo, API real en prod).
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 401 {string} string "invalid credentials"
// @Router /auth/login [post]
func loginHandler(provider auth.CredentialProvider, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		session, err := provider.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			// Mismo 401 para usuario inexistente y password mala:
			// no enumeramos cuentas.
			log.Warn("login failed", map[string]any{"email": req.Email})
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"user": userResponse{
				ID:    session.User.UserID,
				Email: session.User.Email,
				Name:  session.User.Name,
			},
			"token": session.Token,
		})
	}
}

// verifyHandler godoc
// @Summary Verificar un bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} object
// @Failure 401 {string} string "invalid token"
// @Router /auth/verify [post]
func verifyHandler(provider auth.CredentialProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}

		claims, err := provider.Verify(r.Context(), token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"user": userResponse{
				ID:    claims.UserID,
				Email: claims.Email,
				Name:  claims.Name,
			},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
