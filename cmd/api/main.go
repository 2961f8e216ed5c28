package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"pet-lost-and-found/internal/adapters/auth/dummy"
	"pet-lost-and-found/internal/adapters/auth/httpapi"
	"pet-lost-and-found/internal/adapters/storage/sqlite"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/ports/auth"
	"pet-lost-and-found/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional: en dev carga config local, en prod no existe.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Provider de credenciales por configuración: dummy (usuarios demo)
	// o http (API real).
	var provider auth.CredentialProvider
	switch os.Getenv("AUTH_PROVIDER") {
	case "http":
		p, err := httpapi.NewProvider(httpapi.Config{
			BaseURL: os.Getenv("AUTH_BASE_URL"),
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err != nil {
			log.Error("auth provider config invalid", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		provider = p
	default:
		provider = dummy.NewProvider()
	}

	// Store SQLite si hay DB_PATH; si no, repo in-memory (dev).
	var store *sqlite.Store
	if path := os.Getenv("DB_PATH"); path != "" {
		s, err := sqlite.Open(path)
		if err != nil {
			log.Error("cannot open database", map[string]any{"path": path, "error": err.Error()})
			os.Exit(1)
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.Initialize(ctx); err != nil {
			cancel()
			log.Error("cannot initialize database", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		cancel()

		store = s
		log.Info("database ready", map[string]any{"path": path})
	}

	r := router.NewRouter(router.Options{
		Verifier: provider,
		Provider: provider,
		Store:    store,
		Log:      log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
