// Package sqlite es el Record Store: SQLite embebido (modernc, puro Go)
// con el esquema y el seed de la tabla pets.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pet-lost-and-found/internal/domain/reports"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store es el único dueño del handle a la base. Se construye una vez en
// el composition root y se comparte; no hay estado a nivel de paquete.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica los pragmas vía EXEC.
// Una sola conexión viva por proceso: el motor serializa internamente
// y a esta escala no hace falta pool.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: mkdir: %v", reports.ErrStorageUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", reports.ErrStorageUnavailable, err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %s: %v", reports.ErrStorageUnavailable, p, err)
		}
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", reports.ErrStorageUnavailable, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Initialize es idempotente: migra el esquema (no-op si ya está al día)
// y siembra los datos demo solo si la tabla quedó vacía. Puede invocarse
// redundantemente desde varios callers sin duplicar esquema ni seed.
func (s *Store) Initialize(ctx context.Context) error {
	if s.db == nil {
		return reports.ErrStorageUnavailable
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("%w: migrate: %v", reports.ErrStorageUnavailable, err)
	}

	if err := s.seedIfEmpty(ctx); err != nil {
		return fmt.Errorf("%w: seed: %v", reports.ErrStorageUnavailable, err)
	}

	return nil
}

func (s *Store) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
