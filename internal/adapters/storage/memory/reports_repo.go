// Package memory es el repo in-memory para dev y tests. Imita la
// semántica del store SQLite: ids autoincrementales, orden más nuevo
// primero, update/delete no-op sobre ids inexistentes.
package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"pet-lost-and-found/internal/domain/reports"
)

type reportsRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[string]reports.PetReport
}

func NewReportsRepo() reports.Repository {
	return &reportsRepo{
		byID: make(map[string]reports.PetReport),
	}
}

func (r *reportsRepo) Create(ctx context.Context, p reports.PetReport) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// El CHECK del esquema real también aplica acá, para que los tests
	// contra memoria vean la misma taxonomía de errores.
	if err := checkConstraints(p); err != nil {
		return "", err
	}

	r.seq++
	id := strconv.FormatInt(r.seq, 10)
	p.ID = id
	r.byID[id] = p
	return id, nil
}

func (r *reportsRepo) GetByID(ctx context.Context, id string) (reports.PetReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return reports.PetReport{}, reports.ErrNotFound
	}
	return p, nil
}

func (r *reportsRepo) ListAll(ctx context.Context) ([]reports.PetReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(reports.PetReport) bool { return true }), nil
}

func (r *reportsRepo) ListByOwner(ctx context.Context, ownerID string) ([]reports.PetReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(p reports.PetReport) bool {
		return p.UserID == ownerID
	}), nil
}

func (r *reportsRepo) Search(ctx context.Context, query string) ([]reports.PetReport, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.ListAll(ctx)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(p reports.PetReport) bool {
		for _, field := range []string{
			p.Name, string(p.Species), p.Breed, p.Location, string(p.Type),
		} {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}), nil
}

func (r *reportsRepo) Update(ctx context.Context, p reports.PetReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[p.ID]
	if !ok {
		return nil // no-op, igual que el store real
	}

	// Dueño y created_at no son mutables: se restauran antes de validar,
	// porque el caller no los trae (el UPDATE real tampoco los toca).
	p.UserID = current.UserID
	p.CreatedAt = current.CreatedAt

	if err := checkConstraints(p); err != nil {
		return err
	}

	r.byID[p.ID] = p
	return nil
}

func (r *reportsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, strings.TrimSpace(id))
	return nil
}

// snapshot devuelve los reportes que pasan el filtro, ordenados
// created_at DESC con id DESC de desempate (ids numéricos).
func (r *reportsRepo) snapshot(keep func(reports.PetReport) bool) []reports.PetReport {
	out := make([]reports.PetReport, 0)
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		a, _ := strconv.ParseInt(out[i].ID, 10, 64)
		b, _ := strconv.ParseInt(out[j].ID, 10, 64)
		return a > b
	})
	return out
}

func checkConstraints(p reports.PetReport) error {
	if !reports.ValidReportType(p.Type) {
		return &reports.ConstraintError{Field: "type"}
	}
	if !reports.ValidSpecies(p.Species) {
		return &reports.ConstraintError{Field: "species"}
	}
	for field, v := range map[string]string{
		"name": p.Name, "breed": p.Breed, "color": p.Color,
		"location": p.Location, "contact_name": p.Contact.Name,
		"contact_email": p.Contact.Email, "contact_phone": p.Contact.Phone,
		"user_id": p.UserID,
	} {
		if v == "" {
			return &reports.ConstraintError{Field: field}
		}
	}
	return nil
}
