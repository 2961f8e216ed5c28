package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-lost-and-found/internal/domain/reports"
)

func testReport(owner string) reports.PetReport {
	now := time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC)
	return reports.PetReport{
		UserID:   owner,
		Name:     "Rocky",
		Type:     reports.ReportTypeLost,
		Species:  reports.SpeciesDog,
		Breed:    "Beagle",
		Color:    "Tricolor",
		LastSeen: time.Date(2025, 11, 4, 18, 0, 0, 0, time.UTC),
		Location: "Trinity Bellwoods, Toronto",
		Coordinates: reports.Coordinates{
			Latitude:  43.6479,
			Longitude: -79.4197,
		},
		Description: "Answers to Rocky, chipped.",
		Contact: reports.Contact{
			Name:  "Ana Pérez",
			Email: "ana.perez@email.com",
			Phone: "(416) 555-9999",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestReportsRepo_UpdateWithBlankOwnerPreservesIdentity(t *testing.T) {
	repo := NewReportsRepo()
	ctx := context.Background()

	original := testReport("u1")
	id, err := repo.Create(ctx, original)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// El caller de Update no trae dueño ni created_at (no son mutables):
	// el repo debe restaurarlos del registro vigente, no rechazarlos.
	updated := testReport("")
	updated.ID = id
	updated.Name = "Rocky II"
	updated.CreatedAt = time.Time{}
	updated.UpdatedAt = original.UpdatedAt.Add(time.Second)

	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Rocky II" {
		t.Fatalf("fields not overwritten: %+v", got)
	}
	if got.UserID != "u1" {
		t.Fatalf("owner = %q, want u1", got.UserID)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("createdAt changed: %v -> %v", original.CreatedAt, got.CreatedAt)
	}
}

func TestReportsRepo_UpdateStillEnforcesConstraints(t *testing.T) {
	repo := NewReportsRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, testReport("u1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := testReport("")
	bad.ID = id
	bad.Species = "Bird"
	if err := repo.Update(ctx, bad); !errors.Is(err, reports.ErrConstraint) {
		t.Fatalf("expected ErrConstraint for species, got %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Species != reports.SpeciesDog {
		t.Fatalf("failed update must not persist: %+v", got)
	}
}
