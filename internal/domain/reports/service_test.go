package reports_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pet-lost-and-found/internal/adapters/storage/memory"
	"pet-lost-and-found/internal/domain/reports"
)

func validInput() reports.Input {
	return reports.Input{
		Name:     "Buddy",
		Type:     reports.ReportTypeLost,
		Species:  reports.SpeciesDog,
		Breed:    "Pomeranian",
		Color:    "Orange and White",
		LastSeen: time.Date(2025, 11, 1, 14, 30, 0, 0, time.UTC),
		Location: "High Park, Toronto",
		Coordinates: reports.Coordinates{
			Latitude:  43.6465,
			Longitude: -79.4637,
		},
		Description: "Very friendly small dog.",
		Contact: reports.Contact{
			Name:  "John Doe",
			Email: "john.doe@email.com",
			Phone: "(416) 555-0123",
		},
	}
}

func TestService_CreateAndGet_RoundTrip(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	in := validInput()
	created, err := svc.Create(ctx, "u1", in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create must assign an id")
	}
	if created.UserID != "u1" {
		t.Fatalf("owner = %q, want u1", created.UserID)
	}
	if created.CreatedAt.IsZero() || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Fatalf("timestamps not initialized: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, created)
	}
}

func TestService_Create_DefaultsOwner(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())

	created, err := svc.Create(context.Background(), "  ", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != reports.DefaultOwnerID {
		t.Fatalf("owner = %q, want %q", created.UserID, reports.DefaultOwnerID)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*reports.Input)
	}{
		{"empty name", func(in *reports.Input) { in.Name = "  " }},
		{"bad type", func(in *reports.Input) { in.Type = "Stolen" }},
		{"bad species", func(in *reports.Input) { in.Species = "Bird" }},
		{"empty breed", func(in *reports.Input) { in.Breed = "" }},
		{"empty color", func(in *reports.Input) { in.Color = "" }},
		{"zero last seen", func(in *reports.Input) { in.LastSeen = time.Time{} }},
		{"empty location", func(in *reports.Input) { in.Location = "" }},
		{"empty description", func(in *reports.Input) { in.Description = "" }},
		{"empty contact name", func(in *reports.Input) { in.Contact.Name = "" }},
		{"bad email", func(in *reports.Input) { in.Contact.Email = "not-an-email" }},
		{"empty phone", func(in *reports.Input) { in.Contact.Phone = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			if _, err := svc.Create(ctx, "u1", in); !errors.Is(err, reports.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	// Nada debe haberse persistido.
	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store after failed creates, got %d rows", len(all))
	}
}

func TestService_Search_BlankEqualsListAll(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "u1", validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, _ := svc.ListAll(ctx)
	blank, err := svc.Search(ctx, "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(blank) != len(all) {
		t.Fatalf("blank search returned %d, listAll %d", len(blank), len(all))
	}
}

func TestService_Update_RefreshesUpdatedAtOnly(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := validInput()
	in.Name = "Buddy Updated"
	in.Color = "Brown"
	if err := svc.Update(ctx, created.ID, in); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Fatal("update must not change id")
	}
	if got.UserID != "u1" {
		t.Fatal("update must not change owner")
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must not change createdAt")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt must strictly advance: before=%v after=%v", created.UpdatedAt, got.UpdatedAt)
	}
	if got.Name != "Buddy Updated" || got.Color != "Brown" {
		t.Fatalf("fields not overwritten: %+v", got)
	}
}

func TestService_UpdateAndDelete_MissingIDAreNoOps(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	if err := svc.Update(ctx, "9999", validInput()); err != nil {
		t.Fatalf("update on missing id must be a no-op, got %v", err)
	}
	if err := svc.Delete(ctx, "9999"); err != nil {
		t.Fatalf("delete on missing id must be a no-op, got %v", err)
	}
}

func TestService_Nearby(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	highPark := validInput() // High Park, Toronto
	downtown := validInput()
	downtown.Name = "Max"
	downtown.Location = "Harbourfront, Toronto"
	downtown.Coordinates = reports.Coordinates{Latitude: 43.6426, Longitude: -79.3780}

	if _, err := svc.Create(ctx, "u1", highPark); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "u1", downtown); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Radio de 2km alrededor de Harbourfront: High Park (a ~7km) queda afuera.
	near, err := svc.Nearby(ctx, 43.6426, -79.3780, 2)
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(near) != 1 || near[0].Name != "Max" {
		t.Fatalf("expected only Max nearby, got %+v", near)
	}
	if near[0].DistanceMeters > 10 {
		t.Fatalf("distance to itself should be ~0, got %f", near[0].DistanceMeters)
	}

	// Radio amplio: los dos, ordenados por cercanía.
	near, err = svc.Nearby(ctx, 43.6426, -79.3780, 50)
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(near) != 2 || near[0].Name != "Max" {
		t.Fatalf("expected both ordered by distance, got %+v", near)
	}

	if _, err := svc.Nearby(ctx, 0, 0, -1); !errors.Is(err, reports.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative radius, got %v", err)
	}
}

func TestService_OwnerScoping(t *testing.T) {
	svc := reports.NewService(memory.NewReportsRepo())
	ctx := context.Background()

	a := validInput()
	b := validInput()
	b.Name = "Whiskers"
	b.Type = reports.ReportTypeFound
	b.Species = reports.SpeciesCat

	created, err := svc.Create(ctx, "u1", a)
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := svc.Create(ctx, "u2", b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	mine, err := svc.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("listByOwner: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("listByOwner(u1) = %+v, want exactly the u1 report", mine)
	}

	// El subconjunto mantiene el orden relativo de ListAll.
	all, _ := svc.ListAll(ctx)
	var filtered []string
	for _, p := range all {
		if p.UserID == "u1" {
			filtered = append(filtered, p.ID)
		}
	}
	if len(filtered) != 1 || filtered[0] != mine[0].ID {
		t.Fatalf("owner subset out of order: %v vs %v", filtered, mine)
	}

	if strings.TrimSpace(mine[0].UserID) != "u1" {
		t.Fatalf("unexpected owner %q", mine[0].UserID)
	}
}
