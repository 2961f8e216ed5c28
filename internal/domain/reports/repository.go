package reports

import "context"

// Repository es el contrato de acceso a datos sobre la tabla pets.
// Orden en listados: created_at DESC, id DESC (más nuevo primero, estable).
type Repository interface {
	// Create persiste el reporte y devuelve el id asignado por el store.
	Create(ctx context.Context, r PetReport) (string, error)
	GetByID(ctx context.Context, id string) (PetReport, error)
	ListAll(ctx context.Context) ([]PetReport, error)
	ListByOwner(ctx context.Context, ownerID string) ([]PetReport, error)
	// Search: substring case-insensitive en name/species/breed/location/type.
	// Query vacío o solo espacios equivale a ListAll.
	Search(ctx context.Context, query string) ([]PetReport, error)
	// Update sobreescribe los campos mutables y refresca updated_at.
	// created_at no se toca. Id inexistente => no-op sin error.
	Update(ctx context.Context, r PetReport) error
	// Delete es inmediato e irreversible; id inexistente => no-op.
	Delete(ctx context.Context, id string) error
}
