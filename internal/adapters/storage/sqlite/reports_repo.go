package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-lost-and-found/internal/domain/reports"
)

// selectColumns en el orden que consume scanReport.
const selectColumns = `
	id, name, type, species, breed, color, last_seen, location,
	latitude, longitude, description, contact_name, contact_email,
	contact_phone, image_uri, user_id, created_at, updated_at
`

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(store *Store) *ReportsRepo {
	return &ReportsRepo{db: store.DB()}
}

func (r *ReportsRepo) Create(ctx context.Context, p reports.PetReport) (string, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			name, type, species, breed, color, last_seen, location,
			latitude, longitude, description, contact_name, contact_email,
			contact_phone, image_uri, user_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Name, string(p.Type), string(p.Species), p.Breed, p.Color,
		formatTime(p.LastSeen), p.Location,
		p.Coordinates.Latitude, p.Coordinates.Longitude,
		p.Description, p.Contact.Name, p.Contact.Email, p.Contact.Phone,
		nullable(p.ImageURI), p.UserID,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return "", wrapWriteError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *ReportsRepo) GetByID(ctx context.Context, id string) (reports.PetReport, error) {
	numID, err := parseID(id)
	if err != nil {
		return reports.PetReport{}, reports.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM pets WHERE id = ?`, numID)

	p, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reports.PetReport{}, reports.ErrNotFound
		}
		return reports.PetReport{}, err
	}
	return p, nil
}

func (r *ReportsRepo) ListAll(ctx context.Context) ([]reports.PetReport, error) {
	return r.list(ctx,
		`SELECT `+selectColumns+` FROM pets ORDER BY created_at DESC, id DESC`)
}

func (r *ReportsRepo) ListByOwner(ctx context.Context, ownerID string) ([]reports.PetReport, error) {
	return r.list(ctx,
		`SELECT `+selectColumns+` FROM pets WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		ownerID)
}

func (r *ReportsRepo) Search(ctx context.Context, query string) ([]reports.PetReport, error) {
	if strings.TrimSpace(query) == "" {
		return r.ListAll(ctx)
	}

	q := "%" + escapeLike(strings.ToLower(query)) + "%"
	return r.list(ctx, `
		SELECT `+selectColumns+`
		FROM pets
		WHERE
			LOWER(name) LIKE ? ESCAPE '\' OR
			LOWER(species) LIKE ? ESCAPE '\' OR
			LOWER(breed) LIKE ? ESCAPE '\' OR
			LOWER(location) LIKE ? ESCAPE '\' OR
			LOWER(type) LIKE ? ESCAPE '\'
		ORDER BY created_at DESC, id DESC
	`, q, q, q, q, q)
}

// Update no toca created_at y deja rows-affected cero como éxito: el
// contrato dice que un id inexistente es un no-op, no un error.
func (r *ReportsRepo) Update(ctx context.Context, p reports.PetReport) error {
	numID, err := parseID(p.ID)
	if err != nil {
		return nil
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE pets SET
			name = ?, type = ?, species = ?, breed = ?, color = ?,
			last_seen = ?, location = ?, latitude = ?, longitude = ?,
			description = ?, contact_name = ?, contact_email = ?,
			contact_phone = ?, image_uri = ?, updated_at = ?
		WHERE id = ?
	`,
		p.Name, string(p.Type), string(p.Species), p.Breed, p.Color,
		formatTime(p.LastSeen), p.Location,
		p.Coordinates.Latitude, p.Coordinates.Longitude,
		p.Description, p.Contact.Name, p.Contact.Email, p.Contact.Phone,
		nullable(p.ImageURI), formatTime(p.UpdatedAt),
		numID,
	)
	if err != nil {
		return wrapWriteError(err)
	}
	return nil
}

func (r *ReportsRepo) Delete(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		// Id no numérico: no puede existir, mismo no-op.
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, numID); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

func (r *ReportsRepo) list(ctx context.Context, query string, args ...any) ([]reports.PetReport, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.PetReport, 0)
	for rows.Next() {
		// Cualquier fila inmapeable tumba el listado completo: nunca
		// devolvemos una lista truncada.
		p, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport es la mitad fila→record del mapeo: columnas planas a
// Coordinates y Contact anidados, id numérico a string opaco.
func scanReport(row rowScanner) (reports.PetReport, error) {
	var (
		id                   int64
		typ, species         string
		description          sql.NullString
		imageURI             sql.NullString
		lastSeen             string
		createdAt, updatedAt string
		p                    reports.PetReport
	)

	err := row.Scan(
		&id, &p.Name, &typ, &species, &p.Breed, &p.Color,
		&lastSeen, &p.Location,
		&p.Coordinates.Latitude, &p.Coordinates.Longitude,
		&description, &p.Contact.Name, &p.Contact.Email, &p.Contact.Phone,
		&imageURI, &p.UserID, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reports.PetReport{}, err
		}
		return reports.PetReport{}, fmt.Errorf("%w: %v", reports.ErrMapping, err)
	}

	p.ID = strconv.FormatInt(id, 10)
	p.Type = reports.ReportType(typ)
	p.Species = reports.Species(species)
	p.Description = description.String
	p.ImageURI = imageURI.String

	if p.LastSeen, err = parseTime("last_seen", lastSeen); err != nil {
		return reports.PetReport{}, err
	}
	if p.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return reports.PetReport{}, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return reports.PetReport{}, err
	}

	return p, nil
}

// formatTime persiste en RFC3339 con nanos: "updated_at estrictamente
// creciente" no sobrevive a un redondeo a segundos.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime acepta RFC3339 y el formato sin zona que traen los seeds
// heredados ('2025-11-01T14:30:00').
func parseTime(column, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: column %s: cannot parse %q", reports.ErrMapping, column, value)
}

func parseID(id string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(id), 10, 64)
}

func nullable(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// wrapWriteError traduce los errores del motor a la taxonomía del
// dominio. El driver no expone códigos tipados estables, así que vamos
// por el mensaje ("NOT NULL constraint failed: pets.name", "CHECK
// constraint failed: ...").
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "constraint failed") {
		return &reports.ConstraintError{
			Field: constraintField(err.Error()),
			Cause: err,
		}
	}
	return err
}

// constraintField extrae la columna ofensora del mensaje del motor
// ("NOT NULL constraint failed: pets.name"), cuando viene.
func constraintField(msg string) string {
	_, after, found := strings.Cut(msg, "pets.")
	if !found {
		return ""
	}
	field := after
	if i := strings.IndexAny(after, " ,)"); i >= 0 {
		field = after[:i]
	}
	return field
}
