package reports

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// emailPattern es deliberadamente laxo: misma regla que el form original.
// El teléfono no se valida (decisión heredada).
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input son los campos que el caller controla al crear/actualizar.
// id, created_at y updated_at los maneja la capa de datos.
type Input struct {
	Name        string
	Type        ReportType
	Species     Species
	Breed       string
	Color       string
	LastSeen    time.Time
	Location    string
	Coordinates Coordinates
	Description string
	Contact     Contact
	ImageURI    string
}

// validate aplica las reglas que en la app original vivían en los forms.
// El store refuerza NOT NULL y los CHECK, pero no queremos llegar ahí.
func validate(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if !ValidReportType(in.Type) {
		return fmt.Errorf("%w: type must be Lost or Found", ErrInvalidInput)
	}
	if !ValidSpecies(in.Species) {
		return fmt.Errorf("%w: species must be Dog or Cat", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Breed) == "" {
		return fmt.Errorf("%w: breed required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Color) == "" {
		return fmt.Errorf("%w: color required", ErrInvalidInput)
	}
	if in.LastSeen.IsZero() {
		return fmt.Errorf("%w: last_seen required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Contact.Name) == "" {
		return fmt.Errorf("%w: contact name required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Contact.Email)) {
		return fmt.Errorf("%w: contact email invalid", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Contact.Phone) == "" {
		return fmt.Errorf("%w: contact phone required", ErrInvalidInput)
	}
	return nil
}

func fromInput(in Input, ownerID string, now time.Time) PetReport {
	return PetReport{
		UserID:      ownerID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Species:     in.Species,
		Breed:       strings.TrimSpace(in.Breed),
		Color:       strings.TrimSpace(in.Color),
		LastSeen:    in.LastSeen,
		Location:    strings.TrimSpace(in.Location),
		Coordinates: in.Coordinates,
		Description: strings.TrimSpace(in.Description),
		Contact: Contact{
			Name:  strings.TrimSpace(in.Contact.Name),
			Email: strings.TrimSpace(in.Contact.Email),
			Phone: strings.TrimSpace(in.Contact.Phone),
		},
		ImageURI:  strings.TrimSpace(in.ImageURI),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Create valida, persiste y devuelve el reporte con su id asignado.
// ownerID vacío => DefaultOwnerID (no hay sesión real en modo demo).
func (s *Service) Create(ctx context.Context, ownerID string, in Input) (PetReport, error) {
	if err := validate(in); err != nil {
		return PetReport{}, err
	}

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		ownerID = DefaultOwnerID
	}

	r := fromInput(in, ownerID, s.now())
	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return PetReport{}, err
	}
	r.ID = id
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (PetReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PetReport{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]PetReport, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]PetReport, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		ownerID = DefaultOwnerID
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Search(ctx context.Context, query string) ([]PetReport, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.ListAll(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Update sobreescribe los campos mutables del reporte id.
// Id inexistente => no-op (contrato heredado: el caller no puede asumir
// que la existencia fue verificada).
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	if err := validate(in); err != nil {
		return err
	}

	r := fromInput(in, "", s.now())
	r.ID = id
	return s.repo.Update(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	return s.repo.Delete(ctx, id)
}

// NearbyReport es un reporte más su distancia al punto consultado.
type NearbyReport struct {
	PetReport
	DistanceMeters float64
}

// Nearby filtra por distancia de círculo máximo al punto (lat, lng).
// Escaneo lineal sobre ListAll: a esta escala no hay índice espacial.
func (s *Service) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyReport, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius_km must be positive", ErrInvalidInput)
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	center := orb.Point{lng, lat}
	out := make([]NearbyReport, 0)
	for _, r := range all {
		d := geo.Distance(center, orb.Point{r.Coordinates.Longitude, r.Coordinates.Latitude})
		if d <= radiusKm*1000 {
			out = append(out, NearbyReport{PetReport: r, DistanceMeters: d})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceMeters < out[j].DistanceMeters
	})
	return out, nil
}
