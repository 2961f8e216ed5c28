package reports

import "time"

// Coordinates es el par lat/lng del último avistamiento.
// No validamos rango geográfico: el mapa consume lo que haya.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Contact agrupa los datos de contacto del reportante.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// PetReport representa un reporte de mascota perdida o encontrada.
// El ID lo asigna el store (autoincrement) y se expone como string opaco.
type PetReport struct {
	ID     string
	UserID string

	Name    string
	Type    ReportType // Lost, Found
	Species Species    // Dog, Cat
	Breed   string
	Color   string

	LastSeen    time.Time
	Location    string
	Coordinates Coordinates

	Description string
	Contact     Contact

	// ImageURI es opcional; vacío => la UI usa un placeholder.
	ImageURI string

	CreatedAt time.Time
	UpdatedAt time.Time
}
