package reports

// ReportType define los tipos de reporte soportados.
// @Enum Lost, Found
type ReportType string

const (
	ReportTypeLost  ReportType = "Lost"
	ReportTypeFound ReportType = "Found"
)

func ValidReportType(t ReportType) bool {
	return t == ReportTypeLost || t == ReportTypeFound
}

// Species define las especies soportadas.
// @Enum Dog, Cat
type Species string

const (
	SpeciesDog Species = "Dog"
	SpeciesCat Species = "Cat"
)

func ValidSpecies(s Species) bool {
	return s == SpeciesDog || s == SpeciesCat
}

// DefaultOwnerID es el usuario placeholder cuando no hay sesión real
// (heredado de la app demo: todo lo no autenticado se atribuye a él).
const DefaultOwnerID = "current_user"
