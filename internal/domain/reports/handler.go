package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-lost-and-found/internal/middleware"
	"pet-lost-and-found/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Post("/", createReportHandler(svc))
		rr.Get("/", listReportsHandler(svc, log))
		rr.Get("/nearby", nearbyReportsHandler(svc, log))

		rr.Get("/{reportID}", getReportHandler(svc))
		rr.Put("/{reportID}", updateReportHandler(svc))
		rr.Delete("/{reportID}", deleteReportHandler(svc))
	})

	// "Mis publicaciones": reportes del usuario en sesión.
	r.Get("/me/reports", listMyReportsHandler(svc, log))
}

type coordinatesPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type contactPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type foundDetailsPayload struct {
	FoundDate string `json:"foundDate"`
	Size      string `json:"size"`
	Condition string `json:"condition"`
	TempCare  string `json:"tempCare"`
	FreeText  string `json:"freeText"`
}

type reportRequest struct {
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Species     string             `json:"species"`
	Breed       string             `json:"breed"`
	Color       string             `json:"color"`
	LastSeen    string             `json:"lastSeen"` // RFC3339
	Location    string             `json:"location"`
	Coordinates coordinatesPayload `json:"coordinates"`
	Description string             `json:"description"`
	// Solo para reportes Found: si viene y description está vacío,
	// se sintetiza el string compuesto heredado.
	FoundDetails *foundDetailsPayload `json:"foundDetails"`
	Contact      contactPayload       `json:"contact"`
	ImageURI     string               `json:"imageUri"`
}

// reportResponse es el shape que consumían las pantallas de la app:
// id opaco string, coordinates y contact anidados, claves camelCase.
type reportResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Type         ReportType           `json:"type"`
	Species      Species              `json:"species"`
	Breed        string               `json:"breed"`
	Color        string               `json:"color"`
	LastSeen     time.Time            `json:"lastSeen"`
	Location     string               `json:"location"`
	Coordinates  coordinatesPayload   `json:"coordinates"`
	Description  string               `json:"description"`
	FoundDetails *foundDetailsPayload `json:"foundDetails,omitempty"`
	Contact      contactPayload       `json:"contact"`
	ImageURI     string               `json:"imageUri,omitempty"`
	UserID       string               `json:"userId"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

type nearbyResponse struct {
	reportResponse
	DistanceMeters float64 `json:"distanceMeters"`
}

func (req reportRequest) toInput() (Input, error) {
	var lastSeen time.Time
	if strings.TrimSpace(req.LastSeen) != "" {
		t, err := time.Parse(time.RFC3339, req.LastSeen)
		if err != nil {
			return Input{}, errors.New("lastSeen must be RFC3339")
		}
		lastSeen = t
	}

	description := req.Description
	if ReportType(req.Type) == ReportTypeFound && strings.TrimSpace(description) == "" && req.FoundDetails != nil {
		description = EncodeFoundDetails(FoundDetails{
			FoundDate: req.FoundDetails.FoundDate,
			Size:      req.FoundDetails.Size,
			Condition: req.FoundDetails.Condition,
			TempCare:  req.FoundDetails.TempCare,
			FreeText:  req.FoundDetails.FreeText,
		})
	}

	return Input{
		Name:     req.Name,
		Type:     ReportType(req.Type),
		Species:  Species(req.Species),
		Breed:    req.Breed,
		Color:    req.Color,
		LastSeen: lastSeen,
		Location: req.Location,
		Coordinates: Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		},
		Description: description,
		Contact: Contact{
			Name:  req.Contact.Name,
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
		ImageURI: req.ImageURI,
	}, nil
}

// currentUserID resuelve el dueño efectivo: claims si hay sesión,
// el placeholder demo si no (la app original hacía lo mismo).
func currentUserID(r *http.Request) string {
	if claims, ok := middleware.GetClaims(r.Context()); ok && strings.TrimSpace(claims.UserID) != "" {
		return claims.UserID
	}
	return DefaultOwnerID
}

// createReportHandler godoc
// @Summary Crear reporte de mascota perdida/encontrada
// @Description Crea un reporte Lost o Found. Para Found se puede mandar foundDetails y el backend sintetiza la description compuesta. El dueño sale de la sesión (Bearer o X-Debug-User-ID); sin sesión se usa el usuario demo.
// @Tags reports
// @Accept json
// @Produce json
// @Param payload body reportRequest true "Datos del reporte; lastSeen en RFC3339"
// @Success 201 {object} reportResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Router /reports [post]
func createReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), currentUserID(r), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(created))
	}
}

// listReportsHandler godoc
// @Summary Listar/buscar reportes
// @Description Sin query devuelve todo, más nuevo primero. Con ?q= filtra por substring case-insensitive en name/species/breed/location/type. Fallas de lectura degradan a lista vacía.
// @Tags reports
// @Produce json
// @Param q query string false "texto a buscar"
// @Success 200 {array} reportResponse
// @Router /reports [get]
func listReportsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			// Política heredada: las pantallas de listado prefieren
			// "sin datos" antes que un error. Queda en el log.
			log.Warn("list reports failed, degrading to empty", map[string]any{"error": err.Error()})
			items = nil
		}

		writeJSON(w, http.StatusOK, toReportResponses(items))
	}
}

// listMyReportsHandler godoc
// @Summary Listar mis reportes
// @Description Reportes del usuario en sesión (o del usuario demo sin sesión), más nuevo primero.
// @Tags reports
// @Produce json
// @Success 200 {array} reportResponse
// @Router /me/reports [get]
func listMyReportsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), currentUserID(r))
		if err != nil {
			log.Warn("list my reports failed, degrading to empty", map[string]any{"error": err.Error()})
			items = nil
		}

		writeJSON(w, http.StatusOK, toReportResponses(items))
	}
}

// nearbyReportsHandler godoc
// @Summary Reportes cerca de un punto
// @Description Filtra por distancia de círculo máximo al punto dado, orden por cercanía.
// @Tags reports
// @Produce json
// @Param lat query number true "latitud"
// @Param lng query number true "longitud"
// @Param radius_km query number true "radio en km"
// @Success 200 {array} nearbyResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Router /reports/nearby [get]
func nearbyReportsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		radius, errRad := strconv.ParseFloat(q.Get("radius_km"), 64)
		if errLat != nil || errLng != nil || errRad != nil {
			http.Error(w, "lat, lng and radius_km must be numeric", http.StatusBadRequest)
			return
		}

		items, err := svc.Nearby(r.Context(), lat, lng, radius)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Warn("nearby reports failed, degrading to empty", map[string]any{"error": err.Error()})
			items = nil
		}

		out := make([]nearbyResponse, 0, len(items))
		for _, n := range items {
			out = append(out, nearbyResponse{
				reportResponse: toReportResponse(n.PetReport),
				DistanceMeters: n.DistanceMeters,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getReportHandler godoc
// @Summary Detalle de un reporte
// @Tags reports
// @Produce json
// @Param reportID path string true "ID del reporte"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string "report not found"
// @Router /reports/{reportID} [get]
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "report not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toReportResponse(p))
	}
}

// updateReportHandler godoc
// @Summary Actualizar un reporte
// @Description Sobreescribe todos los campos mutables y refresca updatedAt. Un id inexistente es no-op (204 igual). Solo el dueño puede editar.
// @Tags reports
// @Accept json
// @Param reportID path string true "ID del reporte"
// @Param payload body reportRequest true "Campos nuevos completos"
// @Success 204 {string} string ""
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 403 {string} string "forbidden"
// @Router /reports/{reportID} [put]
func updateReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := chi.URLParam(r, "reportID")

		// Chequeo de dueño solo si el reporte existe: un id inexistente
		// sigue el contrato no-op y no filtra existencia.
		if current, err := svc.GetByID(r.Context(), reportID); err == nil {
			if current.UserID != currentUserID(r) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		var req reportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := svc.Update(r.Context(), reportID, in); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteReportHandler godoc
// @Summary Borrar un reporte
// @Description Borrado inmediato e irreversible. Un id inexistente es no-op (204 igual). Solo el dueño puede borrar.
// @Tags reports
// @Param reportID path string true "ID del reporte"
// @Success 204 {string} string ""
// @Failure 403 {string} string "forbidden"
// @Router /reports/{reportID} [delete]
func deleteReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := chi.URLParam(r, "reportID")

		if current, err := svc.GetByID(r.Context(), reportID); err == nil {
			if current.UserID != currentUserID(r) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		if err := svc.Delete(r.Context(), reportID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConstraint):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrStorageUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toReportResponse(p PetReport) reportResponse {
	resp := reportResponse{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		Species:  p.Species,
		Breed:    p.Breed,
		Color:    p.Color,
		LastSeen: p.LastSeen,
		Location: p.Location,
		Coordinates: coordinatesPayload{
			Latitude:  p.Coordinates.Latitude,
			Longitude: p.Coordinates.Longitude,
		},
		Description: p.Description,
		Contact: contactPayload{
			Name:  p.Contact.Name,
			Email: p.Contact.Email,
			Phone: p.Contact.Phone,
		},
		ImageURI:  p.ImageURI,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	// Para Found exponemos también los sub-campos parseados; si la
	// description no calza con el formato, van vacíos con el texto
	// completo en freeText (degradación documentada).
	if p.Type == ReportTypeFound {
		d, _ := ParseFoundDetails(p.Description)
		resp.FoundDetails = &foundDetailsPayload{
			FoundDate: d.FoundDate,
			Size:      d.Size,
			Condition: d.Condition,
			TempCare:  d.TempCare,
			FreeText:  d.FreeText,
		}
	}

	return resp
}

func toReportResponses(items []PetReport) []reportResponse {
	out := make([]reportResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toReportResponse(p))
	}
	return out
}

// writeJSON duplicado a propósito por módulo: con un solo dominio
// todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
