package listings

import (
	"encoding/json"
	"errors"
	"net/http"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/middleware"
	"dog-sitters/internal/platform/logger"
	"dog-sitters/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// SnapshotSource es lo único que el listado necesita del catálogo.
type SnapshotSource interface {
	Current() catalog.Snapshot
}

type Deps struct {
	Catalog SnapshotSource
	Manager *Manager
	Log     logger.Logger
	Metrics *metrics.Manager
}

func RegisterRoutes(r chi.Router, d Deps) {
	r.Get("/sitters", listSittersHandler(d))
	r.Get("/requests", listRequestsHandler(d))
	r.Get("/catalog/meta", catalogMetaHandler())

	// Estado de búsqueda guardado del usuario
	r.Route("/me/query", func(qr chi.Router) {
		qr.Get("/", getQueryHandler(d))
		qr.Put("/search", setSearchHandler(d))
		qr.Put("/filters", applyFiltersHandler(d))
		qr.Delete("/", resetQueryHandler(d))

		qr.Get("/sitters", listSittersSavedHandler(d))
		qr.Get("/requests", listRequestsSavedHandler(d))
	})
}

type sittersListResponse struct {
	Items []catalog.Sitter `json:"items"`
	Total int              `json:"total"`
	Query QueryState       `json:"query"`
}

type requestsListResponse struct {
	Items []catalog.Request `json:"items"`
	Total int               `json:"total"`
	Query QueryState        `json:"query"`
}

type setSearchRequest struct {
	Search string `json:"search"`
}

type serviceKindMeta struct {
	Type  catalog.ServiceKind `json:"type"`
	Label string              `json:"label"`
}

type dogSizeMeta struct {
	Size  catalog.DogSize `json:"size"`
	Label string          `json:"label"`
}

type catalogMetaResponse struct {
	ServiceTypes   []serviceKindMeta `json:"service_types"`
	DogSizes       []dogSizeMeta     `json:"dog_sizes"`
	Neighborhoods  []string          `json:"neighborhoods"`
	DefaultFilters Filters           `json:"default_filters"`
}

// listSittersHandler godoc
// @Summary Listar sitters
// @Description Filtra el catálogo de sitters con búsqueda libre y filtros. Conserva el orden del catálogo. El precio se compara contra el servicio más caro del sitter.
// @Tags listings
// @Produce json
// @Param q query string false "Búsqueda libre (nombre, zonas, descripción, servicios)"
// @Param neighborhoods query string false "CSV de zonas"
// @Param service_types query string false "CSV de servicios (walk_30,walk_60,home_visit)"
// @Param price_max query number false "Tope de precio (default 200)"
// @Param min_rating query number false "Rating mínimo (0 = sin filtro)"
// @Success 200 {object} sittersListResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Router /sitters [get]
func listSittersHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := ParseQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, d.sitters(q))
	}
}

// listRequestsHandler godoc
// @Summary Listar solicitudes
// @Description Filtra el catálogo de solicitudes con búsqueda libre y filtros. El precio se compara contra el precio ofrecido.
// @Tags listings
// @Produce json
// @Param q query string false "Búsqueda libre (cliente, zona, perro, servicio, raza)"
// @Param neighborhoods query string false "CSV de zonas"
// @Param service_types query string false "CSV de servicios"
// @Param price_max query number false "Tope de precio (default 200)"
// @Param dog_sizes query string false "CSV de tamaños (small,medium,large)"
// @Success 200 {object} requestsListResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Router /requests [get]
func listRequestsHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := ParseQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, d.requests(q))
	}
}

// catalogMetaHandler godoc
// @Summary Metadatos del catálogo
// @Description Servicios con etiquetas, tamaños de perro, zonas y filtros por defecto.
// @Tags listings
// @Produce json
// @Success 200 {object} catalogMetaResponse
// @Router /catalog/meta [get]
func catalogMetaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := catalogMetaResponse{
			Neighborhoods:  catalog.Neighborhoods(),
			DefaultFilters: DefaultFilters(),
		}
		for _, k := range catalog.ServiceKinds() {
			out.ServiceTypes = append(out.ServiceTypes, serviceKindMeta{Type: k, Label: k.Label()})
		}
		for _, s := range catalog.DogSizes() {
			out.DogSizes = append(out.DogSizes, dogSizeMeta{Size: s, Label: s.Label()})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getQueryHandler godoc
// @Summary Estado de búsqueda guardado
// @Tags listings
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {object} QueryState
// @Failure 401 {string} string "unauthorized"
// @Router /me/query [get]
func getQueryHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		q, err := d.Manager.Get(r.Context(), uid)
		if err != nil {
			d.internalError(w, "get query state", err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

// setSearchHandler godoc
// @Summary Cambiar texto de búsqueda
// @Description Reemplaza solo el texto; los filtros quedan igual.
// @Tags listings
// @Accept json
// @Produce json
// @Param payload body setSearchRequest true "Texto de búsqueda"
// @Success 200 {object} QueryState
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Router /me/query/search [put]
func setSearchHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req setSearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		q, err := d.Manager.SetSearch(r.Context(), uid, req.Search)
		if err != nil {
			d.internalError(w, "set search", err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

// applyFiltersHandler godoc
// @Summary Aplicar filtros
// @Description Reemplaza el objeto de filtros completo; los campos omitidos toman su valor por defecto. No valida valores.
// @Tags listings
// @Accept json
// @Produce json
// @Param payload body Filters true "Filtros"
// @Success 200 {object} QueryState
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Router /me/query/filters [put]
func applyFiltersHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		// Campos omitidos quedan en su default (ej. el tope de precio).
		f := DefaultFilters()
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		q, err := d.Manager.ApplyFilters(r.Context(), uid, f)
		if err != nil {
			d.internalError(w, "apply filters", err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

// resetQueryHandler godoc
// @Summary Resetear búsqueda y filtros
// @Tags listings
// @Produce json
// @Success 200 {object} QueryState
// @Failure 401 {string} string "unauthorized"
// @Router /me/query [delete]
func resetQueryHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		q, err := d.Manager.Reset(r.Context(), uid)
		if err != nil {
			d.internalError(w, "reset query", err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

// listSittersSavedHandler godoc
// @Summary Listar sitters con el estado guardado
// @Tags listings
// @Produce json
// @Success 200 {object} sittersListResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/query/sitters [get]
func listSittersSavedHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := d.savedQuery(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, d.sitters(q))
	}
}

// listRequestsSavedHandler godoc
// @Summary Listar solicitudes con el estado guardado
// @Tags listings
// @Produce json
// @Success 200 {object} requestsListResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/query/requests [get]
func listRequestsSavedHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := d.savedQuery(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, d.requests(q))
	}
}

func (d Deps) sitters(q QueryState) sittersListResponse {
	items := FilterSitters(d.Catalog.Current().Sitters, q)
	d.Metrics.ObserveListing("sitters", len(items))
	return sittersListResponse{Items: items, Total: len(items), Query: q}
}

func (d Deps) requests(q QueryState) requestsListResponse {
	items := FilterRequests(d.Catalog.Current().Requests, q)
	d.Metrics.ObserveListing("requests", len(items))
	return requestsListResponse{Items: items, Total: len(items), Query: q}
}

func (d Deps) savedQuery(w http.ResponseWriter, r *http.Request) (QueryState, bool) {
	uid := middleware.UserID(r.Context())
	if uid == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return QueryState{}, false
	}
	q, err := d.Manager.Get(r.Context(), uid)
	if err != nil {
		d.internalError(w, "get query state", err)
		return QueryState{}, false
	}
	return q, true
}

func (d Deps) internalError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d.Log.Error("listings: "+op, map[string]any{"error": err.Error()})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON se repite por módulo; todavía no hay helper común.
// Acá se codifica antes del WriteHeader: un float no finito en el estado
// tiene que salir como 500 y no como 200 con cuerpo vacío.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
