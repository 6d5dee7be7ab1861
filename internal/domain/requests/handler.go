package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes usa rutas planas: GET /requests es del listado.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/requests", createRequestHandler(svc))
	r.Get("/requests/{requestID}", getRequestHandler(svc))

	// Ciclo de vida
	r.Post("/requests/{requestID}/accept", transitionHandler(svc.Accept))
	r.Post("/requests/{requestID}/complete", transitionHandler(svc.Complete))
	r.Post("/requests/{requestID}/cancel", transitionHandler(svc.Cancel))

	r.Get("/me/requests", listMyRequestsHandler(svc))
}

type requestsResponse struct {
	Items []catalog.Request `json:"items"`
	Total int               `json:"total"`
}

// createRequestHandler godoc
// @Summary Publicar solicitud
// @Description Crea una solicitud abierta (wizard de 5 pasos). Requiere perfil de cliente.
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body wizard.RequestDraft true "Borrador del wizard"
// @Success 201 {object} catalog.Request
// @Failure 400 {object} wizard.ValidationError
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /requests [post]
func createRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var d wizard.RequestDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		req, err := svc.Create(r.Context(), uid, d)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, req)
	}
}

// getRequestHandler godoc
// @Summary Ver solicitud
// @Tags requests
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} catalog.Request
// @Failure 404 {string} string "request not found"
// @Router /requests/{requestID} [get]
func getRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := svc.GetByID(r.Context(), chi.URLParam(r, "requestID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

// transitionHandler godoc
// @Summary Cambiar estado de la solicitud
// @Description accept (sitter, open→accepted), complete (sitter asignado, accepted→completed), cancel (cliente dueño, open|accepted→cancelled).
// @Tags requests
// @Produce json
// @Param requestID path string true "ID de la solicitud"
// @Success 200 {object} catalog.Request
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "request not found"
// @Failure 409 {string} string "invalid status transition"
// @Router /requests/{requestID}/accept [post]
// @Router /requests/{requestID}/complete [post]
// @Router /requests/{requestID}/cancel [post]
func transitionHandler(fn func(ctx context.Context, actorUserID, requestID string) (catalog.Request, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		req, err := fn(r.Context(), uid, chi.URLParam(r, "requestID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

// listMyRequestsHandler godoc
// @Summary Mis solicitudes
// @Description Solicitudes de mi perfil de cliente y las asignadas a mi perfil de sitter.
// @Tags requests
// @Produce json
// @Success 200 {object} requestsResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/requests [get]
func listMyRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		items, err := svc.ListMine(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, requestsResponse{Items: items, Total: len(items)})
	}
}

func writeError(w http.ResponseWriter, err error) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, verr)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
