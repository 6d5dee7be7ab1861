package sitters

import (
	"encoding/json"
	"errors"
	"net/http"

	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes usa rutas planas: GET /sitters es del listado.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/sitters", registerSitterHandler(svc))
	r.Get("/sitters/{sitterID}", getSitterHandler(svc))
	r.Get("/me/sitter", getMySitterHandler(svc))
}

// registerSitterHandler godoc
// @Summary Registrar sitter
// @Description Alta de sitter (wizard de 5 pasos). Queda sin verificar y con rating 0.
// @Tags sitters
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body wizard.SitterDraft true "Borrador del wizard"
// @Success 201 {object} catalog.Sitter
// @Failure 400 {object} wizard.ValidationError
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "sitter already registered"
// @Router /sitters [post]
func registerSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var d wizard.SitterDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := svc.Register(r.Context(), uid, d)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, s)
	}
}

// getSitterHandler godoc
// @Summary Ver sitter
// @Tags sitters
// @Produce json
// @Param sitterID path string true "ID del sitter"
// @Success 200 {object} catalog.Sitter
// @Failure 404 {string} string "sitter not found"
// @Router /sitters/{sitterID} [get]
func getSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.GetByID(r.Context(), chi.URLParam(r, "sitterID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// getMySitterHandler godoc
// @Summary Mi perfil de sitter
// @Tags sitters
// @Produce json
// @Success 200 {object} catalog.Sitter
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "sitter not found"
// @Router /me/sitter [get]
func getMySitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		s, err := svc.GetByOwner(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
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
	case errors.Is(err, ErrAlreadyRegistered):
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
