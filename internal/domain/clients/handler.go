package clients

import (
	"encoding/json"
	"errors"
	"net/http"

	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Post("/", registerClientHandler(svc))
		cr.Get("/{clientID}", getClientHandler(svc))
		cr.Post("/{clientID}/dogs", addDogHandler(svc))
	})
	r.Get("/me/client", getMyClientHandler(svc))
}

// registerClientHandler godoc
// @Summary Registrar cliente
// @Description Crea el cliente con su primer perro (wizard de 4 pasos). Un usuario tiene un solo cliente.
// @Tags clients
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body wizard.ClientDraft true "Borrador del wizard"
// @Success 201 {object} catalog.Client
// @Failure 400 {object} wizard.ValidationError
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "client already registered"
// @Router /clients [post]
func registerClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var d wizard.ClientDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Register(r.Context(), uid, d)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// getClientHandler godoc
// @Summary Ver cliente
// @Tags clients
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Success 200 {object} catalog.Client
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [get]
func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// getMyClientHandler godoc
// @Summary Mi perfil de cliente
// @Tags clients
// @Produce json
// @Success 200 {object} catalog.Client
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "client not found"
// @Router /me/client [get]
func getMyClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		c, err := svc.GetByOwner(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// addDogHandler godoc
// @Summary Agregar perro
// @Tags clients
// @Accept json
// @Produce json
// @Param clientID path string true "ID del cliente"
// @Param payload body wizard.DogDraft true "Perro"
// @Success 201 {object} catalog.Dog
// @Failure 400 {object} wizard.ValidationError
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID}/dogs [post]
func addDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var d wizard.DogDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dog, err := svc.AddDog(r.Context(), uid, chi.URLParam(r, "clientID"), d)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dog)
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
		http.Error(w, "forbidden", http.StatusForbidden)
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
