package wizard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/wizards", func(wr chi.Router) {
		wr.Get("/{flow}", describeFlowHandler())
		wr.Post("/{flow}/steps/{step}/validate", validateStepHandler())
	})
}

type flowResponse struct {
	Flow  string   `json:"flow"`
	Steps []string `json:"steps"`
}

type stepResult struct {
	Flow   string       `json:"flow"`
	Step   string       `json:"step"`
	Index  int          `json:"index"`
	Total  int          `json:"total"`
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// runner esconde el tipo genérico del borrador para el handler.
type runner struct {
	steps    []string
	validate func(step string, body []byte) (stepResult, error)
}

func runnerFor[T any](f Flow[T]) runner {
	names := make([]string, 0, f.Len())
	for _, s := range f.Steps {
		names = append(names, s.Name)
	}
	return runner{
		steps: names,
		validate: func(step string, body []byte) (stepResult, error) {
			n, ok := f.StepIndex(step)
			if !ok {
				// También se acepta el número de paso.
				i, err := strconv.Atoi(step)
				if err != nil {
					return stepResult{}, ErrUnknownStep
				}
				n = i
			}
			var draft T
			if len(body) > 0 {
				if err := json.Unmarshal(body, &draft); err != nil {
					return stepResult{}, err
				}
			}
			errs, err := f.ValidateStep(n, draft)
			if err != nil {
				return stepResult{}, err
			}
			return stepResult{
				Flow:   f.Name,
				Step:   f.Steps[n-1].Name,
				Index:  n,
				Total:  f.Len(),
				Valid:  len(errs) == 0,
				Errors: errs,
			}, nil
		},
	}
}

func runners() map[string]runner {
	return map[string]runner{
		"request": runnerFor(RequestFlow()),
		"client":  runnerFor(ClientFlow()),
		"sitter":  runnerFor(SitterFlow()),
	}
}

// describeFlowHandler godoc
// @Summary Pasos de un wizard
// @Tags wizards
// @Produce json
// @Param flow path string true "request | client | sitter"
// @Success 200 {object} flowResponse
// @Failure 404 {string} string "unknown flow"
// @Router /wizards/{flow} [get]
func describeFlowHandler() http.HandlerFunc {
	all := runners()
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "flow")
		run, ok := all[name]
		if !ok {
			http.Error(w, "unknown flow", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, flowResponse{Flow: name, Steps: run.steps})
	}
}

// validateStepHandler godoc
// @Summary Validar un paso del wizard
// @Description Devuelve los errores de campo de un paso para habilitar "siguiente". El body es el borrador completo.
// @Tags wizards
// @Accept json
// @Produce json
// @Param flow path string true "request | client | sitter"
// @Param step path string true "Nombre o número (1-based) del paso"
// @Success 200 {object} stepResult
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "unknown flow or step"
// @Router /wizards/{flow}/steps/{step}/validate [post]
func validateStepHandler() http.HandlerFunc {
	all := runners()
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := all[chi.URLParam(r, "flow")]
		if !ok {
			http.Error(w, "unknown flow", http.StatusNotFound)
			return
		}

		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := run.validate(chi.URLParam(r, "step"), raw)
		switch {
		case errors.Is(err, ErrUnknownStep):
			http.Error(w, "unknown step", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
