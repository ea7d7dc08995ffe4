package fixtures

import (
	"log/slog"
	"net/http"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/api"
	"github.com/google/uuid"
)

// Handlers serves the fixture datasets as JSON. Route-level access control
// is the gate's job; these handlers sit behind /admin and /dashboard.
type Handlers struct {
	log   *slog.Logger
	store *Store
}

// NewHandlers returns fixture handlers over the given store.
func NewHandlers(logger *slog.Logger, store *Store) *Handlers {
	return &Handlers{log: logger, store: store}
}

// HandleListFeatures serves the feature toggle table.
func (h *Handlers) HandleListFeatures() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.RespondJSONAndLog(w, h.log, http.StatusOK, map[string]any{"features": h.store.Features()})
	}
}

// HandleToggleFeature flips one feature toggle by path ID.
func (h *Handlers) HandleToggleFeature() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			status, resp := api.BadRequestValidation("invalid feature id")
			api.RespondJSONAndLog(w, h.log, status, resp)
			return
		}

		feature, ok := h.store.ToggleFeature(id)
		if !ok {
			status, resp := api.NotFound("no feature with that id")
			api.RespondJSONAndLog(w, h.log, status, resp)
			return
		}
		api.RespondJSONAndLog(w, h.log, http.StatusOK, feature)
	}
}

// HandleListTemplates serves the document template table.
func (h *Handlers) HandleListTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.RespondJSONAndLog(w, h.log, http.StatusOK, map[string]any{"templates": h.store.Templates()})
	}
}

// HandleListLogs serves the consumption log table.
func (h *Handlers) HandleListLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.RespondJSONAndLog(w, h.log, http.StatusOK, map[string]any{"logs": h.store.Logs()})
	}
}
