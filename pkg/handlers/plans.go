package handlers

import (
	"net/http"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/api"
)

// The plan mutation endpoints are administrative: each one re-derives the
// session from the cookie and refuses non-admins, independently of the gate
// in front of the /admin routes.

// HandleCreatePlan forwards a new pricing plan to the gateway.
func (h *Handler) HandleCreatePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		session := h.requireAdmin(w, r)
		if session == nil {
			return
		}

		var req api.PlanRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		var missing []string
		if req.Name == "" {
			missing = append(missing, "name")
		}
		if req.Price == nil {
			missing = append(missing, "price")
		}
		if !h.requireFields(w, missing) {
			return
		}

		resp, err := h.gateway.Forward(r.Context(), http.MethodPost, "/plans", req, session.AccessToken)
		h.relay(w, resp, err)
	}
}

// HandleUpdatePlan forwards changes to an existing plan.
func (h *Handler) HandleUpdatePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		session := h.requireAdmin(w, r)
		if session == nil {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			status, resp := api.BadRequestValidation("missing plan id")
			api.RespondJSONAndLog(w, h.log, status, resp)
			return
		}

		var req api.PlanRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		resp, err := h.gateway.Forward(r.Context(), http.MethodPut, "/plans/"+id, req, session.AccessToken)
		h.relay(w, resp, err)
	}
}

// HandleDeletePlan forwards a plan deletion.
func (h *Handler) HandleDeletePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		session := h.requireAdmin(w, r)
		if session == nil {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			status, resp := api.BadRequestValidation("missing plan id")
			api.RespondJSONAndLog(w, h.log, status, resp)
			return
		}

		resp, err := h.gateway.Forward(r.Context(), http.MethodDelete, "/plans/"+id, nil, session.AccessToken)
		h.relay(w, resp, err)
	}
}
