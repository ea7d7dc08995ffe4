package handlers

import (
	"net/http"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/api"
)

// HandleProcessDocument forwards a translation/certification job to the
// external processing service. The body is relayed as-is with the session's
// bearer credential attached; the processing client's long timeout covers
// OCR on large documents.
func (h *Handler) HandleProcessDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		var req api.ProcessRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		var missing []string
		if req.DocumentURL == "" {
			missing = append(missing, "documentUrl")
		}
		if req.SourceLanguage == "" {
			missing = append(missing, "sourceLanguage")
		}
		if req.TargetLanguage == "" {
			missing = append(missing, "targetLanguage")
		}
		if !h.requireFields(w, missing) {
			return
		}

		resp, err := h.processing.Forward(r.Context(), http.MethodPost, "/documents/process", req, h.bearer(r))
		h.relay(w, resp, err)
	}
}

// HandleCheckout forwards a checkout request to the payments upstream. No
// payment logic lives here; the upstream's reply (typically a redirect URL)
// is relayed verbatim.
func (h *Handler) HandleCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		var req api.CheckoutRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		if !h.requireFields(w, missingCheckoutFields(req)) {
			return
		}

		resp, err := h.gateway.Forward(r.Context(), http.MethodPost, "/payments/checkout", req, h.bearer(r))
		h.relay(w, resp, err)
	}
}

func missingCheckoutFields(req api.CheckoutRequest) []string {
	var missing []string
	if req.PlanID == "" {
		missing = append(missing, "planId")
	}
	return missing
}

// HandleListPlans relays the public pricing plan list from the gateway.
func (h *Handler) HandleListPlans() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)
		resp, err := h.gateway.Forward(r.Context(), http.MethodGet, "/plans", nil, h.bearer(r))
		h.relay(w, resp, err)
	}
}
