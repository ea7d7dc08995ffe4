package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
)

// RespondJSONAndLog is a convenience wrapper around RespondJSON that also logs any encoding errors.
// It accepts a logger, writes a standardized JSON response, and logs at debug level if encoding fails.
func RespondJSONAndLog(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	if err := RespondJSON(w, status, payload); err != nil {
		logger.Debug("failed to respond with JSON", "err", err)
	}
}

// RespondJSON writes a JSON response with the given status code and payload.
// It sets the Content-Type header before writing the status line.
//
// Returns an error only if JSON encoding fails. In most cases, this happens
// if the response writer is closed or the payload is not serializable.
func RespondJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	InviteID *string `json:"inviteId,omitempty"`
}

// LoginResponse is returned on successful login or registration. Redirect is
// the landing path for the user's role, so the client does not need its own
// copy of the role-to-route table.
type LoginResponse struct {
	Status   string      `json:"status"`
	User     models.User `json:"user"`
	UserType models.Role `json:"userType"`
	Redirect string      `json:"redirect"`
}

// SessionResponse describes the current session to the client.
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Session       *models.Session `json:"session,omitempty"`
}

// PlanRequest defines model for the admin plan mutation endpoints.
type PlanRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency,omitempty"`
	Credits  *int     `json:"credits,omitempty"`
}

// CheckoutRequest defines model for the checkout endpoint.
type CheckoutRequest struct {
	PlanID     string `json:"planId"`
	SuccessURL string `json:"successUrl,omitempty"`
	CancelURL  string `json:"cancelUrl,omitempty"`
}

// ProcessRequest defines model for the document processing endpoint.
type ProcessRequest struct {
	DocumentURL    string `json:"documentUrl"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Certified      bool   `json:"certified,omitempty"`
}
