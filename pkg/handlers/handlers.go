// Package handlers implements the BFF endpoints: thin request/response
// translators between the browser and the external services. Handlers
// validate input, attach the session's bearer credential, relay the
// upstream's reply, and never leak internal failure detail to the client.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/gateway"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/api"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
)

// SessionStore is the session functionality handlers need: creating a
// session on login, reading it for the admin-only endpoints, and clearing
// it on sign-out.
type SessionStore interface {
	Get(r *http.Request) (*models.Session, error)
	Set(w http.ResponseWriter, user models.User, userType models.Role, accounts []models.Account, accessToken string, activeAccountID *string) (*models.Session, error)
	Clear(w http.ResponseWriter)
}

// AuthService is the external auth service boundary.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*gateway.AuthResult, int, error)
	Register(ctx context.Context, email, password string, inviteID *string) (*gateway.AuthResult, int, error)
}

// Forwarder relays a JSON request to an upstream service.
type Forwarder interface {
	Forward(ctx context.Context, method, path string, body any, bearer string) (*gateway.Response, error)
}

// Handler carries the dependencies shared by all BFF endpoints.
type Handler struct {
	log        *slog.Logger
	sessions   SessionStore
	auth       AuthService
	gateway    Forwarder // pricing plans, checkout
	processing Forwarder // document OCR/translation pipeline
}

// New returns a Handler wired to the given session store and upstreams.
func New(logger *slog.Logger, sessions SessionStore, auth AuthService, gw Forwarder, processing Forwarder) *Handler {
	return &Handler{
		log:        logger,
		sessions:   sessions,
		auth:       auth,
		gateway:    gw,
		processing: processing,
	}
}

// decodeBody decodes the request body into dst, answering 400 on malformed
// JSON. Returns false when a response has already been written.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.Debug("rejecting unparseable request body", "path", r.URL.Path, "err", err)
		api.ReturnError(w, h.log, api.BadRequestInvalidJSON)
		return false
	}
	return true
}

// requireFields answers 400 listing the missing field names. Returns false
// when a response has already been written.
func (h *Handler) requireFields(w http.ResponseWriter, missing []string) bool {
	if len(missing) == 0 {
		return true
	}
	status, resp := api.BadRequestValidation("missing required fields: " + strings.Join(missing, ", "))
	api.RespondJSONAndLog(w, h.log, status, resp)
	return false
}

// relay copies an upstream reply to the client. A 2xx body is passed through
// verbatim. A non-2xx body is relayed only when it parses as JSON; anything
// else collapses to the generic 500 so raw upstream errors never reach the
// browser. A nil response (network failure, timeout) is also a 500.
func (h *Handler) relay(w http.ResponseWriter, resp *gateway.Response, err error) {
	if err != nil || resp == nil {
		api.ReturnError(w, h.log, api.InternalServerError)
		return
	}
	if !resp.OK() && !json.Valid(resp.Body) {
		h.log.Debug("suppressing non-JSON upstream error body", "status", resp.Status)
		api.ReturnError(w, h.log, api.InternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}

// bearer returns the access token of the request's session when one exists.
func (h *Handler) bearer(r *http.Request) string {
	session, err := h.sessions.Get(r)
	if err != nil || session == nil {
		return ""
	}
	return session.AccessToken
}

// requireAdmin re-derives the session from the cookie, independently of the
// gate, and answers 403 unless it belongs to an admin. The gate already
// covers the /admin routes; this is a second check on the mutation
// endpoints themselves. Returns the session, or nil when a response has
// already been written.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) *models.Session {
	session, err := h.sessions.Get(r)
	if err != nil || session == nil || session.UserType != models.RoleAdmin {
		api.ReturnError(w, h.log, api.ForbiddenAccessDenied)
		return nil
	}
	return session
}

func logAccess(log *slog.Logger, r *http.Request) {
	log.Debug("Access", "method", r.Method, "path", r.URL.Path, "remote_ip", r.RemoteAddr, "user_agent", r.UserAgent())
}
