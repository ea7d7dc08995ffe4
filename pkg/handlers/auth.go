package handlers

import (
	"net/http"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/gateway"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/api"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
)

// HandleLogin authenticates against the external auth service and, on
// success, creates the signed session cookie. The response includes the
// landing path for the user's role so the client can redirect immediately.
func (h *Handler) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		var req api.LoginRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		var missing []string
		if req.Email == "" {
			missing = append(missing, "email")
		}
		if req.Password == "" {
			missing = append(missing, "password")
		}
		if !h.requireFields(w, missing) {
			return
		}

		result, status, err := h.auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			api.ReturnError(w, h.log, api.InternalServerError)
			return
		}
		if !result.Succeeded() {
			h.respondAuthFailure(w, result, status)
			return
		}

		h.finishAuth(w, result)
	}
}

// HandleRegister creates an account via the external auth service and signs
// the new user in. An inviteId in the body joins the user to an existing
// team instead of creating a standalone account.
func (h *Handler) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		var req api.LoginRequest
		if !h.decodeBody(w, r, &req) {
			return
		}

		var missing []string
		if req.Email == "" {
			missing = append(missing, "email")
		}
		if req.Password == "" {
			missing = append(missing, "password")
		}
		if !h.requireFields(w, missing) {
			return
		}

		result, status, err := h.auth.Register(r.Context(), req.Email, req.Password, req.InviteID)
		if err != nil {
			api.ReturnError(w, h.log, api.InternalServerError)
			return
		}
		if !result.Succeeded() {
			h.respondAuthFailure(w, result, status)
			return
		}

		h.finishAuth(w, result)
	}
}

// HandleSignOut clears the session cookie. Signing out without a session is
// a no-op, not an error.
func (h *Handler) HandleSignOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)
		h.sessions.Clear(w)
		api.RespondJSONAndLog(w, h.log, http.StatusOK, map[string]string{"status": "success", "redirect": "/"})
	}
}

// HandleSession reports the current session to the client. Anonymous
// requests get {authenticated: false} rather than an error.
func (h *Handler) HandleSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAccess(h.log, r)

		session, err := h.sessions.Get(r)
		if err != nil {
			h.sessions.Clear(w)
		}
		if session == nil {
			api.RespondJSONAndLog(w, h.log, http.StatusOK, api.SessionResponse{Authenticated: false})
			return
		}
		api.RespondJSONAndLog(w, h.log, http.StatusOK, api.SessionResponse{Authenticated: true, Session: session})
	}
}

// finishAuth creates the session cookie for an accepted login/registration
// and answers with the role's landing path.
func (h *Handler) finishAuth(w http.ResponseWriter, result *gateway.AuthResult) {
	var activeAccountID *string
	if result.Team != nil {
		activeAccountID = &result.Team.ID
	}

	accounts := result.Accounts
	if accounts == nil && result.Team != nil {
		accounts = []models.Account{*result.Team}
	}

	if _, err := h.sessions.Set(w, *result.User, result.UserType, accounts, result.AccessToken, activeAccountID); err != nil {
		h.log.Error("creating session after auth", "err", err)
		api.ReturnError(w, h.log, api.InternalServerError)
		return
	}

	api.RespondJSONAndLog(w, h.log, http.StatusOK, api.LoginResponse{
		Status:   "success",
		User:     *result.User,
		UserType: result.UserType,
		Redirect: result.UserType.LandingPath(),
	})
}

// respondAuthFailure relays an auth rejection. A structured upstream error
// keeps its status code; a 2xx reply that still failed (status field not
// "success") becomes a 401 with the upstream message.
func (h *Handler) respondAuthFailure(w http.ResponseWriter, result *gateway.AuthResult, upstreamStatus int) {
	status := upstreamStatus
	if status >= 200 && status < 300 {
		status = http.StatusUnauthorized
	}
	status, resp := api.NewError(status, api.ErrCredentials, result.Message)
	api.RespondJSONAndLog(w, h.log, status, resp)
}
