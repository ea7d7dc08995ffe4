package access

import (
	"context"
	"net/http"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/metrics"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
	"github.com/go-logr/logr"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SignInPath is where anonymous requests for gated routes are sent.
const SignInPath = "/sign-in"

// SessionStore is the minimal session functionality the gate needs. The
// concrete implementation lives in internal/sessionstore; the interface
// keeps the gate testable with fakes.
type SessionStore interface {
	// Get returns the request's session, (nil, nil) when no cookie is
	// present, or (nil, err) when a cookie exists but does not verify.
	Get(r *http.Request) (*models.Session, error)

	// Refresh re-signs the session with an extended expiry and replaces
	// the cookie on the response.
	Refresh(w http.ResponseWriter, session *models.Session) (time.Time, error)

	// Clear deletes the session cookie from the response.
	Clear(w http.ResponseWriter)
}

// Gate is the authorization proxy evaluated on every inbound request before
// anything else runs. Each request is decided from scratch off its own
// cookie; the gate keeps no state of its own, which is what makes it safe
// under arbitrary concurrency.
type Gate struct {
	logger   logr.Logger
	sessions SessionStore
}

// NewGate returns a Gate using the given session store.
func NewGate(logger logr.Logger, sessions SessionStore) *Gate {
	return &Gate{
		logger:   logger,
		sessions: sessions,
	}
}

// Middleware wraps next with the per-request authorization state machine:
//
//  1. Decode the session cookie. Missing, tampered, or expired all collapse
//     to anonymous; an invalid cookie is additionally deleted from the
//     response so the client stops presenting it.
//  2. Authenticated users never see the auth forms: requests for the
//     sign-in or sign-up page redirect to the role's landing page.
//  3. Classify the path. If the tier permits the current state the request
//     proceeds, with the session cookie re-signed to a later expiry so an
//     active user is never logged out mid-session.
//  4. Otherwise anonymous requests go to sign-in and wrong-role requests go
//     to their own landing page. Role mismatch is "go where you belong",
//     never an error page.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		session, err := g.sessions.Get(r)
		if err != nil {
			// cookie was present but did not verify: clean it up
			g.logger.V(1).Info("discarding invalid session cookie", "path", path, "reason", err.Error())
			g.sessions.Clear(w)
		}

		if session != nil && (matchesBase(path, "/sign-in") || matchesBase(path, "/sign-up")) {
			g.redirectHome(w, r, session)
			return
		}

		tier := Classify(path)
		if tier.Permits(session) {
			if session != nil {
				if _, err := g.sessions.Refresh(w, session); err != nil {
					// the old cookie is still valid; log and proceed
					g.logger.Error(err, "renewing session cookie", "path", path)
				} else {
					metrics.SessionRefreshes.Inc()
				}
				ctx := context.WithValue(r.Context(), sessionContextKey, session)
				r = r.WithContext(ctx)
			}
			metrics.GateDecisions.WithLabelValues("allow").Inc()
			next.ServeHTTP(w, r)
			return
		}

		if session == nil {
			g.logger.V(2).Info("anonymous request for gated path", "path", path, "tier", tier.String())
			metrics.GateDecisions.WithLabelValues("redirect_sign_in").Inc()
			http.Redirect(w, r, SignInPath, http.StatusSeeOther)
			return
		}

		g.logger.V(2).Info("role not permitted for path", "path", path, "tier", tier.String(), "role", session.UserType.String())
		g.redirectHome(w, r, session)
	})
}

func (g *Gate) redirectHome(w http.ResponseWriter, r *http.Request, session *models.Session) {
	metrics.GateDecisions.WithLabelValues("redirect_role_home").Inc()
	http.Redirect(w, r, session.UserType.LandingPath(), http.StatusSeeOther)
}

// SessionFromContext returns the session the gate attached to an allowed
// request, or nil when the request was anonymous.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionContextKey).(*models.Session)
	return session
}
