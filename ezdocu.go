// Package ezdocu wires the session/authorization proxy and the BFF
// endpoints of the EZDocu platform into a single http.Handler. The module
// never holds session state on the server: the signed cookie a request
// presents is the whole source of truth, which is what lets any number of
// instances serve the same traffic.
package ezdocu

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/config"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/fixtures"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/gateway"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/logutil"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/sessionstore"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/tokencodec"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/access"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/handlers"
	"github.com/go-logr/logr"
)

// EZDocu holds the assembled proxy: the gate, the session store, and the
// BFF handler set.
type EZDocu struct {
	logger   *slog.Logger
	cfg      *config.Config
	Sessions *sessionstore.Store
	Gate     *access.Gate
	Handlers *handlers.Handler
	fixtures *fixtures.Handlers
}

type Option func(*EZDocu)

func WithLogger(l *slog.Logger) Option {
	return func(e *EZDocu) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig supplies configuration directly instead of reading the
// environment. Mostly for tests.
func WithConfig(cfg *config.Config) Option {
	return func(e *EZDocu) {
		e.cfg = cfg
	}
}

// New builds the proxy. Without WithConfig, configuration comes from the
// environment and a missing SESSION_SECRET is a startup error.
func New(opts ...Option) (*EZDocu, error) {
	e := &EZDocu{
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cfg == nil {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, logutil.LogAndWrapErr(e.logger, "loading configuration", err)
		}
		e.cfg = cfg
	}

	defer logutil.NewTimingLogger(e.logger, time.Now(), "assembled ezdocu proxy", "env", e.cfg.Env)()

	codec := tokencodec.New(e.logger, e.cfg.SessionSecret, e.cfg.SessionTTL)
	e.Sessions = sessionstore.New(e.logger, codec, e.cfg.CookieName, e.cfg.CookieSecure)
	e.Gate = access.NewGate(logr.FromSlogHandler(e.logger.Handler()), e.Sessions)

	authClient := gateway.New(e.logger, "auth", e.cfg.AuthBaseURL, e.cfg.GatewayTimeout)
	gwClient := gateway.New(e.logger, "gateway", e.cfg.GatewayBaseURL, e.cfg.GatewayTimeout)
	processingClient := gateway.New(e.logger, "processing", e.cfg.ProcessingBaseURL, e.cfg.ProcessingTimeout)

	e.Handlers = handlers.New(e.logger, e.Sessions, authClient, gwClient, processingClient)
	e.fixtures = fixtures.NewHandlers(e.logger, fixtures.NewSeeded())

	return e, nil
}

// Mux is the interface Routes expects for registering handlers. It covers
// http.ServeMux and most third-party routers.
type Mux interface {
	http.Handler
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	Handle(pattern string, handler http.Handler)
}

// Routes registers every BFF endpoint on mux and returns the mux wrapped in
// the authorization gate. The returned handler is what the server should
// serve: every request passes the gate before any route runs.
func (e *EZDocu) Routes(mux Mux) http.Handler {
	// auth
	mux.HandleFunc("POST /api/auth/login", e.Handlers.HandleLogin())
	mux.HandleFunc("POST /api/auth/register", e.Handlers.HandleRegister())
	mux.HandleFunc("POST /api/auth/sign-out", e.Handlers.HandleSignOut())
	mux.HandleFunc("GET /api/auth/session", e.Handlers.HandleSession())

	// processing and payments proxies
	mux.HandleFunc("POST /api/documents/process", e.Handlers.HandleProcessDocument())
	mux.HandleFunc("POST /api/payments/checkout", e.Handlers.HandleCheckout())
	mux.HandleFunc("GET /api/plans", e.Handlers.HandleListPlans())

	// administrative plan mutations, admin-gated inside the handlers as well
	mux.HandleFunc("POST /admin/api/plans", e.Handlers.HandleCreatePlan())
	mux.HandleFunc("PUT /admin/api/plans/{id}", e.Handlers.HandleUpdatePlan())
	mux.HandleFunc("DELETE /admin/api/plans/{id}", e.Handlers.HandleDeletePlan())

	// fixture-backed tables behind the gated areas
	mux.HandleFunc("GET /admin/api/features", e.fixtures.HandleListFeatures())
	mux.HandleFunc("POST /admin/api/features/{id}/toggle", e.fixtures.HandleToggleFeature())
	mux.HandleFunc("GET /admin/api/templates", e.fixtures.HandleListTemplates())
	mux.HandleFunc("GET /dashboard/api/logs", e.fixtures.HandleListLogs())

	return e.Gate.Middleware(mux)
}
