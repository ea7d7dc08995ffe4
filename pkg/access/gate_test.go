package access

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/sessionstore"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/tokencodec"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward between requests so renewed cookie
// expiries are strictly comparable at second precision.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type gateFixture struct {
	gate  *Gate
	store *sessionstore.Store
	clock *fakeClock
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	codec := tokencodec.NewWithClock(logger, "gate-test-secret", 24*time.Hour, clock.now)
	store := sessionstore.New(logger, codec, "", true)
	return &gateFixture{
		gate:  NewGate(logr.Discard(), store),
		store: store,
		clock: clock,
	}
}

// signIn issues a signed cookie for the given role.
func (f *gateFixture) signIn(t *testing.T, role models.Role) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	_, err := f.store.Set(rec, models.User{ID: uuid.New(), Email: "user@example.com"}, role, nil, "bearer", nil)
	require.NoError(t, err)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionstore.DefaultCookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

// serve runs one request through the gate in front of a probe handler and
// reports whether the probe ran.
func (f *gateFixture) serve(r *http.Request) (*httptest.ResponseRecorder, bool) {
	forwarded := false
	handler := f.gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = true
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec, forwarded
}

func responseCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionstore.DefaultCookieName {
			return c
		}
	}
	return nil
}

func TestGate_AnonymousOnGatedPathRedirectsToSignIn(t *testing.T) {
	f := newGateFixture(t)

	r := httptest.NewRequest(http.MethodGet, "/admin/features", nil)
	rec, forwarded := f.serve(r)

	assert.False(t, forwarded)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/sign-in", rec.Header().Get("Location"))
}

func TestGate_WrongRoleRedirectsToOwnLandingPage(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.signIn(t, models.RoleMember)

	r := httptest.NewRequest(http.MethodGet, "/admin/features", nil)
	r.AddCookie(cookie)
	rec, forwarded := f.serve(r)

	assert.False(t, forwarded)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/workspace", rec.Header().Get("Location"), "member belongs in the workspace, not on an error page")
}

func TestGate_AuthenticatedUserNeverSeesAuthForms(t *testing.T) {
	f := newGateFixture(t)

	tests := []struct {
		name string
		role models.Role
		path string
		want string
	}{
		{name: "admin on sign-in", role: models.RoleAdmin, path: "/sign-in", want: "/admin"},
		{name: "team on sign-up", role: models.RoleTeam, path: "/sign-up", want: "/dashboard"},
		{name: "user on sign-in with query", role: models.RoleUser, path: "/sign-in?ref=nav", want: "/workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.AddCookie(f.signIn(t, tt.role))
			rec, forwarded := f.serve(r)

			assert.False(t, forwarded)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestGate_AllowedRequestCarriesRenewedCookie(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.signIn(t, models.RoleTeam)

	f.clock.advance(time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(cookie)
	rec, forwarded := f.serve(r)

	assert.True(t, forwarded, "team is permitted on the dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)

	renewed := responseCookie(rec)
	require.NotNil(t, renewed, "allowed request must carry a renewed cookie")
	assert.True(t, renewed.Expires.After(cookie.Expires), "renewed expiry must be later than the incoming one")
	assert.NotEqual(t, cookie.Value, renewed.Value, "token is re-signed, not replayed")
}

func TestGate_CorruptCookieIsClearedAndTreatedAsAnonymous(t *testing.T) {
	f := newGateFixture(t)

	r := httptest.NewRequest(http.MethodGet, "/workspace", nil)
	r.AddCookie(&http.Cookie{Name: sessionstore.DefaultCookieName, Value: "corrupted-nonsense"})
	rec, forwarded := f.serve(r)

	assert.False(t, forwarded)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/sign-in", rec.Header().Get("Location"))

	cleared := responseCookie(rec)
	require.NotNil(t, cleared, "corrupt cookie must be deleted from the response")
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0 || cleared.Expires.Before(f.clock.now()))
}

func TestGate_ExpiredCookieRedirectsToSignIn(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.signIn(t, models.RoleAdmin)

	f.clock.advance(25 * time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(cookie)
	rec, forwarded := f.serve(r)

	assert.False(t, forwarded)
	assert.Equal(t, "/sign-in", rec.Header().Get("Location"))
}

func TestGate_PublicAndOpenPathsForwardAnonymous(t *testing.T) {
	f := newGateFixture(t)

	for _, path := range []string{"/", "/pricing", "/sign-in", "/favicon.ico", "/api/auth/login"} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		_, forwarded := f.serve(r)
		assert.True(t, forwarded, "anonymous request for %s should pass", path)
	}
}

func TestGate_SlidingExpiryIsMonotonic(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.signIn(t, models.RoleAdmin)

	lastExpiry := cookie.Expires
	for i := 0; i < 5; i++ {
		f.clock.advance(30 * time.Minute)

		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r.AddCookie(cookie)
		rec, forwarded := f.serve(r)
		require.True(t, forwarded)

		renewed := responseCookie(rec)
		require.NotNil(t, renewed)
		assert.True(t, renewed.Expires.After(lastExpiry), "expiry must strictly increase on request %d", i)

		cookie = renewed
		lastExpiry = renewed.Expires
	}
}

func TestGate_SessionAttachedToForwardedRequestContext(t *testing.T) {
	f := newGateFixture(t)
	cookie := f.signIn(t, models.RoleAdmin)

	var got *models.Session
	handler := f.gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(cookie)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, models.RoleAdmin, got.UserType)
}
