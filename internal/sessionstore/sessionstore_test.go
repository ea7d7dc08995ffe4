package sessionstore

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/tokencodec"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	codec := tokencodec.New(testLogger(), "test-secret-"+t.Name(), 24*time.Hour)
	return New(testLogger(), codec, "", true)
}

// sessionCookie pulls the session cookie off a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == DefaultCookieName {
			return c
		}
	}
	t.Fatal("no session cookie on response")
	return nil
}

func TestStore_GetWithoutCookie(t *testing.T) {
	store := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/workspace", nil)

	session, err := store.Get(r)
	assert.NoError(t, err, "missing cookie is not an error")
	assert.Nil(t, session)
}

func TestStore_SetThenGet(t *testing.T) {
	store := newTestStore(t)
	rec := httptest.NewRecorder()

	user := models.User{ID: uuid.New(), Email: "ana@example.com"}
	created, err := store.Set(rec, user, models.RoleMember, nil, "bearer-tok", nil)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), created.ExpiresAt, time.Minute)

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly, "session cookie must be HTTP-only")
	assert.True(t, cookie.Secure, "session cookie must be secure")
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.WithinDuration(t, created.ExpiresAt, cookie.Expires, time.Second)

	r := httptest.NewRequest(http.MethodGet, "/workspace", nil)
	r.AddCookie(cookie)

	session, err := store.Get(r)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user, session.User)
	assert.Equal(t, models.RoleMember, session.UserType)
	assert.Equal(t, "bearer-tok", session.AccessToken)
}

func TestStore_GetWithCorruptCookie(t *testing.T) {
	store := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/workspace", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "garbage"})

	session, err := store.Get(r)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestStore_GetWithForeignSecret(t *testing.T) {
	// a cookie signed under a different secret must read as invalid, never
	// as a half-trusted session
	otherCodec := tokencodec.New(testLogger(), "other-secret", 24*time.Hour)
	other := New(testLogger(), otherCodec, "", true)

	rec := httptest.NewRecorder()
	_, err := other.Set(rec, models.User{ID: uuid.New(), Email: "x@example.com"}, models.RoleAdmin, nil, "", nil)
	require.NoError(t, err)

	store := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(sessionCookie(t, rec))

	session, err := store.Get(r)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestStore_RefreshExtendsExpiry(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := base
	codec := tokencodec.NewWithClock(testLogger(), "test-secret", 24*time.Hour, func() time.Time { return clock })
	store := New(testLogger(), codec, "", true)

	rec := httptest.NewRecorder()
	created, err := store.Set(rec, models.User{ID: uuid.New(), Email: "a@b.c"}, models.RoleTeam, nil, "", nil)
	require.NoError(t, err)

	clock = base.Add(time.Hour)
	rec2 := httptest.NewRecorder()
	newExpiry, err := store.Refresh(rec2, created)
	require.NoError(t, err)

	assert.True(t, newExpiry.After(created.ExpiresAt), "refresh must extend expiry")
	assert.WithinDuration(t, newExpiry, sessionCookie(t, rec2).Expires, time.Second)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	rec := httptest.NewRecorder()
	store.Clear(rec)
	store.Clear(rec)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0 || cookie.Expires.Before(time.Now()), "cookie must be expired")
}

func TestStore_CustomCookieName(t *testing.T) {
	codec := tokencodec.New(testLogger(), "test-secret", 24*time.Hour)
	store := New(testLogger(), codec, "ezdocu_session", false)

	rec := httptest.NewRecorder()
	_, err := store.Set(rec, models.User{ID: uuid.New(), Email: "a@b.c"}, models.RoleUser, nil, "", nil)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ezdocu_session", cookies[0].Name)
	assert.False(t, cookies[0].Secure)
}
