package sessionstore

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
)

// DefaultCookieName is the cookie the session token travels in.
const DefaultCookieName = "session"

// ErrInvalidSession reports that a cookie was present but its token did not
// verify (bad signature, expired, or garbage). A missing cookie is not an
// error; Get returns (nil, nil) for that.
var ErrInvalidSession = errors.New("invalid session cookie")

// Codec is the token codec the store signs and verifies sessions with.
type Codec interface {
	Sign(s *models.Session) (string, time.Time, error)
	Verify(tokenStr string) (*models.Session, error)
}

// Store reads and writes the session cookie for a single request/response
// pair. It holds no cross-request state; the cookie on the client is the
// only durable copy of a session.
type Store struct {
	log        *slog.Logger
	codec      Codec
	cookieName string
	secure     bool
}

// New returns a cookie-backed session store. cookieName may be empty, in
// which case DefaultCookieName is used. secure controls the cookie's Secure
// attribute and should only be false in local development.
func New(logger *slog.Logger, codec Codec, cookieName string, secure bool) *Store {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Store{
		log:        logger,
		codec:      codec,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Get reads the session cookie from the request. No cookie means no session:
// (nil, nil). A cookie that fails verification yields (nil, err) with err
// wrapping ErrInvalidSession, so the caller can clean the stale cookie off
// the response. A half-trusted payload is never returned.
func (s *Store) Get(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return nil, nil
	}

	session, err := s.codec.Verify(cookie.Value)
	if err != nil {
		s.log.Debug("session cookie failed verification", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return session, nil
}

// Set signs a fresh session and writes it to the response. This is the only
// path that creates a brand-new session; expiry is now plus the codec's
// validity horizon.
func (s *Store) Set(w http.ResponseWriter, user models.User, userType models.Role, accounts []models.Account, accessToken string, activeAccountID *string) (*models.Session, error) {
	session := &models.Session{
		User:            user,
		UserType:        userType,
		Accounts:        accounts,
		ActiveAccountID: activeAccountID,
		AccessToken:     accessToken,
	}

	token, expiresAt, err := s.codec.Sign(session)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	session.ExpiresAt = expiresAt

	s.writeCookie(w, token, expiresAt)
	return session, nil
}

// Refresh re-signs an existing session with a new expiry and replaces the
// cookie on the response. The payload is unchanged; only issuance and expiry
// move. Returns the new expiry.
func (s *Store) Refresh(w http.ResponseWriter, session *models.Session) (time.Time, error) {
	token, expiresAt, err := s.codec.Sign(session)
	if err != nil {
		return time.Time{}, fmt.Errorf("refreshing session: %w", err)
	}
	s.writeCookie(w, token, expiresAt)
	return expiresAt, nil
}

// Clear deletes the session cookie. Clearing an absent session is a no-op
// from the client's point of view, so callers don't need to check first.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) writeCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
