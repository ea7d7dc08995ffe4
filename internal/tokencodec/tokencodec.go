package tokencodec

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures collapse to one of these. Callers treat both the
// same way (session is absent); the distinction exists for logging and tests.
var (
	ErrSignatureInvalid = errors.New("session token signature invalid")
	ErrTokenExpired     = errors.New("session token expired")
	ErrPayloadInvalid   = errors.New("session token payload invalid")
)

// SessionClaims is the JWT claim set carried by the session cookie.
type SessionClaims struct {
	User            models.User      `json:"user"`
	UserType        models.Role      `json:"userType"`
	Accounts        []models.Account `json:"accounts,omitempty"`
	ActiveAccountID *string          `json:"activeAccountId,omitempty"`
	AccessToken     string           `json:"accessToken,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide secret. The
// secret is injected once at construction and never mutated afterwards.
type Codec struct {
	log    *slog.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Codec that signs tokens valid for ttl from the moment of
// signing, using HMAC-SHA256 over the serialized session payload.
func New(logger *slog.Logger, signingSecret string, ttl time.Duration) *Codec {
	return NewWithClock(logger, signingSecret, ttl, time.Now)
}

// NewWithClock is New with an injectable clock, used by tests that need to
// control issuance and expiry instants.
func NewWithClock(logger *slog.Logger, signingSecret string, ttl time.Duration, clock func() time.Time) *Codec {
	return &Codec{
		log:    logger,
		secret: []byte(signingSecret),
		ttl:    ttl,
		now:    clock,
	}
}

// Sign serializes the session payload into a signed token. Issuance is
// always the current instant and expiry is issuance plus the codec's ttl,
// regardless of any ExpiresAt already present on the session. The expiry
// actually embedded is returned so the cookie can mirror it.
func (c *Codec) Sign(s *models.Session) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.ttl)

	claims := SessionClaims{
		User:            s.User,
		UserType:        s.UserType,
		Accounts:        s.Accounts,
		ActiveAccountID: s.ActiveAccountID,
		AccessToken:     s.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   s.User.ID.String(),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the token's signature and expiry and returns the session it
// carries. A session that verifies is fully populated: a recognized role and
// a non-nil user identity. Partial payloads never reach callers.
func (c *Codec) Verify(tokenStr string) (*models.Session, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			// malformed tokens are indistinguishable from tampered ones
			return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}
	}
	if !token.Valid {
		return nil, ErrSignatureInvalid
	}

	if !claims.UserType.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrPayloadInvalid, claims.UserType)
	}
	if claims.User.ID == uuid.Nil || claims.User.Email == "" {
		return nil, fmt.Errorf("%w: missing user identity", ErrPayloadInvalid)
	}

	return &models.Session{
		User:            claims.User,
		UserType:        claims.UserType,
		Accounts:        claims.Accounts,
		ActiveAccountID: claims.ActiveAccountID,
		AccessToken:     claims.AccessToken,
		ExpiresAt:       claims.ExpiresAt.Time,
	}, nil
}
