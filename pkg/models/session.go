package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity embedded in a session. It mirrors what the external
// auth service returns on login or registration.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
}

// Account is a membership in an account (a team or organization) as seen by
// the signed-in user. Role here is the role within that account, which is
// independent of the session's UserType.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

// Session is the decoded form of the signed session cookie. It exists only
// for the duration of a single request; the cookie on the client is the sole
// durable copy.
type Session struct {
	User            User      `json:"user"`
	UserType        Role      `json:"userType"`
	Accounts        []Account `json:"accounts,omitempty"`
	ActiveAccountID *string   `json:"activeAccountId,omitempty"`
	AccessToken     string    `json:"accessToken"`
	ExpiresAt       time.Time `json:"expiresAt"`
}
