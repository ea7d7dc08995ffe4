package models

import "fmt"

// Role represents a user role in the system
type Role string

// The platform recognizes exactly four roles. A signed session always
// carries one of these; anything else fails verification.
const (
	RoleAdmin  Role = "admin"  // platform administrator, full access to the admin area
	RoleTeam   Role = "team"   // team account holder, manages a team dashboard
	RoleMember Role = "member" // member of a team, works inside a workspace
	RoleUser   Role = "user"   // standalone user without a team or account
)

// validRoles is the closed set of recognized roles.
var validRoles = map[Role]struct{}{
	RoleAdmin:  {},
	RoleTeam:   {},
	RoleMember: {},
	RoleUser:   {},
}

// ListRoles returns all recognized roles, highest privilege first.
func ListRoles() []string {
	return []string{
		RoleAdmin.String(),
		RoleTeam.String(),
		RoleMember.String(),
		RoleUser.String(),
	}
}

// IsValid checks if the Role is one of the predefined valid roles.
func (r Role) IsValid() bool {
	_, exists := validRoles[r]
	return exists
}

// String implements the fmt.Stringer interface, providing a string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// UnmarshalText and MarshalText methods
func (r *Role) UnmarshalText(text []byte) error {
	s := Role(text)
	if !s.IsValid() {
		return fmt.Errorf("invalid role: %s", text)
	}
	*r = s
	return nil
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// LandingPath returns the default landing route for a role. It is used both
// when an authenticated user hits an auth page and when a user requests a
// route their role does not permit. Unrecognized roles land in the workspace,
// which grants nothing beyond what any authenticated role already has.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleTeam:
		return "/dashboard"
	case RoleMember, RoleUser:
		return "/workspace"
	default:
		return "/workspace"
	}
}
