package access

import (
	"strings"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
)

// Tier is the access-control classification of a request path.
type Tier int

const (
	// TierPublic paths are reachable with or without a session.
	TierPublic Tier = iota
	// TierAdmin paths require an admin session.
	TierAdmin
	// TierAdminOrTeam paths require an admin or team session.
	TierAdminOrTeam
	// TierAuthenticated paths require any valid session, whatever the role.
	TierAuthenticated
	// TierOpen covers every path no rule claims. The proxy does not gate
	// these; see the note on Classify.
	TierOpen
)

func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierAdmin:
		return "admin"
	case TierAdminOrTeam:
		return "admin_or_team"
	case TierAuthenticated:
		return "authenticated"
	default:
		return "open"
	}
}

// publicPaths are matched exactly or as "path?query", never as a bare string
// prefix. "/pricing-extra" must not ride on "/pricing".
var publicPaths = []string{"/", "/sign-in", "/sign-up", "/pricing"}

// matchesBase reports whether path is base itself or base plus a query
// string. This is the only public-path matching rule.
func matchesBase(path, base string) bool {
	return path == base || strings.HasPrefix(path, base+"?")
}

// Classify maps a request path to its access tier. It is a pure function of
// the path and the fixed rule table: public paths first, then the role-gated
// prefixes, and everything else is open.
//
// The open default is a deliberate policy choice carried over from the
// original routing table, not an oversight: unclaimed paths (static assets
// and the like) pass through ungated rather than failing closed.
func Classify(path string) Tier {
	for _, p := range publicPaths {
		if matchesBase(path, p) {
			return TierPublic
		}
	}

	switch {
	case strings.HasPrefix(path, "/admin"):
		return TierAdmin
	case strings.HasPrefix(path, "/dashboard"):
		return TierAdminOrTeam
	case strings.HasPrefix(path, "/workspace"):
		return TierAuthenticated
	default:
		return TierOpen
	}
}

// Permits reports whether a session (nil for anonymous) satisfies the tier.
// Role checks are exhaustive over the closed role set; an unrecognized role
// never reaches here because verification rejects it first.
func (t Tier) Permits(session *models.Session) bool {
	switch t {
	case TierPublic, TierOpen:
		return true
	case TierAdmin:
		return session != nil && session.UserType == models.RoleAdmin
	case TierAdminOrTeam:
		return session != nil && (session.UserType == models.RoleAdmin || session.UserType == models.RoleTeam)
	case TierAuthenticated:
		return session != nil && session.UserType.IsValid()
	default:
		return false
	}
}
