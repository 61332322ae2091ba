package domain

import "strings"

// Role is one of a closed set of permission groups. Roles are reference
// data: referenced by users, never created or deleted at runtime.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// roleNames is the total mapping from accepted role names (request aliases
// and canonical names) to roles. Lookups are case-insensitive.
var roleNames = map[string]Role{
	"user":      RoleUser,
	"mod":       RoleModerator,
	"moderator": RoleModerator,
	"admin":     RoleAdmin,
}

// ParseRole resolves a role name to a Role. The second return value is false
// when the name is not in the closed set.
func ParseRole(name string) (Role, bool) {
	r, ok := roleNames[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// ResolveRoles maps requested role names to roles for a new user. An empty
// request yields {USER}; unrecognized names fall back to USER rather than
// erroring. The result is deduplicated and never empty.
func ResolveRoles(names []string) []Role {
	if len(names) == 0 {
		return []Role{RoleUser}
	}

	seen := make(map[Role]struct{}, len(names))
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		r, ok := ParseRole(name)
		if !ok {
			r = RoleUser
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	return roles
}

// RoleNames returns the canonical names of the given roles.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}

// RolesFromNames converts stored canonical names back to roles, dropping any
// name that is no longer part of the closed set.
func RolesFromNames(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		if r, ok := ParseRole(name); ok {
			roles = append(roles, r)
		}
	}
	return roles
}
