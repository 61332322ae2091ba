package domain

// Principal is the request-scoped authenticated identity. It is derived
// fresh from the credential store on every request that presents a valid
// token and lives only for the duration of that request.
type Principal struct {
	ID       string
	Username string
	Email    string
	Roles    []Role
}

// NewPrincipal converts a stored user into the shape the authorization
// layer consumes.
func NewPrincipal(u *User) Principal {
	roles := make([]Role, len(u.Roles))
	copy(roles, u.Roles)
	return Principal{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    roles,
	}
}

// HasAnyRole reports whether the principal holds at least one of the given
// roles (OR semantics).
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, required := range roles {
		for _, held := range p.Roles {
			if held == required {
				return true
			}
		}
	}
	return false
}
