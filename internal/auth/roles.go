package auth

// The three roles the system knows about.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleSales      = "sales"
)

// Allowed reports whether a user with the given role may enter a route
// gated on the required roles. Superadmin passes every gate; this is an
// explicit override in the permission check, not a role hierarchy.
func Allowed(role string, required ...string) bool {
	if role == RoleSuperadmin {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
