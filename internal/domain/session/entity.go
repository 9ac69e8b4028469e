// internal/domain/session/entity.go
package session

// Role is the access level assigned by the backend
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Session represents the authenticated user as reported by the backend's
// verify endpoint. The cart does not depend on it; checkout uses the name
// as the default customer-name field and, when gating is enabled, requires
// a session to be present.
type Session struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Valid reports whether the role is one the backend recognizes
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the session can access the back office
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin || s.Role == RoleSuperAdmin
}

// IsSuperAdmin reports whether the session can manage user roles
func (s *Session) IsSuperAdmin() bool {
	return s.Role == RoleSuperAdmin
}

// User represents a user record in the admin user list
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
