// Package authorization defines the roles carried in a verified session.
package authorization

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleLearner UserRole = "learner"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleLearner
}

// ParseUserRole falls back to RoleLearner for unknown values so that a token
// with a malformed role never gains admin rights.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleLearner
}
