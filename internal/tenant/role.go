package tenant

// Role is the closed set of roles the built-in permission checks understand.
// Custom catalog roles may exist for classification, but they never grant any
// of the permissions below.
type Role int

const (
	RoleSuperAdmin Role = 1
	RoleAdmin      Role = 2
	RoleEmployee   Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleSuperAdmin:
		return "SuperAdmin"
	case RoleAdmin:
		return "Admin"
	case RoleEmployee:
		return "Employee"
	default:
		return "Unknown"
	}
}

// ParseRole maps a numeric role claim onto the closed enumeration.
func ParseRole(id int64) (Role, bool) {
	switch Role(id) {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return Role(id), true
	default:
		return 0, false
	}
}

// SeesSensitiveFields reports whether employee salary and phone may be shown
// to this role. Redaction happens at response mapping, never in storage.
// Custom catalog roles are redacted like Employee.
func (r Role) SeesSensitiveFields() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
