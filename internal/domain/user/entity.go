package user

type Role string

const (
	RoleManager  Role = "manager"  // Sees team attendance and reports
	RoleEmployee Role = "employee" // Marks own attendance
)

// ParseRole converts a claim value into a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// IsManager checks if the role can see team data
func (r Role) IsManager() bool {
	return r == RoleManager
}
