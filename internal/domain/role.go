package domain

// Role is the panel-wide user rank. The six values are fixed; there is no
// role administration beyond assigning one of these to a user.
type Role string

const (
	RoleCEO        Role = "CEO"
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleHR         Role = "HR"
	RoleTeamLeader Role = "Team Leader"
	RoleExecutive  Role = "Executive"
)

// AllRoles in descending canonical rank.
var AllRoles = []Role{
	RoleCEO,
	RoleManager,
	RoleAdmin,
	RoleHR,
	RoleTeamLeader,
	RoleExecutive,
}

// Rank is the canonical numeric ordering of roles. Note that parts of the
// permission model do NOT use this table: the management set treats
// CEO/Admin/Manager/HR as one tier. Only the group-deletion rule compares
// ranks directly. Product has not clarified whether Admin should outrank
// Manager; do not "fix" this table without that clarification.
func Rank(r Role) int {
	switch r {
	case RoleCEO:
		return 6
	case RoleManager:
		return 5
	case RoleAdmin:
		return 4
	case RoleHR:
		return 3
	case RoleTeamLeader:
		return 2
	case RoleExecutive:
		return 1
	default:
		return 0
	}
}

// ParseRole validates a role string coming from a request body.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
