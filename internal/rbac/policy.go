package rbac

import (
	"hr-panel/internal/domain"
)

// The rules in this file are the single source of truth for who may do
// what. Route-level gates (see enforcer.go) are derived from the same
// tables; target-dependent rules are enforced again inside services so a
// denied action is always a no-op.
//
// NOTE: management membership below and the rank comparison in
// CanDeleteGroup order Admin and Manager differently. That inconsistency
// is inherited product behavior awaiting clarification; do not unify it
// here.

// managementRoles have cross-employee visibility for attendance, payroll,
// leave and announcements.
var managementRoles = map[domain.Role]bool{
	domain.RoleCEO:     true,
	domain.RoleAdmin:   true,
	domain.RoleManager: true,
	domain.RoleHR:      true,
}

// groupAdminRoles may create chat groups.
var groupAdminRoles = map[domain.Role]bool{
	domain.RoleCEO:     true,
	domain.RoleAdmin:   true,
	domain.RoleManager: true,
}

func IsManagement(r domain.Role) bool {
	return managementRoles[r]
}

func CanCreateGroup(r domain.Role) bool {
	return groupAdminRoles[r]
}

func isTopTier(r domain.Role) bool {
	return r == domain.RoleCEO || r == domain.RoleManager
}

// CanDeleteGroup. creatorRole is nil when the creating user no longer
// exists; an Admin may then clean the group up.
func CanDeleteGroup(actorID string, actorRole domain.Role, createdBy string, creatorRole *domain.Role) bool {
	if isTopTier(actorRole) {
		return true
	}
	if createdBy == actorID {
		return true
	}
	if actorRole == domain.RoleAdmin {
		if creatorRole == nil {
			return true
		}
		return domain.Rank(*creatorRole) <= domain.Rank(domain.RoleAdmin)
	}
	return false
}

func CanManageGroupMembers(actorID string, actorRole domain.Role, createdBy string) bool {
	if isTopTier(actorRole) {
		return true
	}
	return createdBy == actorID
}

// CanRemoveGroupMember: CEO/Manager remove anyone; a creator may remove
// members except CEO/Manager ones.
func CanRemoveGroupMember(actorID string, actorRole domain.Role, createdBy string, memberRole domain.Role) bool {
	if isTopTier(actorRole) {
		return true
	}
	if createdBy == actorID {
		return !isTopTier(memberRole)
	}
	return false
}

// CanManageUser covers create/edit/delete/reset-password of user records.
func CanManageUser(actorRole, targetRole domain.Role) bool {
	switch actorRole {
	case domain.RoleCEO:
		return true
	case domain.RoleAdmin:
		return targetRole != domain.RoleCEO
	case domain.RoleHR:
		return targetRole == domain.RoleManager ||
			targetRole == domain.RoleTeamLeader ||
			targetRole == domain.RoleExecutive
	default:
		return false
	}
}

// CanAssignRole mirrors the role dropdown restrictions: HR may not hand
// out CEO/Admin/HR, Admin may not hand out CEO.
func CanAssignRole(actorRole, newRole domain.Role) bool {
	if actorRole == domain.RoleHR {
		switch newRole {
		case domain.RoleCEO, domain.RoleAdmin, domain.RoleHR:
			return false
		}
	}
	if actorRole == domain.RoleAdmin && newRole == domain.RoleCEO {
		return false
	}
	return true
}

// CanEditOwnProfile: profile self-service (name/avatar) is disabled for
// the two lowest ranks.
func CanEditOwnProfile(r domain.Role) bool {
	return r != domain.RoleExecutive && r != domain.RoleTeamLeader
}

func CanDistributeLeads(r domain.Role) bool {
	return groupAdminRoles[r]
}

// CanViewAllLeads: everyone except Executives, who only see their own
// assignments.
func CanViewAllLeads(r domain.Role) bool {
	return r != domain.RoleExecutive
}
