package rbac

import (
	"hr-panel/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Coarse, target-independent grants live in a casbin enforcer consulted by
// the RBACAuthorize middleware. Subjects are role names; the policy rows
// are derived from the same tables as policy.go at startup.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Resource/action names used by route registrations.
const (
	ResourceAttendance   = "attendance"
	ResourceLeave        = "leave"
	ResourcePayroll      = "payroll"
	ResourceAnnouncement = "announcement"
	ResourceGroup        = "group"
	ResourceLead         = "lead"
	ResourceUser         = "user"
	ResourceCalendar     = "calendar"

	ActionReadAll    = "read_all"
	ActionExport     = "export"
	ActionOverride   = "override_status"
	ActionDecide     = "decide"
	ActionManage     = "manage"
	ActionCreate     = "create"
	ActionDistribute = "distribute"
)

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if err := loadPolicies(e); err != nil {
		return nil, err
	}
	return e, nil
}

func loadPolicies(e *casbin.Enforcer) error {
	type grant struct {
		obj, act string
		allowed  func(domain.Role) bool
	}

	grants := []grant{
		{ResourceAttendance, ActionReadAll, IsManagement},
		{ResourceAttendance, ActionExport, IsManagement},
		{ResourceAttendance, ActionOverride, IsManagement},
		{ResourceLeave, ActionDecide, IsManagement},
		{ResourcePayroll, ActionManage, IsManagement},
		{ResourceAnnouncement, ActionManage, IsManagement},
		{ResourceCalendar, ActionManage, IsManagement},
		{ResourceGroup, ActionCreate, CanCreateGroup},
		{ResourceLead, ActionDistribute, CanDistributeLeads},
		{ResourceLead, ActionReadAll, CanViewAllLeads},
		// user management routes: CEO/Admin/HR reach the panel at all;
		// per-target restrictions are enforced in the user service.
		{ResourceUser, ActionManage, func(r domain.Role) bool {
			return r == domain.RoleCEO || r == domain.RoleAdmin || r == domain.RoleHR
		}},
	}

	for _, g := range grants {
		for _, role := range domain.AllRoles {
			if !g.allowed(role) {
				continue
			}
			if _, err := e.AddPolicy(string(role), g.obj, g.act); err != nil {
				return err
			}
		}
	}
	return nil
}
