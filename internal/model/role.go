package model

import "strings"

// Canonical role tokens. Display names with spaces ("Planner BBS") are
// mapped onto these by NormalizeRole.
const (
	RoleMitarbeiter   = "mitarbeiter"
	RoleChef          = "chef"
	RoleVorgesetzter  = "vorgesetzter"
	RoleVorgesetzerCP = "vorgesetzter_cp"
	RolePlaner        = "planer"
	RolePlannerBBS    = "planner_bbs"
)

// AdminRoles may manage user master data (sensitive personnel fields).
// vorgesetzter_cp is deliberately excluded.
var AdminRoles = []string{RoleChef, RoleVorgesetzter}

// EventManagerRoles may create, edit and staff events.
var EventManagerRoles = []string{RoleChef, RoleVorgesetzter, RoleVorgesetzerCP}

// PlanningRoles see the manager dashboard and the public user roster.
var PlanningRoles = []string{RoleChef, RoleVorgesetzter, RolePlaner, RolePlannerBBS, RoleVorgesetzerCP}

// NormalizeRole maps a stored or displayed role name onto its canonical token.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	switch r {
	case "planner bbs", "planner_bbs":
		return RolePlannerBBS
	case "vorgesetzter cp", "vorgesetzter_cp":
		return RoleVorgesetzerCP
	}
	return r
}

// IsManager reports whether the canonical role is any of the planning roles.
// Everything else is treated as an employee.
func IsManager(role string) bool {
	r := NormalizeRole(role)
	for _, m := range PlanningRoles {
		if r == m {
			return true
		}
	}
	return false
}

// Principal is the request-scoped authentication context: a verified
// username plus its canonical role, produced by the JWT middleware.
type Principal struct {
	Username string
	Role     string
}

// IsManager reports whether the principal holds a planning role.
func (p Principal) IsManager() bool { return IsManager(p.Role) }
