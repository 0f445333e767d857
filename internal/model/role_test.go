package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"Planner BBS":     RolePlannerBBS,
		"planner_bbs":     RolePlannerBBS,
		"Vorgesetzter CP": RoleVorgesetzerCP,
		"vorgesetzter_cp": RoleVorgesetzerCP,
		"  Chef  ":        RoleChef,
		"mitarbeiter":     RoleMitarbeiter,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRole(in), "input %q", in)
	}
}

func TestIsManager(t *testing.T) {
	for _, r := range PlanningRoles {
		assert.True(t, IsManager(r), "role %q", r)
	}
	assert.True(t, IsManager("Planner BBS"))
	assert.False(t, IsManager(RoleMitarbeiter))
	assert.False(t, IsManager(""))
	assert.False(t, IsManager("gast"))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryCV, NormalizeCategory("cv"))
	assert.Equal(t, CategoryCP, NormalizeCategory(" CP "))
	assert.Equal(t, CategoryCP, NormalizeCategory("unbekannt"))
	assert.Equal(t, CategoryCP, NormalizeCategory(""))
}

func TestResponseStatusPredicates(t *testing.T) {
	assert.True(t, ResponseAccepted.IsApplication())
	assert.True(t, ResponseConfirmed.IsApplication())
	assert.False(t, ResponseDeclined.IsApplication())
	assert.False(t, ResponseRemovedByManager.IsApplication())

	assert.True(t, ResponseConfirmed.IsConfirmed())
	assert.False(t, ResponseAccepted.IsConfirmed())

	assert.True(t, ResponseNone.ValidEmployeeInput())
	assert.True(t, ResponseAccepted.ValidEmployeeInput())
	assert.True(t, ResponseDeclined.ValidEmployeeInput())
	assert.False(t, ResponseConfirmed.ValidEmployeeInput())
	assert.False(t, ResponseRejectedByManager.ValidEmployeeInput())
}
