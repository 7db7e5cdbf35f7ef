package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionGrantsExactMatch(t *testing.T) {
	role := &Role{
		Name: "staff",
		Permissions: []Permission{
			{Module: "clients", Action: "view"},
			{Module: "support", Action: "create"},
		},
	}

	assert.True(t, role.HasPermission("clients", "view"))
	assert.True(t, role.HasPermission("support", "create"))
}

func TestHasPermissionFailsClosed(t *testing.T) {
	role := &Role{
		Name: "staff",
		Permissions: []Permission{
			{Module: "clients", Action: "view"},
		},
	}

	// Action not granted on a known module
	assert.False(t, role.HasPermission("clients", "delete"))
	// Module with no entry at all
	assert.False(t, role.HasPermission("invoices", "view"))
	// No action implies another
	assert.False(t, role.HasPermission("clients", "edit"))
}

func TestHasPermissionRejectsUnknownVocabulary(t *testing.T) {
	role := &Role{
		Name: "admin",
		Permissions: []Permission{
			{Module: "clients", Action: "view"},
		},
	}

	assert.False(t, role.HasPermission("bogus_module", "view"))
	assert.False(t, role.HasPermission("clients", "bogus_action"))
}

func TestHasPermissionNilAndEmpty(t *testing.T) {
	var nilRole *Role
	assert.False(t, nilRole.HasPermission("clients", "view"))

	empty := &Role{Name: "empty"}
	assert.False(t, empty.HasPermission("clients", "view"))
}

func TestPermissionVocabulary(t *testing.T) {
	assert.True(t, IsValidModule("support"))
	assert.True(t, IsValidModule("devops"))
	assert.False(t, IsValidModule("Support"))
	assert.False(t, IsValidModule(""))

	assert.True(t, IsValidAction("approve"))
	assert.True(t, IsValidAction("execute"))
	assert.False(t, IsValidAction("read"))
	assert.False(t, IsValidAction(""))
}
