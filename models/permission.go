package models

import (
	"time"

	"gorm.io/gorm"
)

// Modules is the fixed permission vocabulary. Anything outside this list is
// rejected at the boundary and denied by the check.
var Modules = []string{
	"dashboard",
	"clients",
	"users",
	"roles",
	"tasks",
	"communication",
	"support",
	"payments",
	"outstanding",
	"expenses",
	"notifications",
	"leads",
	"services",
	"invoices",
	"reports",
	"devops",
}

// Actions that can be granted against a module. No action implies another;
// "edit" does not grant "view".
var Actions = []string{
	"view",
	"create",
	"edit",
	"delete",
	"approve",
	"reject",
	"execute",
}

type Permission struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	Module      string         `json:"module"` // e.g., "clients", "support"
	Action      string         `json:"action"` // e.g., "view", "create", "edit"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
	Roles       []Role         `json:"roles,omitempty" gorm:"many2many:role_permissions;foreignKey:ID;joinForeignKey:PermissionID;references:ID;joinReferences:RoleID"`
}

// IsValidModule reports whether name is part of the module vocabulary.
func IsValidModule(name string) bool {
	for _, m := range Modules {
		if m == name {
			return true
		}
	}
	return false
}

// IsValidAction reports whether name is part of the action vocabulary.
func IsValidAction(name string) bool {
	for _, a := range Actions {
		if a == name {
			return true
		}
	}
	return false
}
