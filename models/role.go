package models

import (
	"time"

	"gorm.io/gorm"
)

type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	Level       int            `json:"level"` // lower = more senior; sort order only
	IsElevated  bool           `json:"is_elevated"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
	Permissions []Permission   `json:"permissions,omitempty" gorm:"many2many:role_permissions;"`
}

// HasPermission reports whether the role grants action on module. The check
// is fail-closed: an unknown module or action, or an unloaded permission
// set, always denies.
func (r *Role) HasPermission(module, action string) bool {
	if r == nil {
		return false
	}
	if !IsValidModule(module) || !IsValidAction(action) {
		return false
	}
	for _, permission := range r.Permissions {
		if permission.Module == module && permission.Action == action {
			return true
		}
	}
	return false
}
