package db

import (
	"fmt"
	"log"

	"github.com/bizdesk/bizdesk-api/models"
	"gorm.io/gorm"
)

// Seed creates the default roles, the full permission catalog and the
// ticket-number counter. Safe to run repeatedly; existing rows are kept.
func Seed(database *gorm.DB) error {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access", Level: 1, IsElevated: true},
		{Name: "manager", Description: "Manager with approval rights", Level: 2},
		{Name: "staff", Description: "Staff member handling day-to-day work", Level: 3},
	}

	for _, role := range roles {
		var existing models.Role
		if database.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			if err := database.Create(&role).Error; err != nil {
				return fmt.Errorf("failed to create role %s: %w", role.Name, err)
			}
		}
	}

	// One permission per (module, action) pair across the whole vocabulary.
	for _, module := range models.Modules {
		for _, action := range models.Actions {
			name := fmt.Sprintf("%s_%s", action, module)
			var existing models.Permission
			if database.Where("name = ?", name).First(&existing).RowsAffected == 0 {
				permission := models.Permission{
					Name:        name,
					Description: fmt.Sprintf("Can %s %s", action, module),
					Module:      module,
					Action:      action,
				}
				if err := database.Create(&permission).Error; err != nil {
					return fmt.Errorf("failed to create permission %s: %w", name, err)
				}
			}
		}
	}

	// Admin gets everything.
	var adminRole models.Role
	if database.Where("name = ?", "admin").First(&adminRole).RowsAffected > 0 {
		var allPermissions []models.Permission
		database.Find(&allPermissions)

		if err := database.Model(&adminRole).Association("Permissions").Replace(allPermissions); err != nil {
			return fmt.Errorf("failed to assign admin permissions: %w", err)
		}
	}

	// Manager gets view/create/edit everywhere plus approve/reject on
	// expenses and payments.
	var managerRole models.Role
	if database.Where("name = ?", "manager").First(&managerRole).RowsAffected > 0 {
		var managerPermissions []models.Permission
		database.Where("action IN (?)", []string{"view", "create", "edit"}).
			Or("module IN (?) AND action IN (?)", []string{"expenses", "payments"}, []string{"approve", "reject"}).
			Find(&managerPermissions)

		if err := database.Model(&managerRole).Association("Permissions").Replace(managerPermissions); err != nil {
			return fmt.Errorf("failed to assign manager permissions: %w", err)
		}
	}

	// Staff can view and create in the operational modules.
	var staffRole models.Role
	if database.Where("name = ?", "staff").First(&staffRole).RowsAffected > 0 {
		var staffPermissions []models.Permission
		database.Where("module IN (?)", []string{"dashboard", "clients", "tasks", "support", "notifications", "leads"}).
			Where("action IN (?)", []string{"view", "create"}).
			Find(&staffPermissions)

		if err := database.Model(&staffRole).Association("Permissions").Replace(staffPermissions); err != nil {
			return fmt.Errorf("failed to assign staff permissions: %w", err)
		}
	}

	// Ticket number counter starts at zero; first ticket gets 000001.
	var counter models.Counter
	if database.Where("name = ?", models.TicketCounter).First(&counter).RowsAffected == 0 {
		if err := database.Create(&models.Counter{Name: models.TicketCounter, Value: 0}).Error; err != nil {
			return fmt.Errorf("failed to create ticket counter: %w", err)
		}
	}

	return nil
}

// SeedDefaults runs Seed against the global connection and logs the outcome.
func SeedDefaults() {
	if err := Seed(DB); err != nil {
		log.Fatal("Failed to seed default data: ", err)
	}
	fmt.Println("✅ Default roles and permissions seeded successfully!")
}
