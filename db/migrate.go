package db

import (
	"fmt"
	"log"

	"github.com/bizdesk/bizdesk-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Client{},
		&models.TicketCategory{},
		&models.Ticket{},
		&models.TicketRemark{},
		&models.Counter{},
		&models.Notification{},
		&models.Invoice{},
		&models.Payment{},
		&models.Task{},
		&models.Lead{},
		&models.Expense{},
		&models.Service{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
