package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllPayments returns all payments, newest first
func GetAllPayments(c *fiber.Ctx) error {
	query := db.DB.Preload("Invoice").Preload("Client").Order("paid_at desc")

	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch payments",
			Error:   err.Error(),
		})
	}
	return c.JSON(payments)
}

// GetOutstanding lists unpaid invoices with the total amount due
func GetOutstanding(c *fiber.Ctx) error {
	var invoices []models.Invoice
	if err := db.DB.Preload("Client").
		Where("status IN (?)", []models.InvoiceStatus{models.InvoiceDraft, models.InvoiceSent}).
		Order("due_date asc").
		Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch outstanding invoices",
			Error:   err.Error(),
		})
	}

	var total float64
	for _, invoice := range invoices {
		total += invoice.Total()
	}

	return c.JSON(fiber.Map{
		"total":    total,
		"invoices": invoices,
	})
}
