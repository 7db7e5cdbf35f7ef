package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/gofiber/fiber/v2"
)

// GetDashboard aggregates the headline counts shown on the landing page
func GetDashboard(c *fiber.Ctx) error {
	var openTickets, pendingTasks, clients, leads int64
	var unpaidInvoices []models.Invoice

	if err := db.DB.Model(&models.Ticket{}).
		Where("status IN (?)", []models.TicketStatus{models.StatusOpen, models.StatusInProgress}).
		Count(&openTickets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count tickets",
		})
	}

	if err := db.DB.Model(&models.Task{}).
		Where("status <> ?", models.TaskDone).
		Count(&pendingTasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count tasks",
		})
	}

	db.DB.Model(&models.Client{}).Count(&clients)
	db.DB.Model(&models.Lead{}).Where("status NOT IN (?)", []models.LeadStatus{models.LeadConverted, models.LeadLost}).Count(&leads)

	if err := db.DB.
		Where("status IN (?)", []models.InvoiceStatus{models.InvoiceDraft, models.InvoiceSent}).
		Find(&unpaidInvoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch invoices",
		})
	}

	var outstanding float64
	for _, invoice := range unpaidInvoices {
		outstanding += invoice.Total()
	}

	return c.JSON(fiber.Map{
		"open_tickets":    openTickets,
		"pending_tasks":   pendingTasks,
		"clients":         clients,
		"active_leads":    leads,
		"unpaid_invoices": len(unpaidInvoices),
		"outstanding":     outstanding,
	})
}
