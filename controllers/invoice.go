package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllInvoices returns all invoices, optionally filtered by status or
// client
func GetAllInvoices(c *fiber.Ctx) error {
	query := db.DB.Preload("Client").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch invoices",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoices)
}

// GetInvoice returns an invoice by ID
func GetInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	var invoice models.Invoice
	if err := db.DB.Preload("Client").First(&invoice, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Invoice not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoice)
}

// CreateInvoice creates a draft invoice for a client
func CreateInvoice(c *fiber.Ctx) error {
	invoice := new(models.Invoice)
	if err := c.BodyParser(invoice); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if invoice.Number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invoice number is required",
		})
	}

	var client models.Client
	if err := db.DB.First(&client, invoice.ClientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	if err := db.DB.Create(&invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create invoice",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// MarkInvoiceSent flips a draft invoice to sent
func MarkInvoiceSent(c *fiber.Ctx) error {
	id := c.Params("id")

	var invoice models.Invoice
	if err := db.DB.First(&invoice, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Invoice not found",
			Error:   err.Error(),
		})
	}

	if invoice.Status != models.InvoiceDraft {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only draft invoices can be marked sent",
		})
	}

	if err := db.DB.Model(&invoice).Update("status", models.InvoiceSent).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update invoice",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoice)
}

// MarkInvoicePaid records a payment and flips the invoice to paid
func MarkInvoicePaid(c *fiber.Ctx) error {
	id := c.Params("id")

	var invoice models.Invoice
	if err := db.DB.First(&invoice, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Invoice not found",
			Error:   err.Error(),
		})
	}

	payment := new(models.Payment)
	if err := c.BodyParser(payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if payment.Amount == 0 {
		payment.Amount = invoice.Total()
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return invoice.MarkPaid(tx, payment)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to mark invoice paid",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoice)
}

// DeleteInvoice soft-deletes an invoice
func DeleteInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete invoice",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
