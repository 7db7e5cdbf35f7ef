package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllLeads returns all leads, optionally filtered by status
func GetAllLeads(c *fiber.Ctx) error {
	query := db.DB.Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch leads",
			Error:   err.Error(),
		})
	}
	return c.JSON(leads)
}

// CreateLead records a new lead
func CreateLead(c *fiber.Ctx) error {
	lead := new(models.Lead)
	if err := c.BodyParser(lead); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if lead.FirmName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Firm name is required",
		})
	}

	if err := db.DB.Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create lead",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

// UpdateLead merges supplied fields into a lead
func UpdateLead(c *fiber.Ctx) error {
	id := c.Params("id")

	var lead models.Lead
	if err := db.DB.First(&lead, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lead not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Lead)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&lead).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update lead",
			Error:   err.Error(),
		})
	}
	return c.JSON(lead)
}

// ConvertLead turns a qualified lead into a client and links the two
func ConvertLead(c *fiber.Ctx) error {
	id := c.Params("id")

	var lead models.Lead
	if err := db.DB.First(&lead, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lead not found",
			Error:   err.Error(),
		})
	}

	if lead.Status == models.LeadConverted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Lead is already converted",
		})
	}

	client := models.Client{
		FirmName:      lead.FirmName,
		ContactPerson: lead.ContactPerson,
		Email:         lead.Email,
		Mobile:        lead.Mobile,
		State:         lead.State,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			return err
		}
		return tx.Model(&lead).Updates(map[string]interface{}{
			"status":    models.LeadConverted,
			"client_id": client.ID,
		}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to convert lead",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"lead":   lead,
		"client": client,
	})
}

// DeleteLead soft-deletes a lead
func DeleteLead(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Lead{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete lead",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
