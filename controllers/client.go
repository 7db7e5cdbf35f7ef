package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllClients returns all clients
func GetAllClients(c *fiber.Ctx) error {
	query := db.DB.Order("firm_name asc")

	if state := c.Query("state"); state != "" {
		query = query.Where("state = ?", state)
	}
	if clientType := c.Query("type"); clientType != "" {
		query = query.Where("type = ?", clientType)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clients",
			Error:   err.Error(),
		})
	}
	return c.JSON(clients)
}

// GetClient returns a client by ID
func GetClient(c *fiber.Ctx) error {
	id := c.Params("id")
	var client models.Client
	if err := db.DB.First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(client)
}

// CreateClient creates a new client
func CreateClient(c *fiber.Ctx) error {
	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if client.FirmName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Firm name is required",
		})
	}

	if err := db.DB.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create client",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates a client by ID. Existing tickets keep the snapshot
// taken when they were created
func UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")

	var client models.Client
	if err := db.DB.First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Client)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&client).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update client",
			Error:   err.Error(),
		})
	}
	return c.JSON(client)
}

// DeleteClient soft-deletes a client by ID
func DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Client{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete client",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
