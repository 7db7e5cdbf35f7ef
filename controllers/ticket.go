package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/services"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// currentUser pulls the caller's id and name out of the JWT claims.
func currentUser(c *fiber.Ctx) (uint, string) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ""
	}
	id, _ := claims["id"].(float64)

	var user models.User
	if db.DB.First(&user, uint(id)).RowsAffected == 0 {
		return uint(id), ""
	}
	return user.ID, user.Name
}

// GetAllTickets returns all tickets, newest first
func GetAllTickets(c *fiber.Ctx) error {
	query := db.DB.Preload("Remarks").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		query = query.Where("assignee_id = ?", assignee)
	}

	var tickets []models.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tickets",
			Error:   err.Error(),
		})
	}
	return c.JSON(tickets)
}

// GetTicket returns a ticket by ID with its remarks
func GetTicket(c *fiber.Ctx) error {
	id := c.Params("id")
	var ticket models.Ticket
	if err := db.DB.Preload("Remarks", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at asc")
	}).First(&ticket, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Ticket not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(ticket)
}

// CreateTicket opens a new ticket
func CreateTicket(c *fiber.Ctx) error {
	var input services.CreateTicketInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	input.CreatorID, input.CreatorName = currentUser(c)

	ticket, err := services.CreateTicket(db.DB, input)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrNoAssignee) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(utils.ErrorResponse{
			Message: "Failed to create ticket",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// UpdateTicket merges general fields; a status change goes through the
// lifecycle so ClosedAt stamping and notifications are not skipped
func UpdateTicket(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid ticket id",
			Error:   err.Error(),
		})
	}

	type UpdateTicketInput struct {
		Title       string                `json:"title"`
		Description string                `json:"description"`
		Priority    models.TicketPriority `json:"priority"`
		Status      models.TicketStatus   `json:"status"`
		DueDate     *time.Time            `json:"due_date"`
		Source      string                `json:"source"`
	}

	input := new(UpdateTicketInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var ticket models.Ticket
	if err := db.DB.First(&ticket, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Ticket not found",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Priority != "" {
		updates["priority"] = input.Priority
	}
	if input.Source != "" {
		updates["source"] = input.Source
	}
	if input.DueDate != nil {
		updates["due_date"] = input.DueDate
	}
	if input.Status != "" && input.Status != ticket.Status {
		if len(updates) > 0 {
			if err := db.DB.Model(&ticket).Updates(updates).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
					Message: "Failed to update ticket",
					Error:   err.Error(),
				})
			}
		}
		updated, err := services.ChangeTicketStatus(db.DB, uint(id), input.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Failed to change ticket status",
				Error:   err.Error(),
			})
		}
		return c.JSON(updated)
	}

	updated, err := services.UpdateTicketFields(db.DB, uint(id), updates)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update ticket",
			Error:   err.Error(),
		})
	}
	return c.JSON(updated)
}

// ChangeTicketStatus updates only the ticket status
func ChangeTicketStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid ticket id",
			Error:   err.Error(),
		})
	}

	type StatusInput struct {
		Status models.TicketStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	ticket, err := services.ChangeTicketStatus(db.DB, uint(id), input.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to change ticket status",
			Error:   err.Error(),
		})
	}
	return c.JSON(ticket)
}

// AddTicketRemark appends a comment to a ticket, optionally with an
// uploaded attachment
func AddTicketRemark(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid ticket id",
			Error:   err.Error(),
		})
	}

	type RemarkInput struct {
		Comment    string `json:"comment"`
		Attachment string `json:"attachment"`
	}
	input := new(RemarkInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	authorID, authorName := currentUser(c)

	remark, err := services.AddTicketRemark(db.DB, uint(id), models.TicketRemark{
		AuthorID:   authorID,
		AuthorName: authorName,
		Comment:    input.Comment,
		Attachment: input.Attachment,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to add remark",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(remark)
}

// ReassignTicket moves the ticket to another user
func ReassignTicket(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid ticket id",
			Error:   err.Error(),
		})
	}

	type ReassignInput struct {
		UserID uint `json:"user_id"`
	}
	input := new(ReassignInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	ticket, err := services.ReassignTicket(db.DB, uint(id), input.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to reassign ticket",
			Error:   err.Error(),
		})
	}
	return c.JSON(ticket)
}

// DeleteTicket hard-deletes a ticket and its remarks. No notification is
// sent for admin deletes
func DeleteTicket(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := db.DB.Where("ticket_id = ?", id).Delete(&models.TicketRemark{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete ticket remarks",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.Ticket{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete ticket",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadTicketAttachment uploads a file to Cloudinary and returns its URL
func UploadTicketAttachment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No file supplied",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, utils.GenerateUUID(), "tickets")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload attachment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}

// GetTicketCategories lists all categories with their fixed assignees
func GetTicketCategories(c *fiber.Ctx) error {
	var categories []models.TicketCategory
	if err := db.DB.Preload("Assignee").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// CreateTicketCategory creates a category, optionally bound to a fixed
// assignee
func CreateTicketCategory(c *fiber.Ctx) error {
	category := new(models.TicketCategory)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	if category.AssigneeID != nil {
		var user models.User
		if err := db.DB.First(&user, *category.AssigneeID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Assignee %d not found", *category.AssigneeID),
			})
		}
	}

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateTicketCategory edits a category's label or fixed assignee
func UpdateTicketCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.TicketCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	input := new(models.TicketCategory)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.AssigneeID != nil {
		var user models.User
		if err := db.DB.First(&user, *input.AssigneeID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Assignee %d not found", *input.AssigneeID),
			})
		}
	}

	updates := map[string]interface{}{
		"assignee_id": input.AssigneeID,
	}
	if input.Label != "" {
		updates["label"] = input.Label
	}

	if err := db.DB.Model(&category).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update category",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// DeleteTicketCategory refuses deletion while tickets still reference the
// category
func DeleteTicketCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.TicketCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var count int64
	if err := db.DB.Model(&models.Ticket{}).Where("category = ?", category.Name).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check category usage",
			Error:   err.Error(),
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Category is in use by %d tickets", count),
		})
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
