package controllers

import (
	"fmt"
	"time"

	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/services"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllTasks returns all tasks, optionally filtered by status or assignee
func GetAllTasks(c *fiber.Ctx) error {
	query := db.DB.Preload("Assignee").Order("due_date asc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		query = query.Where("assignee_id = ?", assignee)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tasks",
			Error:   err.Error(),
		})
	}
	return c.JSON(tasks)
}

// GetTask returns a task by ID
func GetTask(c *fiber.Ctx) error {
	id := c.Params("id")
	var task models.Task
	if err := db.DB.Preload("Assignee").First(&task, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Task not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(task)
}

// CreateTask creates a task and notifies the assignee
func CreateTask(c *fiber.Ctx) error {
	task := new(models.Task)
	if err := c.BodyParser(task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if task.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Task title is required",
		})
	}

	var assignee models.User
	if err := db.DB.First(&assignee, task.AssigneeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assignee not found",
		})
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create task",
			Error:   err.Error(),
		})
	}

	services.NotifyFanOut(db.DB, task.AssigneeID, services.NotificationEvent{
		Title:       "New task assigned",
		Description: task.Title,
		Type:        models.NotifTaskAssigned,
		Link:        fmt.Sprintf("/tasks/%d", task.ID),
	})

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask merges supplied fields into a task
func UpdateTask(c *fiber.Ctx) error {
	id := c.Params("id")

	var task models.Task
	if err := db.DB.First(&task, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Task not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Task)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&task).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update task",
			Error:   err.Error(),
		})
	}
	return c.JSON(task)
}

// CompleteTask marks a task done and stamps CompletedAt
func CompleteTask(c *fiber.Ctx) error {
	id := c.Params("id")

	var task models.Task
	if err := db.DB.First(&task, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Task not found",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.TaskDone,
		"completed_at": &now,
	}
	if err := db.DB.Model(&task).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to complete task",
			Error:   err.Error(),
		})
	}
	return c.JSON(task)
}

// DeleteTask soft-deletes a task
func DeleteTask(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Task{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete task",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
