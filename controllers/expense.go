package controllers

import (
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/bizdesk/bizdesk-api/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllExpenses returns all expenses, optionally filtered by status or
// category
func GetAllExpenses(c *fiber.Ctx) error {
	query := db.DB.Order("incurred_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch expenses",
			Error:   err.Error(),
		})
	}
	return c.JSON(expenses)
}

// CreateExpense records a pending expense
func CreateExpense(c *fiber.Ctx) error {
	expense := new(models.Expense)
	if err := c.BodyParser(expense); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if expense.Title == "" || expense.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and a positive amount are required",
		})
	}

	userID, _ := currentUser(c)
	expense.CreatedBy = userID
	expense.Status = models.ExpensePending

	if err := db.DB.Create(&expense).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create expense",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// ApproveExpense flips a pending expense to approved
func ApproveExpense(c *fiber.Ctx) error {
	return setExpenseStatus(c, models.ExpenseApproved)
}

// RejectExpense flips a pending expense to rejected
func RejectExpense(c *fiber.Ctx) error {
	return setExpenseStatus(c, models.ExpenseRejected)
}

func setExpenseStatus(c *fiber.Ctx, status models.ExpenseStatus) error {
	id := c.Params("id")

	var expense models.Expense
	if err := db.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Expense not found",
			Error:   err.Error(),
		})
	}

	if expense.Status != models.ExpensePending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only pending expenses can be approved or rejected",
		})
	}

	if err := db.DB.Model(&expense).Update("status", status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update expense",
			Error:   err.Error(),
		})
	}
	return c.JSON(expense)
}

// DeleteExpense soft-deletes an expense
func DeleteExpense(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Expense{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete expense",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
