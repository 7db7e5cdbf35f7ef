package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupTaskRoutes configures all task related routes
func SetupTaskRoutes(app *fiber.App) {
	task := app.Group("/tasks", middleware.Protected())

	task.Get("/", middleware.RequirePermission("tasks", "view"), controllers.GetAllTasks)
	task.Get("/:id", middleware.RequirePermission("tasks", "view"), controllers.GetTask)
	task.Post("/", middleware.RequirePermission("tasks", "create"), controllers.CreateTask)
	task.Patch("/:id", middleware.RequirePermission("tasks", "edit"), controllers.UpdateTask)
	task.Post("/:id/complete", middleware.RequirePermission("tasks", "edit"), controllers.CompleteTask)
	task.Delete("/:id", middleware.RequirePermission("tasks", "delete"), controllers.DeleteTask)
}
