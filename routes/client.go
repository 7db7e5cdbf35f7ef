package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupClientRoutes configures all client related routes
func SetupClientRoutes(app *fiber.App) {
	client := app.Group("/clients", middleware.Protected())

	client.Get("/", middleware.RequirePermission("clients", "view"), controllers.GetAllClients)
	client.Get("/:id", middleware.RequirePermission("clients", "view"), controllers.GetClient)
	client.Post("/", middleware.RequirePermission("clients", "create"), controllers.CreateClient)
	client.Patch("/:id", middleware.RequirePermission("clients", "edit"), controllers.UpdateClient)
	client.Delete("/:id", middleware.RequirePermission("clients", "delete"), controllers.DeleteClient)
}
