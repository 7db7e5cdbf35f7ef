package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupTicketRoutes configures all support ticket related routes
func SetupTicketRoutes(app *fiber.App) {
	support := app.Group("/support", middleware.Protected())

	// Categories
	support.Get("/categories", middleware.RequirePermission("support", "view"), controllers.GetTicketCategories)
	support.Post("/categories", middleware.RequirePermission("support", "create"), controllers.CreateTicketCategory)
	support.Patch("/categories/:id", middleware.RequirePermission("support", "edit"), controllers.UpdateTicketCategory)
	support.Delete("/categories/:id", middleware.RequirePermission("support", "delete"), controllers.DeleteTicketCategory)

	// Tickets
	support.Get("/tickets", middleware.RequirePermission("support", "view"), controllers.GetAllTickets)
	support.Get("/tickets/:id", middleware.RequirePermission("support", "view"), controllers.GetTicket)
	support.Post("/tickets", middleware.RequirePermission("support", "create"), controllers.CreateTicket)
	support.Patch("/tickets/:id", middleware.RequirePermission("support", "edit"), controllers.UpdateTicket)
	support.Patch("/tickets/:id/status", middleware.RequirePermission("support", "edit"), controllers.ChangeTicketStatus)
	support.Post("/tickets/:id/remarks", middleware.RequirePermission("support", "edit"), controllers.AddTicketRemark)
	support.Patch("/tickets/:id/assignee", middleware.RequirePermission("support", "edit"), controllers.ReassignTicket)
	support.Delete("/tickets/:id", middleware.RequirePermission("support", "delete"), controllers.DeleteTicket)

	// Attachments
	support.Post("/attachments", middleware.RequirePermission("support", "create"), controllers.UploadTicketAttachment)
}
