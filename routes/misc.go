package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupLeadRoutes configures all lead related routes
func SetupLeadRoutes(app *fiber.App) {
	lead := app.Group("/leads", middleware.Protected())

	lead.Get("/", middleware.RequirePermission("leads", "view"), controllers.GetAllLeads)
	lead.Post("/", middleware.RequirePermission("leads", "create"), controllers.CreateLead)
	lead.Patch("/:id", middleware.RequirePermission("leads", "edit"), controllers.UpdateLead)
	lead.Post("/:id/convert", middleware.RequirePermission("leads", "edit"), controllers.ConvertLead)
	lead.Delete("/:id", middleware.RequirePermission("leads", "delete"), controllers.DeleteLead)
}

// SetupExpenseRoutes configures all expense related routes
func SetupExpenseRoutes(app *fiber.App) {
	expense := app.Group("/expenses", middleware.Protected())

	expense.Get("/", middleware.RequirePermission("expenses", "view"), controllers.GetAllExpenses)
	expense.Post("/", middleware.RequirePermission("expenses", "create"), controllers.CreateExpense)
	expense.Post("/:id/approve", middleware.RequirePermission("expenses", "approve"), controllers.ApproveExpense)
	expense.Post("/:id/reject", middleware.RequirePermission("expenses", "reject"), controllers.RejectExpense)
	expense.Delete("/:id", middleware.RequirePermission("expenses", "delete"), controllers.DeleteExpense)
}

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")

	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequirePermission("services", "create"), controllers.CreateService)
	service.Patch("/:id", middleware.Protected(), middleware.RequirePermission("services", "edit"), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequirePermission("services", "delete"), controllers.DeleteService)
}

// SetupDashboardRoutes configures the dashboard route
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.Protected())

	dashboard.Get("/", middleware.RequirePermission("dashboard", "view"), controllers.GetDashboard)
}
