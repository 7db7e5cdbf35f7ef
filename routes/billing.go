package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupBillingRoutes configures invoice, payment and outstanding routes
func SetupBillingRoutes(app *fiber.App) {
	invoices := app.Group("/invoices", middleware.Protected())
	invoices.Get("/", middleware.RequirePermission("invoices", "view"), controllers.GetAllInvoices)
	invoices.Get("/:id", middleware.RequirePermission("invoices", "view"), controllers.GetInvoice)
	invoices.Post("/", middleware.RequirePermission("invoices", "create"), controllers.CreateInvoice)
	invoices.Post("/:id/send", middleware.RequirePermission("invoices", "edit"), controllers.MarkInvoiceSent)
	invoices.Post("/:id/pay", middleware.RequirePermission("payments", "create"), controllers.MarkInvoicePaid)
	invoices.Delete("/:id", middleware.RequirePermission("invoices", "delete"), controllers.DeleteInvoice)

	payments := app.Group("/payments", middleware.Protected())
	payments.Get("/", middleware.RequirePermission("payments", "view"), controllers.GetAllPayments)

	outstanding := app.Group("/outstanding", middleware.Protected())
	outstanding.Get("/", middleware.RequirePermission("outstanding", "view"), controllers.GetOutstanding)
}
