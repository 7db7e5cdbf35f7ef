package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes configures all notification related routes
func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications", middleware.Protected())

	notifications.Get("/", controllers.GetMyNotifications)
	notifications.Get("/unread-count", controllers.GetUnreadCount)
	notifications.Patch("/:id/read", controllers.MarkNotificationRead)
	notifications.Post("/read-all", controllers.MarkAllNotificationsRead)
}
