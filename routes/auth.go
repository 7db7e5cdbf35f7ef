package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Get("/users", middleware.Protected(), middleware.RequirePermission("users", "view"), controllers.GetUsers)
	auth.Get("/user/:id", middleware.Protected(), middleware.RequirePermission("users", "view"), controllers.GetUserByID)
}
