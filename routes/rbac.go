package routes

import (
	"github.com/bizdesk/bizdesk-api/controllers"
	"github.com/bizdesk/bizdesk-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupRBACRoutes configures all RBAC related routes
func SetupRBACRoutes(app *fiber.App) {
	rbac := app.Group("/rbac", middleware.Protected())

	// Roles
	rbac.Post("/roles", middleware.RequirePermission("roles", "create"), controllers.CreateRole)
	rbac.Get("/roles", middleware.RequirePermission("roles", "view"), controllers.GetRoles)
	rbac.Patch("/roles/:id", middleware.RequirePermission("roles", "edit"), controllers.UpdateRole)
	rbac.Delete("/roles/:id", middleware.RequirePermission("roles", "delete"), controllers.DeleteRole)

	// Permission catalog and per-role permission save
	rbac.Get("/permissions", middleware.RequirePermission("roles", "view"), controllers.GetPermissions)
	rbac.Post("/roles/permissions", middleware.RequirePermission("roles", "edit"), controllers.SavePermissions)

	// Assign role to user
	rbac.Post("/users/role", middleware.RequirePermission("users", "edit"), controllers.AssignRoleToUser)
}
