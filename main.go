package main

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/bizdesk/bizdesk-api/cron"
	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/redis"
	"github.com/bizdesk/bizdesk-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		db.Migrate()
		db.SeedDefaults()
	}

	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("BizDesk API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupTicketRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupBillingRoutes(app)
	routes.SetupTaskRoutes(app)
	routes.SetupLeadRoutes(app)
	routes.SetupExpenseRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupDashboardRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
