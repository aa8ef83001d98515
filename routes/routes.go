package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "crewpulse/controllers"
	"crewpulse/middleware"
	"crewpulse/worker"
)

func SetupAPIRoutes(app *fiber.App, db *gorm.DB, cw *worker.CampaignWorker) {
	campaignController := controller.NewCampaignController(db, log.New(os.Stdout, "CAMPAIGN: ", log.LstdFlags))
	tickController := controller.NewTickController(cw)

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Campaign routes
	campaign := api.Group("/campaigns")
	campaign.Post("/", campaignController.CreateCampaign)
	campaign.Get("/", campaignController.GetCampaigns)
	campaign.Get("/stats", campaignController.GetTenantStats)
	campaign.Post("/tick", middleware.TickRateLimiter(), tickController.TriggerTick)
	campaign.Get("/:id", campaignController.GetCampaign)
	campaign.Put("/:id", campaignController.UpdateCampaign)
	campaign.Delete("/:id", campaignController.DeleteCampaign)
	campaign.Post("/:id/activate", campaignController.ActivateCampaign)
	campaign.Post("/:id/pause", campaignController.PauseCampaign)
	campaign.Post("/:id/resume", campaignController.ResumeCampaign)
	campaign.Put("/:id/automation", campaignController.SetAutomation)
	campaign.Delete("/:id/automation", campaignController.RemoveAutomation)
	campaign.Post("/:id/analytics", campaignController.RecordAnalytics)
	campaign.Get("/:id/audience", campaignController.PreviewAudience)

	// Log initialization
	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cw *worker.CampaignWorker) {
	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup API routes
	SetupAPIRoutes(app, db, cw)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
