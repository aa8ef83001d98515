package main

import (
	"context"
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"crewpulse/config"
	"crewpulse/middleware"
	"crewpulse/routes"
	"crewpulse/utils"
	"crewpulse/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "CREWPULSE: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Sentry
	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Printf("Sentry initialization failed: %v", err)
		}
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Redis (optional, used for tick locking and rate limiting)
	if err := config.ConnectRedis(); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Tick lock: Redis when available, in-process otherwise
	var locker utils.TickLocker
	if config.Redis != nil {
		locker = utils.NewRedisTickLock(config.Redis, config.AppConfig.TickLockTTL)
	} else {
		locker = utils.NewLocalTickLock()
	}

	// Initialize and start the campaign tick worker
	campaignWorker := worker.NewCampaignWorker(
		worker.NewGormCampaignStore(config.DB),
		worker.LogSender{},
		locker,
		utils.NewGormFacetLookup(config.DB),
		log.New(os.Stdout, "TICK: ", log.LstdFlags),
	)
	campaignWorker.Interval = config.AppConfig.TickInterval

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go campaignWorker.Start(ctx)

	// Setup routes
	routes.SetupRoutes(app, config.DB, campaignWorker)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
