package main

import (
	"context"
	"log"
	"os"
	"riftstats/api/cache"
	"riftstats/api/modules"
	"riftstats/api/routes"
	"riftstats/pkg/config"
	"riftstats/pkg/logger"
	"riftstats/pkg/redis"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	appLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Error creating the logger: %v", err)
	}

	// Ship the logs to the bucket hourly when one is configured.
	if config.Bucket.LogBucket != "" {
		appLogger.StartUploadWorker(context.Background(), "api", time.Hour)
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		Logger:   appLogger,
		MemCache: cache.NewMemCache(),
		Redis:    redis.GetClient(),
	})
	defer module.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
		module.HealthHandler,
	)

	// Start the server.
	appLogger.Infof("starting the api on :8080")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Error running the server: %v", err)
	}
}
