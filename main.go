package main

import (
	"context"
	"log"

	"hitbadge-backend/controller"
	"hitbadge-backend/utils"
	"hitbadge-backend/utils/logger"
	"hitbadge-backend/worker"

	"github.com/gin-gonic/gin"
)

// @title HitBadge Backend API
// @version 1.0
// @description Hit counter badge service backed by DynamoDB.
// @description Register a user with POST /hc/{user}, then embed
// @description GET /hc/{user}/{pageId} anywhere to render a live SVG
// @description visit counter.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, err := utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	appLogger.Infof("Starting %s %s (%s)", cfg.AppName, cfg.AppVersion, cfg.AppEnv)

	r := gin.New()
	c := controller.NewController(ctx, cfg, appLogger)

	// Start server (blocking inside its goroutine)
	go func() {
		if err := c.RegisterRoutes(ctx, cfg, r, cfg.BasePath); err != nil {
			appLogger.Fatalf("Server stopped: %v", err)
		}
	}()

	// Provision tables in the background so first requests do not pay
	// the table-creation cost.
	infraWorker, err := worker.NewService(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to create infrastructure worker: %v", err)
	}
	if err := infraWorker.StartInBackground(); err != nil {
		appLogger.Fatalf("Failed to start infrastructure worker: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
