package main

import (
	"github.com/avolkov-dev/corptweet/backend/internal/router"
	"github.com/avolkov-dev/corptweet/backend/internal/storage"
	"github.com/avolkov-dev/corptweet/backend/pkg/config"
	"github.com/avolkov-dev/corptweet/backend/pkg/logger"
	"github.com/avolkov-dev/corptweet/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env)

	// Initialize database connection, waiting for readiness
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Media bytes live on local disk, served under /static/uploads
	store := storage.NewLocalStore(cfg.UploadDir)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, store, cfg.UploadDir); err != nil {
		logrus.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
