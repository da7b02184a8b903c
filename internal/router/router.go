package router

import (
	"github.com/avolkov-dev/corptweet/backend/internal/handlers"
	"github.com/avolkov-dev/corptweet/backend/internal/middleware"
	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/monitoring"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"github.com/avolkov-dev/corptweet/backend/internal/services"
	"github.com/avolkov-dev/corptweet/backend/internal/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(monitoring.Middleware())
	logrus.Info("Global middleware configured")
}

// SetupRoutes migrates the schema, wires repositories into services
// and handlers, and registers all application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB, store storage.MediaStore, uploadDir string) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Media{},
		&models.Follow{},
		&models.Like{},
	)
	if err != nil {
		return err
	}
	logrus.Info("Schema migrations completed")

	// Health, metrics and uploaded media are always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/static/uploads", uploadDir)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	tweetRepo := repositories.NewPostgresTweetRepository(db)
	mediaRepo := repositories.NewPostgresMediaRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)

	// --- Initialize Services ---
	tweetService := services.NewTweetService(db, tweetRepo, mediaRepo, likeRepo)
	relationshipService := services.NewRelationshipService(db, followRepo, userRepo)
	timelineService := services.NewTimelineService(tweetRepo, mediaRepo, likeRepo, followRepo, userRepo)
	profileService := services.NewProfileService(userRepo, followRepo)

	// --- Protected routes (require a valid api-key header) ---
	api := e.Group("/api")
	api.Use(middleware.APIKeyAuthMiddleware(userRepo))

	tweetHandler := handlers.NewTweetHandler(tweetService, timelineService)
	tweetHandler.RegisterTweetRoutes(api)

	mediaHandler := handlers.NewMediaHandler(tweetService, store)
	mediaHandler.RegisterMediaRoutes(api)

	followHandler := handlers.NewFollowHandler(relationshipService)
	followHandler.RegisterFollowRoutes(api)

	userHandler := handlers.NewUserHandler(profileService)
	userHandler.RegisterProfileRoutes(api)

	logrus.Info("All routes configured")
	return nil
}
