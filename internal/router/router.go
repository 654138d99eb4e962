package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/vuteanh/bookmarks/backend/internal/events"
	"github.com/vuteanh/bookmarks/backend/internal/handlers"
	"github.com/vuteanh/bookmarks/backend/internal/middleware"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, rdb *redis.Client, publisher *events.Publisher, jwtSecret string) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Follow{},
		&models.Action{},
		&models.Image{},
		&models.ImageLike{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	actionRepo := repositories.NewPostgresActionRepository(pgdb)
	imageRepo := repositories.NewPostgresImageRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	rankingRepo := repositories.NewRedisRankingRepository(rdb)

	// --- Initialize Services ---
	activityService := services.NewActivityService(actionRepo, publisher)
	followService := services.NewFollowService(followRepo, userRepo, activityService)
	likeService := services.NewLikeService(likeRepo, imageRepo, activityService)
	feedService := services.NewFeedService(actionRepo, followRepo)
	rankingService := services.NewRankingService(rankingRepo, imageRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, activityService, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User routes
	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Image routes
	imageHandler := handlers.NewImageHandler(imageRepo, likeRepo, likeService, rankingService, activityService)
	imageHandler.RegisterImageRoutes(api)
	log.Println("Image routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	log.Println("All routes configured.")
}
