package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/vuteanh/bookmarks/backend/internal/events"
	"github.com/vuteanh/bookmarks/backend/internal/router"
	"github.com/vuteanh/bookmarks/backend/pkg/config"
	"github.com/vuteanh/bookmarks/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer db.CloseDB() // Ensure store connections are closed when main exits

	// Activity events are optional; the API serves without a broker
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		publisher, err = events.Connect(cfg.NatsURL)
		if err != nil {
			log.Printf("NATS unavailable, activity events disabled: %v", err)
		} else {
			defer publisher.Close()
		}
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Redis, publisher, cfg.JWTSecret)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
