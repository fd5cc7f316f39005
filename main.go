// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nousyukukangen-ringo/isibasigeru/config"
	"github.com/nousyukukangen-ringo/isibasigeru/database"
	"github.com/nousyukukangen-ringo/isibasigeru/jobs"
	"github.com/nousyukukangen-ringo/isibasigeru/middleware"
	"github.com/nousyukukangen-ringo/isibasigeru/routes"
	"github.com/nousyukukangen-ringo/isibasigeru/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with demo data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Image storage
	storage, err := services.NewStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	emailService := services.NewEmailService(cfg)

	// Periodic cleanup of uploads nothing references anymore
	cleanup := jobs.NewOrphanCleanupJob(db, storage, time.Hour)
	cleanup.Start()
	defer cleanup.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "3000" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, storage, emailService)

	// Start server
	log.Printf("Starting Isibasigeru API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
