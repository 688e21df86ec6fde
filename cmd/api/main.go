package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/application/service"
	"github.com/prasetyow/nota-spbu-api/internal/config"
	"github.com/prasetyow/nota-spbu-api/internal/domain/pricing"
	"github.com/prasetyow/nota-spbu-api/internal/infrastructure/database"
	"github.com/prasetyow/nota-spbu-api/internal/infrastructure/repository"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/handler"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/routes"
	"github.com/prasetyow/nota-spbu-api/pkg/export"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the pricing table
	table := pricing.New(cfg.Pricing.Products, cfg.Pricing.Subsidies)
	if err := table.Validate(); err != nil {
		log.Printf("Warning: pricing table inconsistency: %v", err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Start the export asset load; exports are rejected until it finishes
	assets := export.NewAssetLoader()
	assets.LoadInBackground(cfg.Export.LogoURL, cfg.Export.FetchTimeout)
	exporter := export.New(assets)

	// Initialize repositories
	stationRepo := repository.NewStationRepository(db)

	// Initialize services
	stationService := service.NewStationService(stationRepo)
	transactionService := service.NewTransactionService(table, cfg.Session.TTL)
	receiptService := service.NewReceiptService(transactionService, stationRepo, table, exporter)

	// Initialize handlers
	handlers := &routes.Handlers{
		Station:     handler.NewStationHandler(stationService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Receipt:     handler.NewReceiptHandler(receiptService),
		Product:     handler.NewProductHandler(table),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
