package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tally-bridge/internal/application/service"
	"github.com/sangkips/tally-bridge/internal/config"
	"github.com/sangkips/tally-bridge/internal/infrastructure/tally"
	"github.com/sangkips/tally-bridge/internal/presentation/http/handler"
	"github.com/sangkips/tally-bridge/internal/presentation/http/routes"
	"github.com/sangkips/tally-bridge/pkg/reference"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the Tally gateway
	tallyClient := tally.NewClient(&cfg.Tally)

	// Initialize services
	refs := reference.NewGenerator()
	voucherService := service.NewVoucherService(tallyClient, refs)
	companyService := service.NewCompanyService(tallyClient)

	// Initialize handlers
	handlers := &routes.Handlers{
		Voucher: handler.NewVoucherHandler(voucherService),
		Company: handler.NewCompanyHandler(companyService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Tally endpoint: %s", cfg.Tally.URL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
