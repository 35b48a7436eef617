package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockapi/config"
	"github.com/guttosm/stockapi/internal/api"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Yahoo Finance client and the stock service (NewStockService).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers the root message, health and readiness probes.
//   - Provides a cleanup function to release the provider session.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Initialize service layer (provider client + business logic)
	svc, cleanup, err := NewStockService(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize provider: %w", err)
	}

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	// Register root, health and readiness probes
	healthHandler := api.NewHealthHandler(svc.Ready)
	healthHandler.Register(router)

	return router, cleanup, nil
}
