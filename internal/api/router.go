package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockapi/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Adds request timeout handling (requestTimeout, disabled when <= 0).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the stock routes (/stock).
//
// Note:
//   - Root, health and readiness endpoints (/, /healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - requestTimeout (time.Duration): Deadline applied to every request context.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(middleware.Timeout(requestTimeout))

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Stock ────────────────────────────────────
	stock := router.Group("/stock")
	{
		stock.GET("/", handler.GetSnapshot)
		stock.GET("/details/:symbol", handler.GetProfile)
		stock.GET("/history/:symbol", handler.GetHistory)
	}

	return router
}
