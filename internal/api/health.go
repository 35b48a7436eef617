package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockapi/internal/domain/dto"
	"github.com/guttosm/stockapi/internal/logger"
)

// RootMessage is the body served by GET /.
const RootMessage = "Stock API is running!"

// HealthHandler provides the root message plus liveness and readiness endpoints.
//
// Responsibilities:
//   - /: Fixed message confirming the process is running.
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the provider session).
type HealthHandler struct {
	ping func(ctx context.Context) error // Checks the upstream provider
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - ping (func(context.Context) error): Reports whether the provider is reachable.
//     Typically service.StockService.Ready. A nil ping always reports ready.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Register mounts the root, health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /: {"message": "Stock API is running!"}.
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if ping succeeds, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/healthz", h.Live)
	r.GET("/readyz", h.Ready)
}

// Root godoc
// @Summary      Service message
// @Description  Confirms the process is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: RootMessage})
}

// Live godoc
// @Summary      Liveness probe
// @Description  Always returns OK if the service is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /healthz [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Returns ready if a provider session can be obtained
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Failure      503  {object}  dto.StatusResponse
// @Router       /readyz [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			logger.Ctx(c.Request.Context()).Warn().Err(err).Msg("readiness check failed")
			c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Status: "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ready"})
}
