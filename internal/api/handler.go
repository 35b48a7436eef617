package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockapi/internal/domain/dto"
	"github.com/guttosm/stockapi/internal/service"
)

// Handler provides HTTP handlers for the /stock endpoints.
//
// Responsibilities:
//   - Read the symbol path parameter, passing it through untouched
//   - Call the stock service with the request context
//   - Translate service results into response DTOs
//
// Failures are reported with c.Error and rendered by middleware.ErrorHandler.
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): Service used to reach the market-data provider.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetSnapshot handles GET /stock/ requests.
//
// Responses:
//   - 200 OK: Daily bars for every configured symbol, grouped in list order.
//     An empty array when no symbol produced rows.
//   - 500 Internal Server Error: Every symbol failed, or the request was cancelled.
//
// GetSnapshot godoc
// @Summary      Batch snapshot
// @Description  Daily OHLCV bars over the last month for the configured symbol list
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.SnapshotBarResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse        "Internal Error"
// @Router       /stock/ [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	bars, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSnapshotResponse(bars))
}

// GetProfile handles GET /stock/details/:symbol requests.
//
// Responses:
//   - 200 OK: 16-key profile object, "N/A" for every field the provider omits.
//   - 500 Internal Server Error: Unknown symbol or provider failure.
//
// GetProfile godoc
// @Summary      Company profile
// @Description  Company metadata and key quote statistics for a symbol
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.ProfileResponse  "Success"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /stock/details/{symbol} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	symbol := c.Param("symbol")

	profile, err := h.svc.Profile(c.Request.Context(), symbol)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(symbol, profile))
}

// GetHistory handles GET /stock/history/:symbol requests.
//
// Responses:
//   - 200 OK: Chronological daily bars over the last month (may be empty).
//   - 500 Internal Server Error: Unknown symbol or provider failure.
//
// GetHistory godoc
// @Summary      Price history
// @Description  Daily OHLCV bars for a symbol over the last month
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(AAPL)
// @Success      200     {array}   dto.PriceBarResponse  "Success"
// @Failure      500     {object}  dto.ErrorResponse     "Internal Error"
// @Router       /stock/history/{symbol} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	bars, err := h.svc.History(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPriceBarResponse(bars))
}
