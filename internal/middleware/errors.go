package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockapi/internal/domain/dto"
	"github.com/guttosm/stockapi/internal/logger"
)

// ErrorHandler is the single place where handler errors become HTTP responses.
//
// Handlers report failures with c.Error(err) and return without writing a body.
// After the chain runs, the last recorded error is rendered as
// {"error": err.Error()} with the status chosen by statusFor.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	status := statusFor(err)

	logger.Ctx(c.Request.Context()).Error().
		Err(err).
		Int("status", status).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
}

// statusFor maps a handler error to an HTTP status. Every failure is a 500:
// provider "not found" and transport errors share one response shape.
func statusFor(error) int {
	return http.StatusInternalServerError
}

// AbortWithError writes an error body with an explicit status and stops the chain.
// Used for failures that are decided in middleware rather than by a handler.
func AbortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
}
