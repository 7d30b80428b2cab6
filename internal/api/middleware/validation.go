package middleware

import (
	"net/http"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RequestValidation middleware tags every request with an ID and rejects
// oversized POST bodies before handlers see them.
func RequestValidation(maxBodySize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for POST requests
			if c.Request().Method == http.MethodPost {
				contentLength := c.Request().ContentLength
				if contentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
