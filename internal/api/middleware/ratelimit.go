package middleware

import (
	"net/http"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// AnalysisRateLimit throttles analysis runs with a token bucket refilled at
// perMinute tokens per minute. Scoring is CPU-bound, so a single shared
// limiter protects the whole process.
func AnalysisRateLimit(perMinute int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limit_exceeded",
					Message:   "Too many analysis requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
