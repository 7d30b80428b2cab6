package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/internal/api/validation"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterSkillValidators(v)
	return v
}

// getRequestID returns the request ID set by the validation middleware,
// generating a fresh one when the middleware did not run.
func getRequestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

func jsonError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: getRequestID(c),
		Timestamp: time.Now(),
	})
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func invalidIDResponse(c echo.Context, name string) error {
	return jsonError(c, http.StatusBadRequest, "invalid_id", "Invalid "+name+" parameter")
}
