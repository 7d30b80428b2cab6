package handlers

import (
	"errors"
	"net/http"

	"github.com/ysaikumar21/ResumeIntelligence/internal/logging"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CreateUserHandler registers a user. Registering an already-known email
// returns the existing user rather than an error.
func CreateUserHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := getRequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind user request", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validate.Struct(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		user := &models.User{Name: req.Name, Email: req.Email}
		if err := store.CreateUser(user); err != nil {
			logger.Error("Failed to create user", map[string]interface{}{
				"request_id": requestID,
				"email":      req.Email,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to save user")
		}

		logger.Info("User registered", map[string]interface{}{
			"request_id": requestID,
			"user_id":    user.ID,
			"email":      user.Email,
		})

		return c.JSON(http.StatusCreated, user)
	}
}

// GetUserHandler fetches a user by email
func GetUserHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Param("email")

		user, err := store.GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, http.StatusNotFound, "user_not_found", "No user with that email")
			}
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load user")
		}

		return c.JSON(http.StatusOK, user)
	}
}
