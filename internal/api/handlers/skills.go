package handlers

import (
	"net/http"
	"strings"

	"github.com/ysaikumar21/ResumeIntelligence/internal/logging"
	"github.com/ysaikumar21/ResumeIntelligence/internal/skills"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"

	"github.com/labstack/echo/v4"
)

// ListUserSkillsHandler lists a user's tracked skills grouped by category
func ListUserSkillsHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		tracked, err := store.GetUserSkills(userID)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load skills")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"skills": tracked,
			"count":  len(tracked),
		})
	}
}

// TrackSkillHandler upserts a manually tracked skill. Repeated tracking of
// the same skill updates proficiency in place.
func TrackSkillHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := getRequestID(c)
		logger := logging.GetGlobalLogger()

		userID, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		var req models.TrackSkillRequest
		if err := c.Bind(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validate.Struct(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		category := req.SkillCategory
		if category == "" {
			category = skills.CategoryOf(req.SkillName)
		}

		tracking := &models.SkillTracking{
			UserID:           userID,
			SkillName:        req.SkillName,
			SkillCategory:    category,
			ProficiencyLevel: req.ProficiencyLevel,
		}
		if err := store.UpsertSkill(tracking); err != nil {
			logger.Error("Failed to track skill", map[string]interface{}{
				"request_id": requestID,
				"user_id":    userID,
				"skill":      req.SkillName,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to save skill")
		}

		return c.JSON(http.StatusOK, tracking)
	}
}

// LearningPathHandler builds a learning timeline toward a target role
func LearningPathHandler() echo.HandlerFunc {
	matcher := skills.NewMatcher()

	return func(c echo.Context) error {
		var req models.LearningPathRequest
		if err := c.Bind(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validate.Struct(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		path := matcher.BuildLearningPath(req.TargetRole, req.CurrentSkills)
		if path == nil {
			return jsonError(c, http.StatusBadRequest, "unknown_role",
				"Unknown target role. Available roles: "+strings.Join(skills.Roles(), ", "))
		}

		return c.JSON(http.StatusOK, path)
	}
}
