package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ysaikumar21/ResumeIntelligence/internal/logging"
	"github.com/ysaikumar21/ResumeIntelligence/internal/parser"
	"github.com/ysaikumar21/ResumeIntelligence/internal/skills"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CreateJobHandler stores a pasted job description. Markup is stripped from
// the description and, when the caller supplies no skill list, required skills
// are extracted from the cleaned text.
func CreateJobHandler(store *storage.Store) echo.HandlerFunc {
	cleaner := parser.NewHTMLCleaner()
	matcher := skills.NewMatcher()

	return func(c echo.Context) error {
		requestID := getRequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.CreateJobRequest
		if err := c.Bind(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validate.Struct(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		description := cleaner.Clean(req.Description)

		requiredSkills := matcher.Normalize(req.RequiredSkills)
		if len(requiredSkills) == 0 {
			requiredSkills = matcher.ExtractJobSkills(description)
		}

		skillsJSON, err := json.Marshal(requiredSkills)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "internal_error", "Failed to serialize skills")
		}

		job := &models.JobDescription{
			Title:           req.Title,
			Company:         req.Company,
			Description:     description,
			RequiredSkills:  skillsJSON,
			ExperienceLevel: req.ExperienceLevel,
			Location:        req.Location,
		}
		if err := store.SaveJobDescription(job); err != nil {
			logger.Error("Failed to save job description", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to save job description")
		}

		logger.Info("Job description stored", map[string]interface{}{
			"request_id": requestID,
			"job_id":     job.ID,
			"title":      job.Title,
			"skills":     len(requiredSkills),
		})

		return c.JSON(http.StatusCreated, job)
	}
}

// GetJobHandler fetches a stored job description by ID
func GetJobHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		job, err := store.GetJobDescription(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, http.StatusNotFound, "job_not_found", "No job description with that ID")
			}
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load job description")
		}

		return c.JSON(http.StatusOK, job)
	}
}
