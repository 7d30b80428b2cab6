package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/internal/analyzer"
	"github.com/ysaikumar21/ResumeIntelligence/internal/config"
	"github.com/ysaikumar21/ResumeIntelligence/internal/logging"
	"github.com/ysaikumar21/ResumeIntelligence/internal/parser"
	"github.com/ysaikumar21/ResumeIntelligence/internal/skills"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AnalyzeHandler scores a stored resume against a stored job description,
// persists the result and records the resume's skills in the user's skill
// tracking.
func AnalyzeHandler(cfg *config.Config, store *storage.Store) echo.HandlerFunc {
	scorer := analyzer.New()
	resumeParser := parser.New()

	return func(c echo.Context) error {
		startedAt := time.Now()
		requestID := getRequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		if err := validate.Struct(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		}

		resume, err := store.GetResume(req.ResumeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, http.StatusNotFound, "resume_not_found", "No resume with that ID")
			}
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load resume")
		}

		job, err := store.GetJobDescription(req.JobDescriptionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, http.StatusNotFound, "job_not_found", "No job description with that ID")
			}
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load job description")
		}

		data := resumeDataFor(resume, resumeParser)
		report := scorer.Analyze(data, jobTextFor(job))

		result, err := persistResult(store, resume, job, report)
		if err != nil {
			logger.Error("Failed to save analysis result", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to save analysis result")
		}

		trackResumeSkills(store, resume.UserID, data.Skills, logger, requestID)

		logger.Info("Analysis completed", map[string]interface{}{
			"request_id":      requestID,
			"analysis_id":     result.ID,
			"resume_id":       resume.ID,
			"job_id":          job.ID,
			"ats_score":       report.ATSScore,
			"processing_time": utils.FormatDuration(time.Since(startedAt)),
		})

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:    true,
			AnalysisID: result.ID,
			Report:     report,
			RequestID:  requestID,
		})
	}
}

// resumeDataFor restores the structured resume data saved at upload time,
// re-parsing the raw text when the stored JSON is unreadable.
func resumeDataFor(resume *models.Resume, p *parser.Parser) *models.ResumeData {
	var data models.ResumeData
	if err := json.Unmarshal(resume.ExtractedData, &data); err != nil || data.RawText == "" {
		return p.Parse(resume.RawText)
	}
	return &data
}

// jobTextFor combines the description with any stored skill list so
// user-supplied skills participate in keyword and skill scoring.
func jobTextFor(job *models.JobDescription) string {
	text := job.Description

	var required []string
	if err := json.Unmarshal(job.RequiredSkills, &required); err == nil {
		for _, skill := range required {
			text += "\n" + skill
		}
	}

	return text
}

func persistResult(store *storage.Store, resume *models.Resume, job *models.JobDescription, report *models.AnalysisReport) (*models.AnalysisResult, error) {
	matchedJSON, err := json.Marshal(report.MatchedSkills)
	if err != nil {
		return nil, err
	}
	missingJSON, err := json.Marshal(report.MissingSkills)
	if err != nil {
		return nil, err
	}
	recsJSON, err := json.Marshal(report.Recommendations)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		ResumeID:          resume.ID,
		JobDescriptionID:  job.ID,
		ATSScore:          report.ATSScore,
		SkillMatchScore:   report.SkillMatchScore,
		KeywordMatchScore: report.KeywordScore,
		MatchedSkills:     matchedJSON,
		MissingSkills:     missingJSON,
		Recommendations:   recsJSON,
	}
	if err := store.SaveAnalysisResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// trackResumeSkills records every skill found on the resume in the user's
// skill tracking. Tracking failures are logged, never surfaced.
func trackResumeSkills(store *storage.Store, userID uint, resumeSkills []string, logger logging.Logger, requestID string) {
	for _, skill := range resumeSkills {
		tracking := &models.SkillTracking{
			UserID:           userID,
			SkillName:        skill,
			SkillCategory:    skills.CategoryOf(skill),
			ProficiencyLevel: 3,
		}
		if err := store.UpsertSkill(tracking); err != nil {
			logger.Warn("Failed to track skill", map[string]interface{}{
				"request_id": requestID,
				"skill":      skill,
				"error":      err.Error(),
			})
		}
	}
}

// AnalysisHistoryHandler lists a user's past analyses, newest first. The
// limit query parameter overrides the configured default.
func AnalysisHistoryHandler(cfg *config.Config, store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		limit := cfg.Analyzer.HistoryLimit
		if raw := c.QueryParam("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		history, err := store.GetAnalysisHistory(userID, limit)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load analysis history")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"analyses": history,
			"count":    len(history),
		})
	}
}

// AnalyticsHandler returns the dashboard aggregates for a user
func AnalyticsHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		analytics, err := store.GetAnalyticsData(userID)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load analytics")
		}

		return c.JSON(http.StatusOK, analytics)
	}
}
