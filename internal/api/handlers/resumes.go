package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/internal/config"
	"github.com/ysaikumar21/ResumeIntelligence/internal/logging"
	"github.com/ysaikumar21/ResumeIntelligence/internal/parser"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UploadResumeHandler accepts a multipart resume upload, extracts its text,
// parses the structured fields and persists everything. A document the
// extractor cannot read yields an empty result with a message instead of a
// server error.
func UploadResumeHandler(cfg *config.Config, store *storage.Store) echo.HandlerFunc {
	resumeParser := parser.New()

	return func(c echo.Context) error {
		requestID := getRequestID(c)
		logger := logging.GetGlobalLogger()

		userID, err := strconv.ParseUint(c.FormValue("user_id"), 10, 32)
		if err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Missing or invalid user_id form field")
		}

		if _, err := store.GetUser(uint(userID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, http.StatusNotFound, "user_not_found", "No user with that ID")
			}
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load user")
		}

		fileHeader, err := c.FormFile("resume")
		if err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Missing resume file")
		}

		if fileHeader.Size > cfg.Analyzer.MaxUploadSize {
			return jsonError(c, http.StatusRequestEntityTooLarge, "file_too_large", "Resume file exceeds the upload size limit")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "upload_failed", "Failed to read uploaded file")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "upload_failed", "Failed to read uploaded file")
		}

		text, fileType, err := parser.ExtractText(fileHeader.Filename, data)
		if err != nil {
			logger.Warn("Resume extraction failed", map[string]interface{}{
				"request_id": requestID,
				"filename":   fileHeader.Filename,
				"error":      err.Error(),
			})
			status := http.StatusUnprocessableEntity
			var ce *utils.CustomError
			if errors.As(err, &ce) {
				status = ce.Code
			}
			return c.JSON(status, models.UploadResumeResponse{
				Success:    false,
				Error:      "Could not extract text from the uploaded file: " + err.Error(),
				RequestID:  requestID,
				UploadedAt: time.Now(),
			})
		}

		parsed := resumeParser.Parse(text)
		extractedJSON, err := json.Marshal(parsed)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "internal_error", "Failed to serialize extracted data")
		}

		resume := &models.Resume{
			UserID:        uint(userID),
			Filename:      fileHeader.Filename,
			FileType:      fileType,
			RawText:       text,
			ExtractedData: extractedJSON,
		}
		if err := store.SaveResume(resume); err != nil {
			logger.Error("Failed to save resume", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to save resume")
		}

		logger.Info("Resume uploaded", map[string]interface{}{
			"request_id": requestID,
			"resume_id":  resume.ID,
			"user_id":    userID,
			"file_type":  fileType,
			"skills":     len(parsed.Skills),
		})

		return c.JSON(http.StatusCreated, models.UploadResumeResponse{
			Success:    true,
			ResumeID:   resume.ID,
			Data:       parsed,
			RequestID:  requestID,
			UploadedAt: resume.UploadedAt,
		})
	}
}

// GetResumeHandler fetches a stored resume by ID
func GetResumeHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		resume, err := store.GetResume(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, http.StatusNotFound, "resume_not_found", "No resume with that ID")
			}
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load resume")
		}

		return c.JSON(http.StatusOK, resume)
	}
}

// ListUserResumesHandler lists a user's uploaded resumes, newest first
func ListUserResumesHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseIDParam(c, "id")
		if err != nil {
			return invalidIDResponse(c, "id")
		}

		resumes, err := store.GetUserResumes(userID)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, "storage_error", "Failed to load resumes")
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"resumes": resumes,
			"count":   len(resumes),
		})
	}
}
