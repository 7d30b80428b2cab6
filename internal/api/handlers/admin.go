package handlers

import (
	"net/http"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/internal/config"
	"github.com/ysaikumar21/ResumeIntelligence/internal/logging"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/utils"

	"github.com/labstack/echo/v4"
)

// BackupHandler copies the store file into the backup directory. An explicit
// path in the request overrides the configured directory.
func BackupHandler(cfg *config.Config, store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := getRequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.BackupRequest
		if err := c.Bind(&req); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid_request", "Invalid request format")
		}

		dir := utils.GetStringOrDefault(req.Path, cfg.Database.BackupDir)

		backupPath, err := store.Backup(dir)
		if err != nil {
			logger.Error("Backup failed", map[string]interface{}{
				"request_id": requestID,
				"dir":        dir,
				"error":      err.Error(),
			})
			return jsonError(c, http.StatusInternalServerError, "backup_failed", "Failed to back up database")
		}

		logger.Info("Database backed up", map[string]interface{}{
			"request_id":  requestID,
			"backup_path": backupPath,
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":     true,
			"backup_path": backupPath,
			"created_at":  time.Now(),
		})
	}
}
