package routes

import (
	"net/http"

	"github.com/ysaikumar21/ResumeIntelligence/internal/api/handlers"
	"github.com/ysaikumar21/ResumeIntelligence/internal/api/middleware"
	"github.com/ysaikumar21/ResumeIntelligence/internal/config"
	"github.com/ysaikumar21/ResumeIntelligence/internal/storage"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, store *storage.Store) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Analyzer.MaxUploadSize))
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(store))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(store))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// User routes
		users := v1.Group("/users")
		{
			users.POST("", handlers.CreateUserHandler(store))
			users.GET("/:email", handlers.GetUserHandler(store))
			users.GET("/:id/resumes", handlers.ListUserResumesHandler(store))
			users.GET("/:id/analyses", handlers.AnalysisHistoryHandler(cfg, store))
			users.GET("/:id/analytics", handlers.AnalyticsHandler(store))
			users.GET("/:id/skills", handlers.ListUserSkillsHandler(store))
			users.POST("/:id/skills", handlers.TrackSkillHandler(store))
		}

		// Resume routes
		resumes := v1.Group("/resumes")
		{
			resumes.POST("", handlers.UploadResumeHandler(cfg, store))
			resumes.GET("/:id", handlers.GetResumeHandler(store))
		}

		// Job description routes
		jobs := v1.Group("/jobs")
		{
			jobs.POST("", handlers.CreateJobHandler(store))
			jobs.GET("/:id", handlers.GetJobHandler(store))
		}

		// Analysis routes, rate limited since scoring is CPU-bound
		analyses := v1.Group("/analyses")
		{
			analyses.POST("", handlers.AnalyzeHandler(cfg, store), middleware.AnalysisRateLimit(cfg.Analyzer.RateLimit))
		}

		// Skill routes
		skills := v1.Group("/skills")
		{
			skills.POST("/learning-path", handlers.LearningPathHandler())
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.POST("/backup", handlers.BackupHandler(cfg, store))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resume Intelligence",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
