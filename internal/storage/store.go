package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
)

// Store wraps the embedded sqlite database behind the analyzer
type Store struct {
	db   *gorm.DB
	path string
}

// Open connects to the sqlite store at path and migrates the schema
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Resume{},
		&models.JobDescription{},
		&models.AnalysisResult{},
		&models.SkillTracking{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Path returns the location of the store file
func (s *Store) Path() string {
	return s.path
}

// Ping verifies the database connection is usable
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateUser inserts a user. If the email is already registered the existing
// user is loaded into the argument instead.
func (s *Store) CreateUser(user *models.User) error {
	err := s.db.Create(user).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, lookupErr := s.GetUserByEmail(user.Email)
		if lookupErr != nil {
			return lookupErr
		}
		*user = *existing
		return nil
	}

	return err
}

// GetUserByEmail fetches a user by their unique email
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a user by ID
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveResume persists an uploaded resume with its extracted data
func (s *Store) SaveResume(resume *models.Resume) error {
	return s.db.Create(resume).Error
}

// GetResume fetches a resume by ID
func (s *Store) GetResume(id uint) (*models.Resume, error) {
	var resume models.Resume
	if err := s.db.First(&resume, id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// GetUserResumes lists a user's resumes, most recent upload first
func (s *Store) GetUserResumes(userID uint) ([]models.Resume, error) {
	var resumes []models.Resume
	err := s.db.Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&resumes).Error
	return resumes, err
}

// SaveJobDescription persists a pasted job description
func (s *Store) SaveJobDescription(job *models.JobDescription) error {
	return s.db.Create(job).Error
}

// GetJobDescription fetches a job description by ID
func (s *Store) GetJobDescription(id uint) (*models.JobDescription, error) {
	var job models.JobDescription
	if err := s.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// SaveAnalysisResult persists the outcome of an analysis run
func (s *Store) SaveAnalysisResult(result *models.AnalysisResult) error {
	return s.db.Create(result).Error
}

// GetAnalysisResult fetches a stored analysis by ID
func (s *Store) GetAnalysisResult(id uint) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := s.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAnalysisHistory lists a user's analyses joined with the resume filename
// and job title, most recent first.
func (s *Store) GetAnalysisHistory(userID uint, limit int) ([]models.AnalysisHistoryEntry, error) {
	var entries []models.AnalysisHistoryEntry
	err := s.db.Table("analysis_results").
		Select(`analysis_results.id AS analysis_id,
			analysis_results.ats_score,
			analysis_results.skill_match_score,
			analysis_results.keyword_match_score,
			analysis_results.analyzed_at,
			resumes.filename AS resume_filename,
			job_descriptions.title AS job_title,
			job_descriptions.company AS company`).
		Joins("JOIN resumes ON resumes.id = analysis_results.resume_id").
		Joins("JOIN job_descriptions ON job_descriptions.id = analysis_results.job_description_id").
		Where("resumes.user_id = ?", userID).
		Order("analysis_results.analyzed_at DESC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// UpsertSkill inserts a tracked skill or, when the user already tracks that
// skill, updates its category, proficiency and timestamp in place.
func (s *Store) UpsertSkill(tracking *models.SkillTracking) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "skill_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"skill_category":    tracking.SkillCategory,
			"proficiency_level": tracking.ProficiencyLevel,
			"last_updated":      time.Now(),
		}),
	}).Create(tracking).Error
}

// GetUserSkills lists a user's tracked skills ordered by category and name
func (s *Store) GetUserSkills(userID uint) ([]models.SkillTracking, error) {
	var tracked []models.SkillTracking
	err := s.db.Where("user_id = ?", userID).
		Order("skill_category, skill_name").
		Find(&tracked).Error
	return tracked, err
}
