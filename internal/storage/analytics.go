package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
)

// GetAnalyticsData assembles the dashboard aggregates for a user: the score
// trend across all analyses, tracked skills grouped by category and the five
// most recent analyses.
func (s *Store) GetAnalyticsData(userID uint) (*models.AnalyticsData, error) {
	var trends []models.ScoreTrendPoint
	err := s.db.Table("analysis_results").
		Select("analysis_results.analyzed_at, analysis_results.ats_score, analysis_results.skill_match_score, analysis_results.keyword_match_score").
		Joins("JOIN resumes ON resumes.id = analysis_results.resume_id").
		Where("resumes.user_id = ?", userID).
		Order("analysis_results.analyzed_at ASC").
		Scan(&trends).Error
	if err != nil {
		return nil, err
	}

	var skillStats []models.SkillCategoryStat
	err = s.db.Table("skill_trackings").
		Select("skill_category, COUNT(*) AS count, AVG(proficiency_level) AS avg_proficiency").
		Where("user_id = ?", userID).
		Group("skill_category").
		Order("skill_category").
		Scan(&skillStats).Error
	if err != nil {
		return nil, err
	}

	recent, err := s.GetAnalysisHistory(userID, 5)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsData{
		Trends: trends,
		Skills: skillStats,
		Recent: recent,
	}, nil
}

// Backup copies the store file into dir, named with a timestamp, and returns
// the path of the copy.
func (s *Store) Backup(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("backup_%s.db", time.Now().Format("20060102_150405"))
	dst := filepath.Join(dir, name)

	src, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to copy database file: %w", err)
	}

	return dst, nil
}
