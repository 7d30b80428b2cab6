package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a registered user of the analyzer
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Resume represents an uploaded resume document and its extracted content
type Resume struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"index;not null" json:"user_id"`
	Filename      string         `gorm:"not null" json:"filename"`
	FileType      string         `gorm:"not null" json:"file_type"`
	RawText       string         `json:"raw_text"`
	ExtractedData datatypes.JSON `json:"extracted_data"`
	UploadedAt    time.Time      `gorm:"autoCreateTime" json:"uploaded_at"`
}

// JobDescription represents a job posting pasted by the user
type JobDescription struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Company         string         `json:"company"`
	Description     string         `gorm:"not null" json:"description"`
	RequiredSkills  datatypes.JSON `json:"required_skills"`
	ExperienceLevel string         `json:"experience_level"`
	Location        string         `json:"location"`
	CreatedAt       time.Time      `json:"created_at"`
}

// AnalysisResult links a resume to a job description and records the scores
type AnalysisResult struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	ResumeID          uint           `gorm:"index;not null" json:"resume_id"`
	JobDescriptionID  uint           `gorm:"index;not null" json:"job_description_id"`
	ATSScore          int            `json:"ats_score"`
	SkillMatchScore   float64        `json:"skill_match_score"`
	KeywordMatchScore float64        `json:"keyword_match_score"`
	MatchedSkills     datatypes.JSON `json:"matched_skills"`
	MissingSkills     datatypes.JSON `json:"missing_skills"`
	Recommendations   datatypes.JSON `json:"recommendations"`
	AnalyzedAt        time.Time      `gorm:"autoCreateTime" json:"analyzed_at"`
}

// SkillTracking tracks a single skill for a user. A user has at most one row
// per skill name; repeated saves update the existing row.
type SkillTracking struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"uniqueIndex:idx_user_skill;not null" json:"user_id"`
	SkillName        string    `gorm:"uniqueIndex:idx_user_skill;not null" json:"skill_name"`
	SkillCategory    string    `json:"skill_category"`
	ProficiencyLevel int       `json:"proficiency_level"`
	LastUpdated      time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// ResumeData holds the structured fields extracted from a resume document
type ResumeData struct {
	RawText        string   `json:"raw_text"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	Education      []string `json:"education"`
	Experience     []string `json:"experience"`
	Certifications []string `json:"certifications"`
	Projects       []string `json:"projects"`
}

// AnalysisReport is the full output of an analysis run before persistence
type AnalysisReport struct {
	ATSScore          int                     `json:"ats_score"`
	KeywordScore      float64                 `json:"keyword_score"`
	SkillMatchScore   float64                 `json:"skill_match_score"`
	FormatScore       float64                 `json:"format_score"`
	StructureScore    float64                 `json:"structure_score"`
	DomainScore       float64                 `json:"domain_score"`
	MatchedSkills     []string                `json:"matched_skills"`
	MissingSkills     []string                `json:"missing_skills"`
	MatchPercentage   float64                 `json:"match_percentage"`
	SkillLevels       map[string][]string     `json:"skill_levels,omitempty"`
	Recommendations   []string                `json:"recommendations"`
	KeywordDensity    map[string]KeywordStats `json:"keyword_density,omitempty"`
	AnalyzedAt        time.Time               `json:"analyzed_at"`
}

// KeywordStats describes how often a job description keyword appears in the resume
type KeywordStats struct {
	JobFrequency    int     `json:"job_frequency"`
	ResumeFrequency int     `json:"resume_frequency"`
	DensityScore    float64 `json:"density_score"`
}

// AnalysisHistoryEntry is a row of the user's analysis history listing
type AnalysisHistoryEntry struct {
	AnalysisID        uint      `json:"analysis_id"`
	ATSScore          int       `json:"ats_score"`
	SkillMatchScore   float64   `json:"skill_match_score"`
	KeywordMatchScore float64   `json:"keyword_match_score"`
	AnalyzedAt        time.Time `json:"analyzed_at"`
	ResumeFilename    string    `json:"resume_filename"`
	JobTitle          string    `json:"job_title"`
	Company           string    `json:"company"`
}

// ScoreTrendPoint is one point of the score-over-time analytics series
type ScoreTrendPoint struct {
	AnalyzedAt        time.Time `json:"analyzed_at"`
	ATSScore          int       `json:"ats_score"`
	SkillMatchScore   float64   `json:"skill_match_score"`
	KeywordMatchScore float64   `json:"keyword_match_score"`
}

// SkillCategoryStat aggregates tracked skills per category
type SkillCategoryStat struct {
	SkillCategory  string  `json:"skill_category"`
	Count          int     `json:"count"`
	AvgProficiency float64 `json:"avg_proficiency"`
}

// AnalyticsData bundles the dashboard aggregates for a user
type AnalyticsData struct {
	Trends []ScoreTrendPoint      `json:"trends"`
	Skills []SkillCategoryStat    `json:"skills"`
	Recent []AnalysisHistoryEntry `json:"recent"`
}
