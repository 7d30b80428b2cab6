package models

// CreateUserRequest registers a user by name and email
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// CreateJobRequest stores a pasted job description. RequiredSkills may be
// omitted, in which case skills are extracted from the description text.
type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=200"`
	Company         string   `json:"company" validate:"max=200"`
	Description     string   `json:"description" validate:"required,min=20"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,oneof=entry junior mid senior lead"`
	Location        string   `json:"location" validate:"max=200"`
}

// AnalyzeRequest runs an analysis of a stored resume against a stored job
type AnalyzeRequest struct {
	ResumeID         uint `json:"resume_id" validate:"required"`
	JobDescriptionID uint `json:"job_description_id" validate:"required"`
}

// TrackSkillRequest upserts a manually tracked skill for a user
type TrackSkillRequest struct {
	SkillName        string `json:"skill_name" validate:"required,min=1,max=100"`
	SkillCategory    string `json:"skill_category" validate:"max=100"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"required,min=1,max=5"`
}

// LearningPathRequest asks for a learning path toward a target role
type LearningPathRequest struct {
	TargetRole    string   `json:"target_role" validate:"required,known_role"`
	CurrentSkills []string `json:"current_skills"`
}

// BackupRequest triggers a copy of the store file to the given path
type BackupRequest struct {
	Path string `json:"path" validate:"omitempty,max=500"`
}
