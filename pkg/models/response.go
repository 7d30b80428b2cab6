package models

import "time"

// UploadResumeResponse is returned after a resume upload and extraction
type UploadResumeResponse struct {
	Success    bool        `json:"success"`
	ResumeID   uint        `json:"resume_id,omitempty"`
	Data       *ResumeData `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	RequestID  string      `json:"request_id"`
	UploadedAt time.Time   `json:"uploaded_at"`
}

// AnalyzeResponse is returned from a completed analysis run
type AnalyzeResponse struct {
	Success    bool            `json:"success"`
	AnalysisID uint            `json:"analysis_id,omitempty"`
	Report     *AnalysisReport `json:"report,omitempty"`
	Error      string          `json:"error,omitempty"`
	RequestID  string          `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
