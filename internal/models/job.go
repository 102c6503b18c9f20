package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// AnalysisJob tracks an asynchronous analysis. It is transient and expires.
type AnalysisJob struct {
	ID           uuid.UUID       `json:"id"`
	FileName     string          `json:"file_name"`
	Status       JobStatus       `json:"status"`
	Report       *AnalysisReport `json:"report,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
}
