package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var ErrJobNotFound = errors.New("analysis job not found")

// JobRepository keeps transient async job state.
type JobRepository interface {
	Create(ctx context.Context, job *models.AnalysisJob) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error
	UpdateResult(ctx context.Context, id uuid.UUID, report *models.AnalysisReport) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
