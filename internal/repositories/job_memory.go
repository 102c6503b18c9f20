package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type memoryJobRepository struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]models.AnalysisJob
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryJobRepository keeps jobs in process memory for ttl after their last update.
func NewMemoryJobRepository(ttl time.Duration) JobRepository {
	return newMemoryJobRepository(ttl, time.Now)
}

func newMemoryJobRepository(ttl time.Duration, now func() time.Time) *memoryJobRepository {
	return &memoryJobRepository{
		jobs: make(map[uuid.UUID]models.AnalysisJob),
		ttl:  ttl,
		now:  now,
	}
}

func (r *memoryJobRepository) Create(ctx context.Context, job *models.AnalysisJob) error {
	now := r.now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	job.ExpiresAt = now.Add(r.ttl)

	r.mu.Lock()
	r.jobs[job.ID] = *job
	r.mu.Unlock()
	return nil
}

func (r *memoryJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	r.mu.RLock()
	job, ok := r.jobs[id]
	r.mu.RUnlock()

	if !ok || !r.now().Before(job.ExpiresAt) {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

func (r *memoryJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	return r.update(id, func(job *models.AnalysisJob) {
		job.Status = status
	})
}

func (r *memoryJobRepository) UpdateResult(ctx context.Context, id uuid.UUID, report *models.AnalysisReport) error {
	return r.update(id, func(job *models.AnalysisJob) {
		job.Status = models.StatusCompleted
		job.Report = report
		job.ErrorMessage = ""
	})
}

func (r *memoryJobRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	return r.update(id, func(job *models.AnalysisJob) {
		job.Status = models.StatusFailed
		job.Report = nil
		job.ErrorMessage = errorMsg
	})
}

func (r *memoryJobRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, job := range r.jobs {
		if !now.Before(job.ExpiresAt) {
			delete(r.jobs, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memoryJobRepository) update(id uuid.UUID, fn func(job *models.AnalysisJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	now := r.now()
	if !ok || !now.Before(job.ExpiresAt) {
		return ErrJobNotFound
	}

	fn(&job)
	job.UpdatedAt = now
	job.ExpiresAt = now.Add(r.ttl)
	r.jobs[id] = job
	return nil
}
