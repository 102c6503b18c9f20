package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type redisJobRepository struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// NewRedisJobRepository stores each job as a JSON string that Redis expires after ttl.
func NewRedisJobRepository(client redis.UniversalClient, keyPrefix string, ttl time.Duration) JobRepository {
	return &redisJobRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *redisJobRepository) key(id uuid.UUID) string {
	return r.keyPrefix + id.String()
}

func (r *redisJobRepository) Create(ctx context.Context, job *models.AnalysisJob) error {
	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	job.ExpiresAt = now.Add(r.ttl)
	return r.save(ctx, job)
}

func (r *redisJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.AnalysisJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	return &job, nil
}

func (r *redisJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	return r.update(ctx, id, func(job *models.AnalysisJob) {
		job.Status = status
	})
}

func (r *redisJobRepository) UpdateResult(ctx context.Context, id uuid.UUID, report *models.AnalysisReport) error {
	return r.update(ctx, id, func(job *models.AnalysisJob) {
		job.Status = models.StatusCompleted
		job.Report = report
		job.ErrorMessage = ""
	})
}

func (r *redisJobRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	return r.update(ctx, id, func(job *models.AnalysisJob) {
		job.Status = models.StatusFailed
		job.Report = nil
		job.ErrorMessage = errorMsg
	})
}

// DeleteExpired is a no-op: Redis expires keys itself.
func (r *redisJobRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func (r *redisJobRepository) update(ctx context.Context, id uuid.UUID, fn func(job *models.AnalysisJob)) error {
	job, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	fn(job)
	job.UpdatedAt = time.Now()
	job.ExpiresAt = job.UpdatedAt.Add(r.ttl)
	return r.save(ctx, job)
}

func (r *redisJobRepository) save(ctx context.Context, job *models.AnalysisJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := r.client.Set(ctx, r.key(job.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}
