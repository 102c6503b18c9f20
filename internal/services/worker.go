package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

var ErrWorkerStopped = errors.New("worker stopped")

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(task AnalysisTask) error
}

// AnalysisTask carries the uploaded bytes to a worker; they are never stored.
type AnalysisTask struct {
	JobID    uuid.UUID
	Document *models.Document
}

type worker struct {
	jobRepo     repositories.JobRepository
	analyzer    AnalyzerService
	jobQueue    chan AnalysisTask
	concurrency int
	sweepEvery  time.Duration
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewWorker(
	jobRepo repositories.JobRepository,
	analyzer AnalyzerService,
	concurrency int,
	queueSize int,
	sweepEvery time.Duration,
) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	if sweepEvery <= 0 {
		sweepEvery = time.Minute
	}
	return &worker{
		jobRepo:     jobRepo,
		analyzer:    analyzer,
		jobQueue:    make(chan AnalysisTask, queueSize),
		concurrency: concurrency,
		sweepEvery:  sweepEvery,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	logger.Info().Int("concurrency", w.concurrency).Msg("🚀 Starting worker")

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.sweepExpiredJobs(ctx)
}

// Stop implements Worker. Jobs already being analyzed run to completion.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		logger.Info().Msg("🛑 Stopping worker...")
		close(w.stopChan)
		w.wg.Wait()
		logger.Info().Msg("✅ Worker stopped")
	})
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(task AnalysisTask) error {
	select {
	case <-w.stopChan:
		return ErrWorkerStopped
	default:
	}

	select {
	case w.jobQueue <- task:
		logger.Debug().Str("job_id", task.JobID.String()).Msg("📥 Job enqueued")
		return nil
	case <-w.stopChan:
		return ErrWorkerStopped
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			logger.Debug().Int("worker", workerID).Msg("👷 Worker stopped")
			return
		case task := <-w.jobQueue:
			w.runTask(ctx, workerID, task)
		}
	}
}

func (w *worker) runTask(ctx context.Context, workerID int, task AnalysisTask) {
	if err := w.jobRepo.UpdateStatus(ctx, task.JobID, models.StatusProcessing); err != nil {
		logger.Warn().Err(err).Str("job_id", task.JobID.String()).Msg("⚠️ Failed to mark job processing")
		return
	}

	report, err := w.analyzer.Analyze(ctx, task.Document)
	if err != nil {
		if uerr := w.jobRepo.UpdateError(ctx, task.JobID, err.Error()); uerr != nil {
			logger.Warn().Err(uerr).Str("job_id", task.JobID.String()).Msg("⚠️ Failed to record job error")
		}
		logger.Warn().Err(err).Int("worker", workerID).Str("job_id", task.JobID.String()).Msg("❌ Job failed")
		return
	}

	if err := w.jobRepo.UpdateResult(ctx, task.JobID, report); err != nil {
		logger.Warn().Err(err).Str("job_id", task.JobID.String()).Msg("⚠️ Failed to save job result")
		return
	}
	logger.Info().Int("worker", workerID).Str("job_id", task.JobID.String()).Msg("✅ Job completed")
}

func (w *worker) sweepExpiredJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case now := <-ticker.C:
			deleted, err := w.jobRepo.DeleteExpired(ctx, now)
			if err != nil {
				logger.Warn().Err(err).Msg("⚠️ Failed to delete expired jobs")
				continue
			}
			if deleted > 0 {
				logger.Debug().Int("deleted", deleted).Msg("🧹 Expired jobs removed")
			}
		}
	}
}
