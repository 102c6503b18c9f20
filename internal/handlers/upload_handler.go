package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type UploadHandler struct {
	jobRepo     repositories.JobRepository
	worker      services.Worker
	maxFileSize int64
}

func NewUploadHandler(
	jobRepo repositories.JobRepository,
	worker services.Worker,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		jobRepo:     jobRepo,
		worker:      worker,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /upload: validates the resume and queues an analysis job.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	doc, err := readDocument(c, h.maxFileSize)
	if err != nil {
		return err
	}

	job := &models.AnalysisJob{
		ID:        uuid.New(),
		FileName:  doc.FileName,
		Status:    models.StatusQueued,
		CreatedAt: time.Now(),
	}

	if err := h.jobRepo.Create(c.UserContext(), job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	if err := h.worker.EnqueueJob(services.AnalysisTask{JobID: job.ID, Document: doc}); err != nil {
		_ = h.jobRepo.UpdateError(c.UserContext(), job.ID, err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Analysis queue is not accepting jobs",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(models.UploadResponse{
		ID:       job.ID.String(),
		FileName: job.FileName,
		Status:   string(models.StatusQueued),
	})
}
