package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type ResultHandler struct {
	jobRepo repositories.JobRepository
}

func NewResultHandler(jobRepo repositories.JobRepository) *ResultHandler {
	return &ResultHandler{
		jobRepo: jobRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	job, err := h.jobRepo.FindByID(c.UserContext(), jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.ResultResponse{
		ID:     job.ID.String(),
		Status: string(job.Status),
	}

	if job.Status == models.StatusCompleted {
		response.Result = job.Report
	}

	if job.Status == models.StatusFailed && job.ErrorMessage != "" {
		response.ErrorMessage = &job.ErrorMessage
	}

	return c.JSON(response)
}
