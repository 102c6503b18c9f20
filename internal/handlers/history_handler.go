package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/repositories"
)

const maxHistoryLimit = 100

type HistoryHandler struct {
	records repositories.AnalysisRecordRepository
}

// NewHistoryHandler accepts a nil repository when history is disabled.
func NewHistoryHandler(records repositories.AnalysisRecordRepository) *HistoryHandler {
	return &HistoryHandler{records: records}
}

func (h *HistoryHandler) HandleList(c *fiber.Ctx) error {
	if h.records == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis history is disabled",
		})
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.records.FindRecent(c.UserContext(), limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"records": records,
	})
}
