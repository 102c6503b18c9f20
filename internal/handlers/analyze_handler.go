package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze and answers with the full report.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	doc, err := readDocument(c, h.maxFileSize)
	if err != nil {
		return err
	}

	report, err := h.analyzer.Analyze(c.UserContext(), doc)
	if err != nil {
		return err
	}

	return c.JSON(report)
}
