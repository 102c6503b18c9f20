package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type HealthHandler struct {
	readiness *services.Readiness
}

func NewHealthHandler(readiness *services.Readiness) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	resp := models.HealthResponse{
		Status:  "healthy",
		AIReady: h.readiness.Ready(),
	}
	if err := h.readiness.Err(); err != nil {
		resp.Status = "degraded"
		resp.AIError = err.Error()
	}
	return c.JSON(resp)
}
