package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/services"
)

// StatusForError maps the pipeline error taxonomy to HTTP status codes.
func StatusForError(err error) int {
	var modelErr *services.ModelError
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, services.ErrInvalidFileType):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrExtraction):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrClientNotReady):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrResponseParse), errors.Is(err, services.ErrAIRequest), errors.As(err, &modelErr):
		return fiber.StatusBadGateway
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders every error as a single JSON notification.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusForError(err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
