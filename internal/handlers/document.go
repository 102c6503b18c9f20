package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const resumeFormField = "resume"

// readDocument loads the uploaded resume and validates it before any processing.
func readDocument(c *fiber.Ctx, maxFileSize int64) (*models.Document, error) {
	fileHeader, err := c.FormFile(resumeFormField)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("multipart field %q is required", resumeFormField))
	}

	if maxFileSize > 0 && fileHeader.Size > maxFileSize {
		return nil, fmt.Errorf("%w: max size is %d bytes", services.ErrFileTooLarge, maxFileSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	doc := &models.Document{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        int64(len(data)),
		Data:        data,
	}

	if err := services.ValidateUpload(doc, maxFileSize); err != nil {
		return nil, err
	}
	return doc, nil
}
