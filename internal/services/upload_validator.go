package services

import (
	"fmt"
	"mime"

	"github.com/gabriel-vasile/mimetype"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const pdfMediaType = "application/pdf"

// ValidateUpload accepts the document only if both its declared media type
// and its content are PDF.
func ValidateUpload(doc *models.Document, maxFileSize int64) error {
	if doc == nil || len(doc.Data) == 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidFileType)
	}
	if maxFileSize > 0 && int64(len(doc.Data)) > maxFileSize {
		return fmt.Errorf("%w: max size is %d bytes", ErrFileTooLarge, maxFileSize)
	}

	declared, _, err := mime.ParseMediaType(doc.ContentType)
	if err != nil || declared != pdfMediaType {
		return fmt.Errorf("%w: declared type %q", ErrInvalidFileType, doc.ContentType)
	}

	if detected := mimetype.Detect(doc.Data); !detected.Is(pdfMediaType) {
		return fmt.Errorf("%w: content is %s", ErrInvalidFileType, detected.String())
	}

	return nil
}
