package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var minimalPDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		doc     *models.Document
		maxSize int64
		wantErr error
	}{
		{
			name:    "pdf accepted",
			doc:     &models.Document{FileName: "cv.pdf", ContentType: "application/pdf", Data: minimalPDF},
			maxSize: 1024,
		},
		{
			name:    "content type with parameters",
			doc:     &models.Document{ContentType: "application/pdf; name=cv.pdf", Data: minimalPDF},
			maxSize: 1024,
		},
		{
			name:    "word document declared",
			doc:     &models.Document{ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Data: minimalPDF},
			wantErr: ErrInvalidFileType,
		},
		{
			name:    "declared pdf but plain text",
			doc:     &models.Document{ContentType: "application/pdf", Data: []byte("just some text")},
			wantErr: ErrInvalidFileType,
		},
		{
			name:    "empty",
			doc:     &models.Document{ContentType: "application/pdf"},
			wantErr: ErrInvalidFileType,
		},
		{
			name:    "too large",
			doc:     &models.Document{ContentType: "application/pdf", Data: minimalPDF},
			maxSize: 10,
			wantErr: ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.doc, tt.maxSize)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
