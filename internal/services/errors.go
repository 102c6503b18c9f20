package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFileType = errors.New("please upload a PDF file only")
	ErrFileTooLarge    = errors.New("file too large")
	ErrExtraction      = errors.New("failed to extract text from PDF")
	ErrClientNotReady  = errors.New("AI client not ready yet, please wait a moment")
	ErrResponseParse   = errors.New("failed to parse AI response")
	ErrAIRequest       = errors.New("AI request failed")
)

// ModelError is a failure reported by the model inside its own reply.
type ModelError struct {
	Message string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("AI reported an error: %s", e.Message)
}
