package models

type UploadResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       *AnalysisReport `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	AIReady bool   `json:"ai_ready"`
	AIError string `json:"ai_error,omitempty"`
}
