package models

// Document is an uploaded resume. It lives only for the duration of one analysis.
type Document struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`

	// Filled by the extractor.
	Text      string `json:"-"`
	PageCount int    `json:"page_count"`
}
