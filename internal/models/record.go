package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisRecord is the optional history row. The resume text is never stored.
type AnalysisRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FileName     string         `gorm:"type:text" json:"file_name"`
	OverallScore string         `gorm:"type:text" json:"overall_score"`
	OverallBand  string         `gorm:"type:text" json:"overall_band"`
	KeywordCount int            `gorm:"not null;default:0" json:"keyword_count"`
	Result       datatypes.JSON `gorm:"type:jsonb" json:"result"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
