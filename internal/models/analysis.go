package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisResult is the model's evaluation. Every field is optional.
type AnalysisResult struct {
	OverallScore       string             `json:"overallScore,omitempty"`
	Strengths          []string           `json:"strengths,omitempty"`
	Improvements       []string           `json:"improvements,omitempty"`
	Keywords           []string           `json:"keywords,omitempty"`
	ATSChecklist       []string           `json:"atsChecklist,omitempty"`
	Summary            string             `json:"summary,omitempty"`
	PerformanceMetrics map[string]float64 `json:"performanceMetrics,omitempty"`
	Error              string             `json:"error,omitempty"`
}

// SkillInsights partitions vocabulary terms found in the resume.
type SkillInsights struct {
	Highlighted []string `json:"highlighted"`
	Main        []string `json:"main"`
}

type ChecklistItem struct {
	Label   string `json:"label"`
	Present bool   `json:"present"`
}

type ScoreBand string

const (
	BandGood    ScoreBand = "good"
	BandFair    ScoreBand = "fair"
	BandPoor    ScoreBand = "poor"
	BandUnknown ScoreBand = "unknown"
)

type MetricScore struct {
	Key       string    `json:"key"`
	Value     float64   `json:"value"`
	Band      ScoreBand `json:"band"`
	Defaulted bool      `json:"defaulted,omitempty"`
}

// AnalysisReport is everything produced for one document.
type AnalysisReport struct {
	ID                uuid.UUID       `json:"id"`
	FileName          string          `json:"file_name"`
	PageCount         int             `json:"page_count"`
	TextLength        int             `json:"text_length"`
	Analysis          AnalysisResult  `json:"analysis"`
	Insights          SkillInsights   `json:"insights"`
	PresenceChecklist []ChecklistItem `json:"presence_checklist"`
	OverallBand       ScoreBand       `json:"overall_band"`
	Metrics           []MetricScore   `json:"metrics"`
	CreatedAt         time.Time       `json:"created_at"`
}
