package services

import (
	"sort"
	"strconv"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// MetricDefault is a performance metric shown even when the model omits it.
type MetricDefault struct {
	Key   string
	Value float64
}

var DefaultMetrics = []MetricDefault{
	{Key: "formatting", Value: 7},
	{Key: "contentQuality", Value: 7},
	{Key: "atsCompatibility", Value: 7},
	{Key: "keywordUsage", Value: 6},
	{Key: "quantifiableResults", Value: 6},
}

type ScorePolicy struct {
	GoodThreshold float64
	FairThreshold float64
	Metrics       []MetricDefault
}

func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{
		GoodThreshold: 7,
		FairThreshold: 5,
		Metrics:       DefaultMetrics,
	}
}

// ParseScore reads "8/10", "8.5 / 10" or "8".
func ParseScore(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "/"); i != -1 {
		s = strings.TrimSpace(s[:i])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p ScorePolicy) Band(score float64) models.ScoreBand {
	switch {
	case score >= p.GoodThreshold:
		return models.BandGood
	case score >= p.FairThreshold:
		return models.BandFair
	default:
		return models.BandPoor
	}
}

func (p ScorePolicy) OverallBand(overallScore string) models.ScoreBand {
	score, ok := ParseScore(overallScore)
	if !ok {
		return models.BandUnknown
	}
	return p.Band(score)
}

// MetricScores lists the configured metrics first, then any extra metric the
// model returned, sorted by key.
func (p ScorePolicy) MetricScores(metrics map[string]float64) []models.MetricScore {
	out := make([]models.MetricScore, 0, len(p.Metrics)+len(metrics))
	known := make(map[string]bool, len(p.Metrics))

	for _, m := range p.Metrics {
		known[m.Key] = true
		value, ok := metrics[m.Key]
		if !ok || value == 0 {
			out = append(out, models.MetricScore{Key: m.Key, Value: m.Value, Band: p.Band(m.Value), Defaulted: true})
			continue
		}
		out = append(out, models.MetricScore{Key: m.Key, Value: value, Band: p.Band(value)})
	}

	var extra []string
	for key := range metrics {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		out = append(out, models.MetricScore{Key: key, Value: metrics[key], Band: p.Band(metrics[key])})
	}

	return out
}
