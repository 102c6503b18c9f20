package services

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// ParseAnalysisResponse turns a free-text model reply into an AnalysisResult.
// A reply whose record carries an "error" field fails with a *ModelError.
func ParseAnalysisResponse(reply string) (*models.AnalysisResult, error) {
	payload, ok := extractPayload(reply)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found in reply", ErrResponseParse)
	}
	if !gjson.Valid(payload) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrResponseParse)
	}

	root := gjson.Parse(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: payload is not an object", ErrResponseParse)
	}

	if msg := errorMessage(root.Get("error")); msg != "" {
		return nil, &ModelError{Message: msg}
	}

	result := &models.AnalysisResult{
		OverallScore:       scalarString(root.Get("overallScore")),
		Strengths:          stringList(root.Get("strengths")),
		Improvements:       stringList(root.Get("improvements")),
		Keywords:           stringList(root.Get("keywords")),
		ATSChecklist:       stringList(root.Get("atsChecklist")),
		Summary:            scalarString(root.Get("summary")),
		PerformanceMetrics: metricMap(root.Get("performanceMetrics")),
	}

	if result.OverallScore == "" {
		return nil, fmt.Errorf("%w: invalid AI response, missing overallScore", ErrResponseParse)
	}

	return result, nil
}

// extractPayload prefers the tagged payload, then a ```json fence, then the
// first "{" to the last "}".
func extractPayload(reply string) (string, bool) {
	if start := strings.Index(reply, PayloadOpenTag); start != -1 {
		rest := reply[start+len(PayloadOpenTag):]
		if end := strings.Index(rest, PayloadCloseTag); end != -1 {
			return strings.TrimSpace(rest[:end]), true
		}
	}

	if start := strings.Index(reply, "```json"); start != -1 {
		rest := reply[start+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			if body := strings.TrimSpace(rest[:end]); strings.HasPrefix(body, "{") {
				return body, true
			}
		}
	}

	startObj := strings.Index(reply, "{")
	endObj := strings.LastIndex(reply, "}")
	if startObj == -1 || endObj < startObj {
		return "", false
	}
	return reply[startObj : endObj+1], true
}

// scalarString reads strings and numbers; anything else reads as empty.
func scalarString(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

// errorMessage treats any truthy "error" value as a model-reported failure.
func errorMessage(r gjson.Result) string {
	switch r.Type {
	case gjson.True:
		return "true"
	case gjson.JSON:
		if r.Raw == "{}" || r.Raw == "[]" {
			return ""
		}
		return r.Raw
	default:
		return scalarString(r)
	}
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	for _, item := range r.Array() {
		if s := scalarString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func metricMap(r gjson.Result) map[string]float64 {
	if !r.IsObject() {
		return nil
	}
	metrics := make(map[string]float64)
	r.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Number:
			metrics[key.String()] = value.Float()
		case gjson.String:
			if score, ok := ParseScore(value.Str); ok {
				metrics[key.String()] = score
			}
		}
		return true
	})
	if len(metrics) == 0 {
		return nil
	}
	return metrics
}
