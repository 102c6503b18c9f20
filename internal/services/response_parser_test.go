package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisResponse_ProseAroundObject(t *testing.T) {
	reply := `Here is the result: {"overallScore":"8/10","strengths":["Clear layout"],"keywords":["Go"]} Hope it helps.`

	result, err := ParseAnalysisResponse(reply)

	require.NoError(t, err)
	assert.Equal(t, "8/10", result.OverallScore)
	assert.Equal(t, []string{"Clear layout"}, result.Strengths)
	assert.Equal(t, []string{"Go"}, result.Keywords)
}

func TestParseAnalysisResponse_PrefersTaggedPayload(t *testing.T) {
	reply := "Example: {\"overallScore\":\"1/10\"}\n" +
		PayloadOpenTag + `{"overallScore":"9/10","summary":"Strong backend profile"}` + PayloadCloseTag +
		"\nNote {braces} everywhere"

	result, err := ParseAnalysisResponse(reply)

	require.NoError(t, err)
	assert.Equal(t, "9/10", result.OverallScore)
	assert.Equal(t, "Strong backend profile", result.Summary)
}

func TestParseAnalysisResponse_JSONFence(t *testing.T) {
	reply := "Sure.\n```json\n{\"overallScore\": 7, \"performanceMetrics\": {\"formatting\": 8, \"keywordUsage\": \"6/10\"}}\n```\n"

	result, err := ParseAnalysisResponse(reply)

	require.NoError(t, err)
	assert.Equal(t, "7", result.OverallScore)
	assert.Equal(t, map[string]float64{"formatting": 8, "keywordUsage": 6}, result.PerformanceMetrics)
}

func TestParseAnalysisResponse_NoObject(t *testing.T) {
	_, err := ParseAnalysisResponse("I cannot help with that.")
	assert.ErrorIs(t, err, ErrResponseParse)
}

func TestParseAnalysisResponse_Malformed(t *testing.T) {
	_, err := ParseAnalysisResponse(`{"overallScore": "8/10",}`)
	assert.ErrorIs(t, err, ErrResponseParse)
}

func TestParseAnalysisResponse_ErrorFieldWins(t *testing.T) {
	_, err := ParseAnalysisResponse(`{"error":"document is not a resume","overallScore":"5/10"}`)

	var modelErr *ModelError
	require.True(t, errors.As(err, &modelErr))
	assert.Equal(t, "document is not a resume", modelErr.Message)
	assert.NotErrorIs(t, err, ErrResponseParse)
}

func TestParseAnalysisResponse_TruthyErrorValues(t *testing.T) {
	for _, reply := range []string{
		`{"error": true}`,
		`{"error": 42}`,
		`{"error": {"code": "bad_input"}}`,
	} {
		_, err := ParseAnalysisResponse(reply)
		var modelErr *ModelError
		assert.True(t, errors.As(err, &modelErr), reply)
	}
}

func TestParseAnalysisResponse_FalsyErrorIgnored(t *testing.T) {
	result, err := ParseAnalysisResponse(`{"error": "", "overallScore": "6/10"}`)

	require.NoError(t, err)
	assert.Equal(t, "6/10", result.OverallScore)
}

func TestParseAnalysisResponse_MissingScoreAndError(t *testing.T) {
	_, err := ParseAnalysisResponse(`{"strengths":["Concise"]}`)
	assert.ErrorIs(t, err, ErrResponseParse)
}

func TestParseAnalysisResponse_NonObjectPayload(t *testing.T) {
	_, err := ParseAnalysisResponse(PayloadOpenTag + `["a","b"]` + PayloadCloseTag)
	assert.ErrorIs(t, err, ErrResponseParse)
}
