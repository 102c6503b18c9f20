package services

import (
	"strings"
)

const (
	DocumentTextPlaceholder = "{{DOCUMENT_TEXT}}"
	SystemPrompt            = "You are an expert resume reviewer."

	PayloadOpenTag  = "<analysis_json>"
	PayloadCloseTag = "</analysis_json>"
)

const analyzeResumePrompt = `Analyze the following resume and evaluate it the way an experienced recruiter and an Applicant Tracking System (ATS) would.

RESUME:
{{DOCUMENT_TEXT}}

Return your evaluation as a single JSON object wrapped exactly between the tags <analysis_json> and </analysis_json>, with no other JSON anywhere in your reply. Use this structure:
<analysis_json>
{
  "overallScore": "<score from 1 to 10>/10",
  "strengths": ["<specific strength>", "..."],
  "improvements": ["<specific, actionable improvement>", "..."],
  "keywords": ["<important skill or keyword found in the resume>", "..."],
  "atsChecklist": ["<ATS requirement and whether the resume meets it>", "..."],
  "summary": "<2-3 sentence overall assessment>",
  "performanceMetrics": {
    "formatting": <0-10>,
    "contentQuality": <0-10>,
    "atsCompatibility": <0-10>,
    "keywordUsage": <0-10>,
    "quantifiableResults": <0-10>
  }
}
</analysis_json>

If the text is not a resume, return <analysis_json>{"error": "<short reason>"}</analysis_json> instead.
Base every statement only on the resume text. Do not invent experience.`

type PromptBuilder struct {
	template string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{template: analyzeResumePrompt}
}

// NewPromptBuilderWithTemplate uses a custom template; it must contain DocumentTextPlaceholder.
func NewPromptBuilderWithTemplate(template string) *PromptBuilder {
	return &PromptBuilder{template: template}
}

// BuildAnalysisPrompt substitutes the first placeholder occurrence only.
func (pb *PromptBuilder) BuildAnalysisPrompt(documentText string) string {
	return strings.Replace(pb.template, DocumentTextPlaceholder, documentText, 1)
}

// BuildMessages returns the system + user exchange sent to the model.
func (pb *PromptBuilder) BuildMessages(documentText string) []ChatMessage {
	return []ChatMessage{
		{Role: RoleSystem, Content: SystemPrompt},
		{Role: RoleUser, Content: pb.BuildAnalysisPrompt(documentText)},
	}
}
