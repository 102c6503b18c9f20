package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// Chatter is the part of LLMService the analyzer depends on.
type Chatter interface {
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
}

type AnalyzerService interface {
	Analyze(ctx context.Context, doc *models.Document) (*models.AnalysisReport, error)
}

type analyzerService struct {
	pdfParser     PDFParserService
	llm           Chatter
	promptBuilder *PromptBuilder
	skills        *SkillMatcher
	scores        ScorePolicy
	history       repositories.AnalysisRecordRepository
}

// NewAnalyzerService wires the pipeline. history may be nil.
func NewAnalyzerService(
	pdfParser PDFParserService,
	llm Chatter,
	skills *SkillMatcher,
	scores ScorePolicy,
	history repositories.AnalysisRecordRepository,
) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		skills:        skills,
		scores:        scores,
		history:       history,
	}
}

// Analyze runs extraction, the AI call and local scoring, strictly in sequence.
// It returns either a complete report or an error, never a partial report.
func (a *analyzerService) Analyze(ctx context.Context, doc *models.Document) (*models.AnalysisReport, error) {
	reportID := uuid.New()
	ctx = logger.WithContext(ctx, "analysis_id", reportID.String(), "file", doc.FileName)
	log := logger.Ctx(ctx)

	log.Info().Int("bytes", len(doc.Data)).Msg("🔄 Starting resume analysis")

	content, err := a.pdfParser.ExtractText(ctx, doc.Data)
	if err != nil {
		return nil, err
	}
	doc.Text = content.Text
	doc.PageCount = content.PageCount

	checklist := BuildPresenceChecklist(doc.Text)

	result, err := a.analyzeWithAI(ctx, doc.Text)
	if err != nil {
		log.Warn().Err(err).Msg("❌ AI analysis failed")
		return nil, err
	}

	report := &models.AnalysisReport{
		ID:                reportID,
		FileName:          doc.FileName,
		PageCount:         doc.PageCount,
		TextLength:        len(doc.Text),
		Analysis:          *result,
		Insights:          a.skills.Extract(doc.Text, result.Keywords),
		PresenceChecklist: checklist,
		OverallBand:       a.scores.OverallBand(result.OverallScore),
		Metrics:           a.scores.MetricScores(result.PerformanceMetrics),
		CreatedAt:         time.Now(),
	}

	a.saveHistory(ctx, report)

	log.Info().
		Str("overall_score", result.OverallScore).
		Str("band", string(report.OverallBand)).
		Int("highlighted", len(report.Insights.Highlighted)).
		Msg("✅ Resume analysis completed")
	return report, nil
}

func (a *analyzerService) analyzeWithAI(ctx context.Context, text string) (*models.AnalysisResult, error) {
	messages := a.promptBuilder.BuildMessages(text)
	logger.Ctx(ctx).Debug().Int("prompt_chars", len(messages[1].Content)).Msg("📝 Prompt built")

	reply, err := a.llm.Chat(ctx, messages)
	if err != nil {
		return nil, err
	}

	return ParseAnalysisResponse(reply)
}

// saveHistory never fails the analysis.
func (a *analyzerService) saveHistory(ctx context.Context, report *models.AnalysisReport) {
	if a.history == nil {
		return
	}

	resultJSON, err := json.Marshal(report.Analysis)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("⚠️ Failed to encode analysis for history")
		return
	}

	record := &models.AnalysisRecord{
		ID:           report.ID,
		FileName:     report.FileName,
		OverallScore: report.Analysis.OverallScore,
		OverallBand:  string(report.OverallBand),
		KeywordCount: len(report.Analysis.Keywords),
		Result:       resultJSON,
		CreatedAt:    report.CreatedAt,
	}
	if err := a.history.Create(ctx, record); err != nil {
		logger.Ctx(ctx).Warn().Err(fmt.Errorf("history: %w", err)).Msg("⚠️ Failed to save analysis history")
	}
}
