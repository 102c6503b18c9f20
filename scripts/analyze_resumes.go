package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	wait := flag.Duration("wait", 30*time.Second, "how long to wait for the AI client handshake")
	asJSON := flag.Bool("json", false, "print full reports as JSON")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] resume.pdf [more.pdf ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Invalid configuration")
	}

	ctx := context.Background()

	llmService := services.NewLLMService(cfg.LLM.Timeout)
	go llmService.Init(ctx, services.NewChatClientFactory(cfg.LLM))

	waitCtx, cancel := context.WithTimeout(ctx, *wait)
	err := llmService.Readiness().Wait(waitCtx)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ AI client not ready")
	}

	analyzer := services.NewAnalyzerService(
		services.NewPDFParserService(cfg.Extraction.Concurrency),
		llmService,
		services.NewSkillMatcher(services.SkillPolicy{
			Vocabulary:     cfg.Policy.Vocabulary,
			SoftSkills:     cfg.Policy.SoftSkills,
			HighlightLimit: cfg.Policy.HighlightLimit,
			MainLimit:      cfg.Policy.MainLimit,
		}),
		services.ScorePolicy{
			GoodThreshold: cfg.Policy.GoodThreshold,
			FairThreshold: cfg.Policy.FairThreshold,
			Metrics:       services.DefaultMetrics,
		},
		nil,
	)

	successCount := 0
	failCount := 0

	for _, path := range flag.Args() {
		logger.Info().Str("path", path).Msg("📄 Processing resume")

		report, err := analyzeFile(ctx, analyzer, path, cfg.Storage.MaxFileSize)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("❌ Analysis failed")
			failCount++
			continue
		}
		successCount++

		if *asJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				logger.Error().Err(err).Msg("❌ Failed to encode report")
				continue
			}
			fmt.Println(string(out))
			continue
		}
		printSummary(report)
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("=", 60))
	fmt.Fprintf(os.Stderr, "📊 Analyzed: %d, failed: %d\n", successCount, failCount)

	if failCount > 0 {
		os.Exit(1)
	}
}

func analyzeFile(ctx context.Context, analyzer services.AnalyzerService, path string, maxFileSize int64) (*models.AnalysisReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc := &models.Document{
		FileName:    filepath.Base(path),
		ContentType: "application/pdf",
		Size:        int64(len(data)),
		Data:        data,
	}
	if err := services.ValidateUpload(doc, maxFileSize); err != nil {
		return nil, err
	}

	return analyzer.Analyze(ctx, doc)
}

func printSummary(report *models.AnalysisReport) {
	fmt.Printf("\n%s (%d pages)\n", report.FileName, report.PageCount)
	fmt.Printf("  Overall score: %s [%s]\n", report.Analysis.OverallScore, report.OverallBand)
	for _, m := range report.Metrics {
		fmt.Printf("  %-20s %4.1f [%s]\n", m.Key, m.Value, m.Band)
	}
	if len(report.Insights.Highlighted) > 0 {
		fmt.Printf("  Highlighted skills: %s\n", strings.Join(report.Insights.Highlighted, ", "))
	}
	if len(report.Insights.Main) > 0 {
		fmt.Printf("  Other skills: %s\n", strings.Join(report.Insights.Main, ", "))
	}
	missing := make([]string, 0)
	for _, item := range report.PresenceChecklist {
		if !item.Present {
			missing = append(missing, item.Label)
		}
	}
	if len(missing) > 0 {
		fmt.Printf("  Missing: %s\n", strings.Join(missing, ", "))
	}
	if report.Analysis.Summary != "" {
		fmt.Printf("  %s\n", report.Analysis.Summary)
	}
}
