package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Invalid configuration")
	}
	logger.Info().Str("env", cfg.Server.Env).Str("provider", cfg.LLM.Provider).Msg("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional history
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize database")
	}
	var history repositories.AnalysisRecordRepository
	if db != nil {
		history = repositories.NewAnalysisRecordRepository(db)
	}

	// Job store
	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize redis")
	}
	var jobRepo repositories.JobRepository
	if redisClient != nil {
		jobRepo = repositories.NewRedisJobRepository(redisClient, cfg.Redis.KeyPrefix, cfg.Worker.JobTTL)
	} else {
		jobRepo = repositories.NewMemoryJobRepository(cfg.Worker.JobTTL)
	}

	// AI client: handshake runs in the background, callers see readiness.
	llmService := services.NewLLMService(cfg.LLM.Timeout)
	go llmService.Init(ctx, services.NewChatClientFactory(cfg.LLM))

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
		history,
	)
	logger.Info().Msg("✅ Analyzer service initialized")

	worker := services.NewWorker(
		jobRepo,
		analyzer,
		cfg.Worker.Concurrency,
		cfg.Worker.QueueSize,
		cfg.Worker.SweepEvery,
	)
	worker.Start(ctx)

	app := handlers.NewApp(handlers.Handlers{
		Health:  handlers.NewHealthHandler(llmService.Readiness()),
		Analyze: handlers.NewAnalyzeHandler(analyzer, cfg.Storage.MaxFileSize),
		Upload:  handlers.NewUploadHandler(jobRepo, worker, cfg.Storage.MaxFileSize),
		Result:  handlers.NewResultHandler(jobRepo),
		History: handlers.NewHistoryHandler(history),
	}, handlers.AppOptions{
		// multipart framing on top of the file itself
		BodyLimit:  int(cfg.Storage.MaxFileSize) + 1<<20,
		AccessLogs: true,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("🛑 Shutting down server...")
		worker.Stop()
		cancel()
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
