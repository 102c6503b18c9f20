package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Handlers struct {
	Health  *HealthHandler
	Analyze *AnalyzeHandler
	Upload  *UploadHandler
	Result  *ResultHandler
	History *HistoryHandler
}

type AppOptions struct {
	BodyLimit  int
	AccessLogs bool
}

// NewApp builds the fiber app with middleware and routes.
func NewApp(h Handlers, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLogs {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")
	api.Get("/health", h.Health.HandleHealth)
	api.Post("/analyze", h.Analyze.HandleAnalyze)
	api.Post("/upload", h.Upload.HandleUpload)
	api.Get("/result/:id", h.Result.HandleGetResult)
	api.Get("/history", h.History.HandleList)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/analyze",
				"POST /api/v1/upload",
				"GET /api/v1/result/:id",
				"GET /api/v1/history",
			},
		})
	})

	return app
}
