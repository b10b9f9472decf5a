package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/config"
	"alfredoptarigan/interview-practice/internal/handlers"
	"alfredoptarigan/interview-practice/internal/logger"
	"alfredoptarigan/interview-practice/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize logging
	zapLogger, capture := logger.New(cfg.Log.JSON, cfg.Log.Debug, cfg.Log.CaptureSize)
	defer zapLogger.Sync()
	log.Println("✅ Logger initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, zapLogger)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	analyzer := services.NewAnswerAnalyzer(geminiService, zapLogger)
	interviewerService := services.NewInterviewerService(
		geminiService,
		analyzer,
		cfg.Gemini.RetryMaxAttempts,
		zapLogger,
	)
	evaluatorService := services.NewEvaluatorService(geminiService, zapLogger)
	speechService := services.NewSpeechService(cfg.ElevenLabs, zapLogger)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	interviewHandler := handlers.NewInterviewHandler(
		interviewerService,
		evaluatorService,
		speechService,
		zapLogger,
	)
	audioHandler := handlers.NewAudioHandler(speechService, geminiService, zapLogger)
	logsHandler := handlers.NewLogsHandler(capture)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Practice API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	interview := api.Group("/interview")
	interview.Post("/start", interviewHandler.HandleStart)
	interview.Post("/question", interviewHandler.HandleQuestion)
	interview.Post("/evaluate-turn", interviewHandler.HandleEvaluateTurn)
	interview.Post("/evaluate", interviewHandler.HandleEvaluate)
	api.Get("/categories", interviewHandler.HandleCategories)
	api.Get("/interview-types", interviewHandler.HandleInterviewTypes)

	audio := api.Group("/audio")
	audio.Post("/generate", audioHandler.HandleGenerate)
	audio.Post("/transcribe", audioHandler.HandleTranscribe)

	api.Get("/logs", logsHandler.HandleGetLogs)
	api.Get("/logs/stats", logsHandler.HandleStats)
	api.Delete("/logs", logsHandler.HandleClear)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Interview Practice API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/interview/start",
				"POST /api/interview/question",
				"POST /api/interview/evaluate-turn",
				"POST /api/interview/evaluate",
				"GET /api/categories",
				"GET /api/interview-types",
				"POST /api/audio/generate",
				"POST /api/audio/transcribe",
				"GET /api/logs",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
