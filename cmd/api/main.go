package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/adapter"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/cache"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/config"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/handler"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/importer"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/logger"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/middleware"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Export artifact staging: Redis when configured, in-memory otherwise.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Redis export staging initialized", zap.String("address", cfg.Redis.Address))
	} else {
		cacheAdapter = adapter.NewMemoryCacheAdapter()
		appLogger.Info("Redis not configured, staging exports in memory")
	}

	// One pool and one shuffler per process; the shuffler draws from a
	// process-wide random source.
	pool := domain.NewPool()
	shuffler := domain.NewShuffler(nil)

	// Initialize services
	poolService := service.NewPoolService(pool)
	importService := service.NewImportService(importer.NewParser(), pool)
	exportService := service.NewExportService(pool, shuffler, cacheAdapter, cfg)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(poolService)
	importHandler := handler.NewImportHandler(importService)
	exportHandler := handler.NewExportHandler(exportService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Pool management
	apiGroup.Post("/questions", questionHandler.AddQuestion)
	apiGroup.Get("/questions", questionHandler.ListQuestions)
	apiGroup.Get("/questions/:id", questionHandler.GetQuestion)
	apiGroup.Put("/questions/:id", questionHandler.UpdateQuestion)
	apiGroup.Delete("/questions/:id", questionHandler.RemoveQuestion)
	apiGroup.Delete("/questions", questionHandler.ClearPool)

	// Document import
	apiGroup.Post("/imports", importHandler.ImportDocument)
	apiGroup.Get("/imports/template", importHandler.Template)

	// Exam export
	apiGroup.Post("/exports", exportHandler.CreateExport)
	apiGroup.Get("/exports/:id/exam", exportHandler.GetExamPaper)
	apiGroup.Get("/exports/:id/answers", exportHandler.GetAnswerKey)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
