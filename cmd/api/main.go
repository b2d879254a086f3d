// @title Exam Generator API
// @version 1.0
// @description Generates exam questions with hosted and local LLM providers.
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "examgen/cmd/api/docs"
	"examgen/internal/adapter"
	"examgen/internal/adapter/quizgen"
	"examgen/internal/cache"
	"examgen/internal/config"
	"examgen/internal/domain"
	"examgen/internal/handler"
	"examgen/internal/logger"
	"examgen/internal/middleware"
	"examgen/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	generators := []domain.QuestionGenerator{
		quizgen.NewGeminiGenerator(config.APIKey(config.GeminiAPIKey), cfg.LLM.GeminiModel, appLogger),
		quizgen.NewMistralGenerator(config.APIKey(config.MistralAPIKey), cfg.LLM.MistralModel, appLogger),
		quizgen.NewOpenAIGenerator(config.APIKey(config.OpenAIAPIKey), cfg.LLM.OpenAIModel, appLogger),
		quizgen.NewOllamaGenerator(cfg.LLM.OllamaServer, cfg.LLM.OllamaModel, appLogger),
	}

	// Redis is optional; without it every request reaches the provider.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(pingCtx, cfg.Redis)
		cancel()
		if err != nil {
			appLogger.Warn("Redis unavailable, question set caching disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
		}
	}

	examService := service.NewExamService(generators, cacheAdapter, cfg)
	examHandler := handler.NewExamHandler(examService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, examHandler, middleware.NewValidationMiddleware(cfg.LLM.MaxQuestions))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
