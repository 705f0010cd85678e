package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cork/internal/api"
	"cork/internal/api/handlers"
	"cork/internal/repository"
	"cork/internal/service"
	"cork/pkg/auth"
	"cork/pkg/config"
	"cork/pkg/logger"
	"cork/pkg/postgres"

	"go.uber.org/zap"
)

// @title Cork API
// @version 1.0
// @description Wine recommendation service: AI-backed suggestions with a curated fallback, label scanning and a personal cellar

// @contact.name API Support
// @contact.email support@cork.wine

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting cork service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	historyRepo := repository.NewHistoryRepository(db, appLogger)
	cellarRepo := repository.NewCellarRepository(db, appLogger)
	catalogRepo := repository.NewCatalogRepository(db, appLogger)
	labelRepo := repository.NewLabelRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services. The LLM client is built once here and injected;
	// without an API key the service runs on the fallback tier alone.
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	var generator service.WineGenerator
	var extractor service.LabelExtractor
	if cfg.GigaChat.APIKey != "" {
		llmService, err := service.NewLLMService(&cfg.GigaChat, &cfg.Recommend, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize LLM service, AI tier disabled", zap.Error(err))
		} else {
			defer llmService.Close()
			generator = llmService
			extractor = llmService
		}
	} else {
		appLogger.Info("No AI provider key configured, serving curated fallback only")
	}

	fallback := service.NewFallbackCatalog(&cfg.Recommend)
	recService := service.NewRecommendationService(generator, fallback, historyRepo, &cfg.Recommend, appLogger)
	cellarService := service.NewCellarService(cellarRepo, appLogger)
	catalogService := service.NewCatalogService(catalogRepo, appLogger)
	labelService := service.NewLabelService(extractor, labelRepo, "uploads", appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	recHandler := handlers.NewRecommendationHandler(recService, appLogger)
	cellarHandler := handlers.NewCellarHandler(cellarService, appLogger)
	labelHandler := handlers.NewLabelHandler(labelService, appLogger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, recHandler, cellarHandler, labelHandler, catalogHandler, jwtManager, &cfg.Recommend, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
