package main

import (
	"context"
	"log"

	"cork/internal/repository"
	"cork/internal/service"
	"cork/pkg/config"
	"cork/pkg/logger"
	"cork/pkg/postgres"

	"go.uber.org/zap"
)

// Seeds the curated_wines table from the compiled-in fallback datasets so
// the catalog browse endpoint serves the same wines the fallback tier does.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	catalogRepo := repository.NewCatalogRepository(db, appLogger)

	appLogger.Info("Seeding curated wine catalog...")

	if err := catalogRepo.DeleteAll(ctx); err != nil {
		appLogger.Fatal("Failed to clear catalog", zap.Error(err))
	}

	wines := service.CuratedWines()
	if err := catalogRepo.CreateBatch(ctx, wines); err != nil {
		appLogger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	appLogger.Info("Catalog seeding completed", zap.Int("wines", len(wines)))
}
