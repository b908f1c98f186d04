// Seeds demo users with wellbeing history and runs analytics for each of them.
// Usage: go run scripts/seed/main.go
package main

import (
	"context"
	"log"

	"github.com/blaisecz/wellbeing-tracker/internal/config"
	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/internal/seed"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	ctx := context.Background()
	ids, err := seed.Run(ctx, db, zlog)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	analytics := service.NewAnalyticsService(service.AnalyticsDeps{
		Users:            repository.NewUserRepository(db),
		Moods:            repository.NewMoodEntryRepository(db),
		Activities:       repository.NewActivityRepository(db),
		Games:            repository.NewGameSessionRepository(db),
		CheckIns:         repository.NewCheckInRepository(db),
		Patterns:         repository.NewPatternRepository(db),
		Snapshots:        repository.NewSnapshotRepository(db),
		Insights:         repository.NewInsightRepository(db),
		Writer:           repository.NewResultWriter(db),
		Log:              zlog,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	outcome, err := analytics.RunBatch(ctx, ids, cfg.AnalyticsWindowDays)
	if err != nil {
		log.Fatalf("Failed to run analytics: %v", err)
	}
	for id, runErr := range outcome.Failed {
		log.Printf("Analytics failed for %s: %v", id, runErr)
	}

	log.Printf("Seeding completed: %d users analyzed, %d failed", outcome.Succeeded, len(outcome.Failed))
}
