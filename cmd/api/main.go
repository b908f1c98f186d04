// Wellbeing Tracker API
//
// REST API for mood, activity and mini-game telemetry with deterministic
// wellbeing analytics.
//
//	@title			Wellbeing Tracker API
//	@version		1.0
//	@description	Mood, activity and mini-game telemetry with deterministic wellbeing analytics and scoring.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			mood-entries
//	@tag.description	Mood logging and journal notes
//
//	@tag.name			analytics
//	@tag.description	Pattern detection, summaries and narratives
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/api"
	"github.com/blaisecz/wellbeing-tracker/internal/api/handler"
	"github.com/blaisecz/wellbeing-tracker/internal/cache"
	"github.com/blaisecz/wellbeing-tracker/internal/config"
	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/llm"
	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/internal/seed"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/blaisecz/wellbeing-tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		log.Fatal("failed to init tracer", "error", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", "driver", cfg.DatabaseDriver, "error", err)
	}
	log.Info("database connection established", "driver", cfg.DatabaseDriver)

	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}
	log.Info("database migration completed")

	m := metrics.NewMetrics()

	// Redis is optional; analytics falls back to no caching and no events.
	var snapshotCache cache.SnapshotCache = cache.Noop{}
	var publisher cache.InsightPublisher = cache.Noop{}
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Addr:    cfg.RedisAddr,
			Channel: cfg.RedisChannel,
			TTL:     cfg.SnapshotCacheTTL,
		}, log)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer redisCache.Close()
			snapshotCache = redisCache
			publisher = redisCache
			log.Info("redis cache enabled", "addr", cfg.RedisAddr)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodEntryRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	gameRepo := repository.NewGameSessionRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	patternRepo := repository.NewPatternRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	insightRepo := repository.NewInsightRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	moodService := service.NewMoodEntryService(moodRepo, userRepo)
	activityService := service.NewActivityService(activityRepo, userRepo)
	gameService := service.NewGameSessionService(gameRepo, userRepo)
	checkInService := service.NewCheckInService(checkInRepo, userRepo)
	analyticsService := service.NewAnalyticsService(service.AnalyticsDeps{
		Users:            userRepo,
		Moods:            moodRepo,
		Activities:       activityRepo,
		Games:            gameRepo,
		CheckIns:         checkInRepo,
		Patterns:         patternRepo,
		Snapshots:        snapshotRepo,
		Insights:         insightRepo,
		Writer:           repository.NewResultWriter(db),
		Cache:            snapshotCache,
		Publisher:        publisher,
		Metrics:          m,
		Log:              log,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	langfuseCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}
	langfuseClient := langfuse.NewClient(langfuseCfg, log)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := langfuseClient.Flush(flushCtx); err != nil {
			log.Warn("langfuse flush incomplete", "error", err)
		}
	}()

	// A nil OpenAI client reports ErrOpenAIUnavailable from the narrative endpoint.
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAINarrativeModel)
	if openaiClient != nil {
		loader := &langfuse.PromptLoader{
			Config:    langfuseCfg,
			Name:      cfg.LangfuseNarrativePrompt,
			Label:     "production",
			CachePath: cfg.PromptCachePath,
			Fallback:  llm.DefaultSystemPrompt,
			Log:       log,
		}
		prompt, err := loader.Load(ctx)
		if err != nil {
			log.Warn("narrative prompt unavailable, using default", "error", err)
		}
		openaiClient = openaiClient.WithSystemPrompt(prompt)
	} else {
		log.Warn("OpenAI API key not configured, narrative endpoint will be unavailable")
	}
	narrativeService := service.NewNarrativeService(analyticsService, openaiClient, langfuseClient, userRepo)

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		ids, err := seed.Run(ctx, db, log)
		if err != nil {
			log.Fatal("failed to seed database", "error", err)
		}
		outcome, err := analyticsService.RunBatch(ctx, ids, cfg.AnalyticsWindowDays)
		if err != nil {
			log.Fatal("failed to run analytics for seeded users", "error", err)
		}
		for id, runErr := range outcome.Failed {
			log.Warn("seed analytics run failed", "user_id", id, "error", runErr)
		}
		log.Info("seed analytics completed", "succeeded", outcome.Succeeded, "failed", len(outcome.Failed))
	}

	// Setup router
	router := api.NewRouter(api.Handlers{
		User:        handler.NewUserHandler(userService),
		MoodEntry:   handler.NewMoodEntryHandler(moodService),
		Activity:    handler.NewActivityHandler(activityService),
		GameSession: handler.NewGameSessionHandler(gameService),
		CheckIn:     handler.NewCheckInHandler(checkInService),
		Analytics:   handler.NewAnalyticsHandler(analyticsService),
		Score:       handler.NewScoreHandler(analyticsService),
		Insight:     handler.NewInsightHandler(analyticsService),
		Narrative:   handler.NewNarrativeHandler(narrativeService),
	}, log, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}()

	// Start server
	log.Info("starting server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", "error", err)
	}
	log.Info("server stopped")
}
