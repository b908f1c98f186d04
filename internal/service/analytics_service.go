package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/analytics"
	"github.com/blaisecz/wellbeing-tracker/internal/cache"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/blaisecz/wellbeing-tracker/internal/metrics"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultScoreHistoryDays is the default lookback of the score history endpoint.
	DefaultScoreHistoryDays = 90
	// DefaultBatchConcurrency bounds how many users RunBatch analyzes at once.
	DefaultBatchConcurrency = 4
)

// AnalyticsService runs the analytics engine and serves its stored results.
type AnalyticsService interface {
	// Run fetches the user's records, runs every engine component and persists
	// patterns, snapshot and insights in one transaction. Fetch or persist
	// failures wrap domain.ErrStoreUnavailable and leave nothing written.
	Run(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsRunResult, error)
	// RunBatch runs every given user, or every known user when userIDs is empty.
	RunBatch(ctx context.Context, userIDs []uuid.UUID, windowDays int) (*BatchOutcome, error)
	Summary(ctx context.Context, userID uuid.UUID) (*domain.EngagementSummary, error)
	LatestPatterns(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error)
	LatestScores(ctx context.Context, userID uuid.UUID) (*domain.ScoreReport, error)
	ScoreHistory(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error)
	ListInsights(ctx context.Context, userID uuid.UUID, unacknowledgedOnly bool) (*domain.InsightListResponse, error)
	AcknowledgeInsight(ctx context.Context, userID, insightID uuid.UUID) error
	Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
}

// BatchOutcome reports which users a batch run could not analyze.
type BatchOutcome struct {
	Succeeded int
	Failed    map[uuid.UUID]error
}

// AnalyticsDeps wires the analytics service. Cache, Publisher, Metrics and Log
// are optional.
type AnalyticsDeps struct {
	Users      repository.UserRepository
	Moods      repository.MoodEntryRepository
	Activities repository.ActivityRepository
	Games      repository.GameSessionRepository
	CheckIns   repository.CheckInRepository
	Patterns   repository.PatternRepository
	Snapshots  repository.SnapshotRepository
	Insights   repository.InsightRepository
	Writer     repository.ResultWriter

	Cache     cache.SnapshotCache
	Publisher cache.InsightPublisher
	Metrics   *metrics.Metrics
	Log       *logger.Logger

	Engine           *analytics.RuleEngine
	Composer         *analytics.Composer
	BatchConcurrency int
}

type analyticsService struct {
	deps  AnalyticsDeps
	locks *userLocks
	log   *logger.Logger
	now   func() time.Time
}

func NewAnalyticsService(deps AnalyticsDeps) AnalyticsService {
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	if deps.Publisher == nil {
		deps.Publisher = cache.Noop{}
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Engine == nil {
		deps.Engine = analytics.NewRuleEngine(analytics.DefaultRules()...)
	}
	if deps.Composer == nil {
		deps.Composer = analytics.NewComposer(analytics.DefaultWeights)
	}
	if deps.BatchConcurrency <= 0 {
		deps.BatchConcurrency = DefaultBatchConcurrency
	}
	return &analyticsService{
		deps:  deps,
		locks: newUserLocks(),
		log:   deps.Log.With("service", "AnalyticsService"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}

func isStoreUnavailable(err error) bool {
	return errors.Is(err, domain.ErrStoreUnavailable)
}

func (s *analyticsService) Run(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsRunResult, error) {
	if windowDays == 0 {
		windowDays = domain.DefaultAnalyticsWindowDays
	}
	if windowDays < 1 || windowDays > domain.MaxAnalyticsWindowDays {
		return nil, domain.ErrInvalidInput
	}

	tracer := otel.Tracer("wellbeing-tracker-api/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.Run",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	if inputJSON, err := json.Marshal(map[string]any{"user_id": userID, "window_days": windowDays}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	started := time.Now()
	result, err := s.run(ctx, userID, windowDays)
	switch {
	case err == nil:
		s.deps.Metrics.ObserveRun(metrics.OutcomeSuccess, time.Since(started))
	case isStoreUnavailable(err):
		s.deps.Metrics.ObserveRun(metrics.OutcomeStoreUnavailable, time.Since(started))
	default:
		s.deps.Metrics.ObserveRun(metrics.OutcomeError, time.Since(started))
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	output := map[string]any{
		"patterns":        len(result.Patterns),
		"insights":        len(result.Insights),
		"composite_score": result.Snapshot.CompositeScore,
		"defaulted":       result.Snapshot.Inputs.Defaulted,
		"rejected":        len(result.Rejected),
	}
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	return result, nil
}

func (s *analyticsService) run(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsRunResult, error) {
	user, err := loadUser(ctx, s.deps.Users, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, storeUnavailable("load user", err)
	}
	loc := user.Location()
	now := s.now()

	// Patterns look further back than scoring does.
	lookback := max(windowDays, domain.PatternLookbackDays)
	fetchFrom := now.AddDate(0, 0, -lookback)

	// Moods also feed the streak walk, which reaches back a full year.
	moodsFrom := fetchFrom
	if streakFrom := streakLookback(now); streakFrom.Before(moodsFrom) {
		moodsFrom = streakFrom
	}

	raw, err := s.fetch(ctx, userID, fetchFrom, moodsFrom)
	if err != nil {
		return nil, err
	}
	streakTimes := moodTimes(raw.Moods)

	full := analytics.Normalize(userID, fetchFrom, now, raw)
	scored := full.Since(now.AddDate(0, 0, -windowDays))
	for _, rejected := range full.Rejected {
		s.log.Warn("game session excluded from analytics run",
			"user_id", userID.String(),
			"session_id", rejected.SessionID.String(),
			"game_family", string(rejected.GameFamily),
			"reason", rejected.Reason,
		)
		s.deps.Metrics.PayloadRejected(string(rejected.GameFamily))
	}

	// Components share no mutable state; each writes only its own result.
	var (
		patterns []domain.MoodPattern
		snapshot domain.MentalHealthScoreSnapshot
		streak   int
	)
	var g errgroup.Group
	g.Go(func() error {
		patterns = analytics.DetectPatterns(userID, full.Moods, now, loc)
		return nil
	})
	g.Go(func() error {
		features := analytics.ExtractAll(scored.Games)
		snapshot = s.deps.Composer.Compose(scored, features, now, windowDays)
		return nil
	})
	g.Go(func() error {
		streak = analytics.Streak(streakTimes, now, loc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if patterns == nil {
		patterns = []domain.MoodPattern{}
	}

	insights := s.deps.Engine.Evaluate(analytics.RuleInput{
		UserID:     userID,
		Now:        now,
		Moods:      full.Moods,
		Activities: full.Activities,
		Patterns:   patterns,
		Snapshot:   &snapshot,
	})

	if err := s.persist(ctx, userID, patterns, &snapshot, insights); err != nil {
		return nil, err
	}

	for _, insight := range insights {
		s.deps.Metrics.InsightFired(insight.InsightType, string(insight.Severity))
	}

	s.log.Info("analytics run completed",
		"user_id", userID.String(),
		"window_days", windowDays,
		"patterns", len(patterns),
		"insights", len(insights),
		"composite_score", snapshot.CompositeScore,
	)

	return &domain.AnalyticsRunResult{
		UserID:       userID,
		WindowDays:   windowDays,
		Patterns:     patterns,
		Snapshot:     snapshot,
		Insights:     insights,
		Streak:       streak,
		Rejected:     full.Rejected,
		CalculatedAt: now,
	}, nil
}

// streakLookback is the earliest mood the streak walk can reach.
func streakLookback(now time.Time) time.Time {
	return now.AddDate(0, 0, -(analytics.MaxStreakDays + 1))
}

func moodTimes(moods []domain.MoodEntry) []time.Time {
	times := make([]time.Time, len(moods))
	for i := range moods {
		times[i] = moods[i].CreatedAt
	}
	return times
}

// fetch loads every source concurrently. The first failure cancels the rest.
func (s *analyticsService) fetch(ctx context.Context, userID uuid.UUID, since, moodsSince time.Time) (analytics.RawRecords, error) {
	var raw analytics.RawRecords
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		moods, err := s.deps.Moods.ListSince(gctx, userID, moodsSince)
		if err != nil {
			return storeUnavailable("fetch mood entries", err)
		}
		raw.Moods = moods
		return nil
	})
	g.Go(func() error {
		activities, err := s.deps.Activities.ListSince(gctx, userID, since)
		if err != nil {
			return storeUnavailable("fetch activity completions", err)
		}
		raw.Activities = activities
		return nil
	})
	g.Go(func() error {
		games, err := s.deps.Games.ListSince(gctx, userID, since, nil)
		if err != nil {
			return storeUnavailable("fetch game sessions", err)
		}
		raw.Games = games
		return nil
	})
	g.Go(func() error {
		social, err := s.deps.CheckIns.ListSocialSince(gctx, userID, since)
		if err != nil {
			return storeUnavailable("fetch social check-ins", err)
		}
		raw.Social = social
		return nil
	})
	g.Go(func() error {
		energy, err := s.deps.CheckIns.ListEnergySince(gctx, userID, since)
		if err != nil {
			return storeUnavailable("fetch energy check-ins", err)
		}
		raw.Energy = energy
		return nil
	})

	if err := g.Wait(); err != nil {
		return analytics.RawRecords{}, err
	}
	return raw, nil
}

// persist writes a run's results under the user's lock, then refreshes the
// cache and announces the insights.
func (s *analyticsService) persist(ctx context.Context, userID uuid.UUID, patterns []domain.MoodPattern, snapshot *domain.MentalHealthScoreSnapshot, insights []domain.MentalHealthInsight) error {
	release := s.locks.lock(userID)
	defer release()

	if err := s.deps.Writer.Persist(ctx, patterns, snapshot, insights); err != nil {
		return storeUnavailable("persist results", err)
	}

	// The cache only moves forward; a stale read-through fill cannot replace this.
	if err := s.deps.Cache.Set(ctx, snapshot); err != nil {
		s.log.Warn("snapshot cache write failed", "user_id", userID.String(), "error", err)
		if err := s.deps.Cache.Invalidate(ctx, userID); err != nil {
			s.log.Warn("snapshot cache invalidation failed", "user_id", userID.String(), "error", err)
		}
	}
	if err := s.deps.Publisher.PublishInsights(ctx, userID, insights); err != nil {
		s.log.Warn("insight publish failed", "user_id", userID.String(), "error", err)
	}
	return nil
}

func (s *analyticsService) RunBatch(ctx context.Context, userIDs []uuid.UUID, windowDays int) (*BatchOutcome, error) {
	if len(userIDs) == 0 {
		ids, err := s.deps.Users.ListIDs(ctx)
		if err != nil {
			return nil, storeUnavailable("list users", err)
		}
		userIDs = ids
	}

	outcome := &BatchOutcome{Failed: make(map[uuid.UUID]error)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.deps.BatchConcurrency)
	for _, userID := range userIDs {
		g.Go(func() error {
			// One user's failure must not cancel the others.
			_, err := s.Run(gctx, userID, windowDays)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				outcome.Failed[userID] = err
				return nil
			}
			outcome.Succeeded++
			return nil
		})
	}
	_ = g.Wait()

	if len(outcome.Failed) > 0 {
		s.log.Warn("analytics batch finished with failures", "succeeded", outcome.Succeeded, "failed", len(outcome.Failed))
	}
	return outcome, ctx.Err()
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.EngagementSummary, error) {
	user, err := loadUser(ctx, s.deps.Users, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	// A year of entries covers the longest streak the calculator reports.
	moods, err := s.deps.Moods.ListSince(ctx, userID, now.AddDate(0, 0, -analytics.MaxStreakDays))
	if err != nil {
		return nil, err
	}
	activities, err := s.deps.Activities.ListSince(ctx, userID, now.AddDate(0, 0, -domain.DefaultAnalyticsWindowDays))
	if err != nil {
		return nil, err
	}
	patterns, err := s.deps.Patterns.ListLatest(ctx, userID)
	if err != nil {
		return nil, err
	}

	tel := analytics.Normalize(userID, time.Time{}, now, analytics.RawRecords{Moods: moods, Activities: activities})
	summary := analytics.Summarize(analytics.SummaryInput{
		Moods:      tel.Moods,
		Activities: tel.Activities,
		Patterns:   patterns,
		Now:        now,
		Location:   user.Location(),
	})
	return &summary, nil
}

func (s *analyticsService) LatestPatterns(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error) {
	if err := requireUser(ctx, s.deps.Users, userID); err != nil {
		return nil, err
	}
	patterns, err := s.deps.Patterns.ListLatest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patterns == nil {
		patterns = []domain.MoodPattern{}
	}
	return patterns, nil
}

// LatestScores reads through the snapshot cache.
func (s *analyticsService) LatestScores(ctx context.Context, userID uuid.UUID) (*domain.ScoreReport, error) {
	if err := requireUser(ctx, s.deps.Users, userID); err != nil {
		return nil, err
	}

	snapshot, found, err := s.deps.Cache.Get(ctx, userID)
	if err != nil {
		s.log.Warn("snapshot cache read failed", "user_id", userID.String(), "error", err)
		found = false
	}
	s.deps.Metrics.CacheLookup(found)

	if !found {
		snapshot, err = s.deps.Snapshots.Latest(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := s.deps.Cache.Set(ctx, snapshot); err != nil {
			s.log.Warn("snapshot cache write failed", "user_id", userID.String(), "error", err)
		}
	}

	return &domain.ScoreReport{
		Snapshot:        *snapshot,
		Interpretations: analytics.InterpretSnapshot(*snapshot),
		Recommendations: analytics.Recommendations(*snapshot),
	}, nil
}

func (s *analyticsService) ScoreHistory(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error) {
	if days == 0 {
		days = DefaultScoreHistoryDays
	}
	if days < 1 || days > domain.MaxAnalyticsWindowDays {
		return nil, domain.ErrInvalidInput
	}
	if err := requireUser(ctx, s.deps.Users, userID); err != nil {
		return nil, err
	}

	snapshots, err := s.deps.Snapshots.History(ctx, userID, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []domain.MentalHealthScoreSnapshot{}
	}
	return &domain.ScoreHistoryResponse{Days: days, Data: snapshots}, nil
}

func (s *analyticsService) ListInsights(ctx context.Context, userID uuid.UUID, unacknowledgedOnly bool) (*domain.InsightListResponse, error) {
	if err := requireUser(ctx, s.deps.Users, userID); err != nil {
		return nil, err
	}
	insights, err := s.deps.Insights.List(ctx, userID, repository.InsightFilter{UnacknowledgedOnly: unacknowledgedOnly})
	if err != nil {
		return nil, err
	}
	if insights == nil {
		insights = []domain.MentalHealthInsight{}
	}
	return &domain.InsightListResponse{Data: insights}, nil
}

// AcknowledgeInsight is idempotent. Unknown insights and insights of other
// users are reported as domain.ErrNotFound.
func (s *analyticsService) AcknowledgeInsight(ctx context.Context, userID, insightID uuid.UUID) error {
	if err := requireUser(ctx, s.deps.Users, userID); err != nil {
		return err
	}
	ok, err := s.deps.Insights.Acknowledge(ctx, userID, insightID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *analyticsService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	user, err := loadUser(ctx, s.deps.Users, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	loc := user.Location()

	moods, err := s.deps.Moods.ListSince(ctx, userID, streakLookback(now))
	if err != nil {
		return nil, err
	}

	return &domain.StreakResponse{
		UserID:        userID,
		CurrentStreak: analytics.Streak(moodTimes(moods), now, loc),
		AsOf:          now.In(loc).Format("2006-01-02"),
		Timezone:      loc.String(),
	}, nil
}
