package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withURLParams attaches chi URL params to a request, the way the router does.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockMoodEntryService is a mock implementation of MoodEntryService
type MockMoodEntryService struct {
	createFunc        func(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error)
	updateJournalFunc func(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error)
	listFunc          func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodEntryListResponse, error)
}

func (m *MockMoodEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.MoodEntry{
		ID:          uuid.New(),
		UserID:      userID,
		MoodValue:   req.MoodValue,
		JournalText: req.JournalText,
		CreatedAt:   time.Now(),
	}, nil
}

func (m *MockMoodEntryService) UpdateJournal(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error) {
	if m.updateJournalFunc != nil {
		return m.updateJournalFunc(ctx, userID, entryID, req)
	}
	return &domain.MoodEntry{
		ID:          entryID,
		UserID:      userID,
		MoodValue:   3,
		JournalText: req.JournalText,
		CreatedAt:   time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
	}, nil
}

func (m *MockMoodEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.MoodEntryListResponse{
		Data:       []domain.MoodEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateActivityRequest) (*domain.WellnessActivityCompletion, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ActivityListResponse, error)
}

func (m *MockActivityService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateActivityRequest) (*domain.WellnessActivityCompletion, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.WellnessActivityCompletion{
		ID:              uuid.New(),
		UserID:          userID,
		ActivityType:    req.ActivityType,
		DurationSeconds: req.DurationSeconds,
		StressBefore:    req.StressBefore,
		StressAfter:     req.StressAfter,
		CompletedAt:     time.Now(),
	}, nil
}

func (m *MockActivityService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ActivityListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.ActivityListResponse{Data: []domain.ActivityResponse{}}, nil
}

// MockGameSessionService is a mock implementation of GameSessionService
type MockGameSessionService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateGameSessionRequest) (*domain.GameSession, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) (*domain.GameSessionListResponse, error)
}

func (m *MockGameSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateGameSessionRequest) (*domain.GameSession, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.GameSession{
		ID:          uuid.New(),
		UserID:      userID,
		GameFamily:  req.GameFamily,
		CompletedAt: time.Now(),
	}, nil
}

func (m *MockGameSessionService) List(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) (*domain.GameSessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, family, filter)
	}
	return &domain.GameSessionListResponse{Data: []domain.GameSessionResponse{}}, nil
}

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	createSocialFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSocialCheckInRequest) (*domain.SocialInteraction, error)
	createEnergyFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateEnergyCheckInRequest) (*domain.EnergyCheckIn, error)
}

func (m *MockCheckInService) CreateSocial(ctx context.Context, userID uuid.UUID, req *domain.CreateSocialCheckInRequest) (*domain.SocialInteraction, error) {
	if m.createSocialFunc != nil {
		return m.createSocialFunc(ctx, userID, req)
	}
	return &domain.SocialInteraction{ID: uuid.New(), UserID: userID, TalkedToSomeone: req.TalkedToSomeone}, nil
}

func (m *MockCheckInService) CreateEnergy(ctx context.Context, userID uuid.UUID, req *domain.CreateEnergyCheckInRequest) (*domain.EnergyCheckIn, error) {
	if m.createEnergyFunc != nil {
		return m.createEnergyFunc(ctx, userID, req)
	}
	return &domain.EnergyCheckIn{ID: uuid.New(), UserID: userID, EnergyLevel: req.EnergyLevel}, nil
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	runFunc            func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsRunResult, error)
	summaryFunc        func(ctx context.Context, userID uuid.UUID) (*domain.EngagementSummary, error)
	latestPatternsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error)
	latestScoresFunc   func(ctx context.Context, userID uuid.UUID) (*domain.ScoreReport, error)
	scoreHistoryFunc   func(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error)
	listInsightsFunc   func(ctx context.Context, userID uuid.UUID, unacknowledgedOnly bool) (*domain.InsightListResponse, error)
	acknowledgeFunc    func(ctx context.Context, userID, insightID uuid.UUID) error
	streakFunc         func(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error)
}

func (m *MockAnalyticsService) Run(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsRunResult, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, userID, windowDays)
	}
	return &domain.AnalyticsRunResult{UserID: userID, WindowDays: windowDays}, nil
}

func (m *MockAnalyticsService) RunBatch(ctx context.Context, userIDs []uuid.UUID, windowDays int) (*service.BatchOutcome, error) {
	return &service.BatchOutcome{Succeeded: len(userIDs)}, nil
}

func (m *MockAnalyticsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.EngagementSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID)
	}
	return &domain.EngagementSummary{MoodTrend: domain.TrendStable}, nil
}

func (m *MockAnalyticsService) LatestPatterns(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error) {
	if m.latestPatternsFunc != nil {
		return m.latestPatternsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAnalyticsService) LatestScores(ctx context.Context, userID uuid.UUID) (*domain.ScoreReport, error) {
	if m.latestScoresFunc != nil {
		return m.latestScoresFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockAnalyticsService) ScoreHistory(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error) {
	if m.scoreHistoryFunc != nil {
		return m.scoreHistoryFunc(ctx, userID, days)
	}
	return &domain.ScoreHistoryResponse{Days: days, Data: []domain.MentalHealthScoreSnapshot{}}, nil
}

func (m *MockAnalyticsService) ListInsights(ctx context.Context, userID uuid.UUID, unacknowledgedOnly bool) (*domain.InsightListResponse, error) {
	if m.listInsightsFunc != nil {
		return m.listInsightsFunc(ctx, userID, unacknowledgedOnly)
	}
	return &domain.InsightListResponse{Data: []domain.MentalHealthInsight{}}, nil
}

func (m *MockAnalyticsService) AcknowledgeInsight(ctx context.Context, userID, insightID uuid.UUID) error {
	if m.acknowledgeFunc != nil {
		return m.acknowledgeFunc(ctx, userID, insightID)
	}
	return nil
}

func (m *MockAnalyticsService) Streak(ctx context.Context, userID uuid.UUID) (*domain.StreakResponse, error) {
	if m.streakFunc != nil {
		return m.streakFunc(ctx, userID)
	}
	return &domain.StreakResponse{UserID: userID}, nil
}

// MockNarrativeService is a mock implementation of NarrativeService
type MockNarrativeService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error
	feedback     []domain.NarrativeFeedbackRequest
}

func (m *MockNarrativeService) Generate(ctx context.Context, userID uuid.UUID) (*domain.NarrativeResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.NarrativeResponse{
		Narrative: domain.NarrativeOutput{
			Summary:      "Your mood has been steady.",
			Observations: []string{"Consistent logging"},
			Guidance:     []string{"Keep it up"},
		},
	}, nil
}

func (m *MockNarrativeService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req *domain.NarrativeFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	m.feedback = append(m.feedback, *req)
	return nil
}
