package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/langfuse"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uuid.UUID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// addUser registers a user directly and returns its ID.
func (m *MockUserRepository) addUser(timezone string) uuid.UUID {
	user := &domain.User{ID: uuid.New(), Timezone: timezone}
	m.mu.Lock()
	m.users[user.ID] = user
	m.mu.Unlock()
	return user.ID
}

// pageOf mimics the repositories: newest first, limited to limit+1 rows.
func pageOf[T any](rows []T, filter domain.ListFilter, at func(T) time.Time) []T {
	sorted := make([]T, 0, len(rows))
	for _, row := range rows {
		t := at(row)
		if filter.From != nil && t.Before(*filter.From) {
			continue
		}
		if filter.To != nil && t.After(*filter.To) {
			continue
		}
		sorted = append(sorted, row)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return at(sorted[i]).After(at(sorted[j])) })
	if limit := pagination.NormalizeLimit(filter.Limit) + 1; len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// MockMoodEntryRepository is a mock implementation of MoodEntryRepository
type MockMoodEntryRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*domain.MoodEntry
	err     error
}

func NewMockMoodEntryRepository() *MockMoodEntryRepository {
	return &MockMoodEntryRepository{entries: make(map[uuid.UUID]*domain.MoodEntry)}
}

func (m *MockMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockMoodEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockMoodEntryRepository) Update(ctx context.Context, entry *domain.MoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockMoodEntryRepository) all(userID uuid.UUID) []domain.MoodEntry {
	var result []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result
}

func (m *MockMoodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return pageOf(m.all(userID), filter, func(e domain.MoodEntry) time.Time { return e.CreatedAt }), nil
}

func (m *MockMoodEntryRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MoodEntry
	for _, e := range m.all(userID) {
		if !e.CreatedAt.Before(since) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *MockMoodEntryRepository) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	mu         sync.Mutex
	activities []domain.WellnessActivityCompletion
	err        error
}

func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.WellnessActivityCompletion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *MockActivityRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WellnessActivityCompletion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var owned []domain.WellnessActivityCompletion
	for _, a := range m.activities {
		if a.UserID == userID {
			owned = append(owned, a)
		}
	}
	return pageOf(owned, filter, func(a domain.WellnessActivityCompletion) time.Time { return a.CompletedAt }), nil
}

func (m *MockActivityRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.WellnessActivityCompletion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WellnessActivityCompletion
	for _, a := range m.activities {
		if a.UserID == userID && !a.CompletedAt.Before(since) {
			result = append(result, a)
		}
	}
	return result, nil
}

// MockGameSessionRepository is a mock implementation of GameSessionRepository
type MockGameSessionRepository struct {
	mu       sync.Mutex
	sessions []domain.GameSession
	err      error
}

func NewMockGameSessionRepository() *MockGameSessionRepository {
	return &MockGameSessionRepository{}
}

func (m *MockGameSessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *MockGameSessionRepository) matching(userID uuid.UUID, family *domain.GameFamily) []domain.GameSession {
	var result []domain.GameSession
	for _, s := range m.sessions {
		if s.UserID != userID {
			continue
		}
		if family != nil && s.GameFamily != *family {
			continue
		}
		result = append(result, s)
	}
	return result
}

func (m *MockGameSessionRepository) List(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) ([]domain.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return pageOf(m.matching(userID, family), filter, func(s domain.GameSession) time.Time { return s.CompletedAt }), nil
}

func (m *MockGameSessionRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time, family *domain.GameFamily) ([]domain.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.GameSession
	for _, s := range m.matching(userID, family) {
		if !s.CompletedAt.Before(since) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *MockGameSessionRepository) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// MockCheckInRepository is a mock implementation of CheckInRepository
type MockCheckInRepository struct {
	mu     sync.Mutex
	social []domain.SocialInteraction
	energy []domain.EnergyCheckIn
	err    error
}

func NewMockCheckInRepository() *MockCheckInRepository {
	return &MockCheckInRepository{}
}

func (m *MockCheckInRepository) CreateSocial(ctx context.Context, checkIn *domain.SocialInteraction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	m.social = append(m.social, *checkIn)
	return nil
}

func (m *MockCheckInRepository) CreateEnergy(ctx context.Context, checkIn *domain.EnergyCheckIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	m.energy = append(m.energy, *checkIn)
	return nil
}

func (m *MockCheckInRepository) ListSocialSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.SocialInteraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SocialInteraction
	for _, s := range m.social {
		if s.UserID == userID && !s.CreatedAt.Before(since) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *MockCheckInRepository) ListEnergySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.EnergyCheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.EnergyCheckIn
	for _, e := range m.energy {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

// MockPatternRepository is a mock implementation of PatternRepository
type MockPatternRepository struct {
	mu       sync.Mutex
	patterns map[uuid.UUID][]domain.MoodPattern
	err      error
}

func NewMockPatternRepository() *MockPatternRepository {
	return &MockPatternRepository{patterns: make(map[uuid.UUID][]domain.MoodPattern)}
}

func (m *MockPatternRepository) CreateBatch(ctx context.Context, patterns []domain.MoodPattern) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if len(patterns) > 0 {
		m.patterns[patterns[0].UserID] = patterns
	}
	return nil
}

func (m *MockPatternRepository) ListLatest(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.patterns[userID], nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository
type MockSnapshotRepository struct {
	mu        sync.Mutex
	snapshots []domain.MentalHealthScoreSnapshot
	latest    int
	err       error
	// afterLatest runs once after Latest has read the store.
	afterLatest func()
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

func (m *MockSnapshotRepository) Create(ctx context.Context, snapshot *domain.MentalHealthScoreSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.snapshots = append(m.snapshots, *snapshot)
	return nil
}

func (m *MockSnapshotRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.MentalHealthScoreSnapshot, error) {
	snapshot, err := m.readLatest(userID)
	m.mu.Lock()
	hook := m.afterLatest
	m.afterLatest = nil
	m.mu.Unlock()
	if hook != nil {
		hook()
	}
	return snapshot, err
}

func (m *MockSnapshotRepository) readLatest(userID uuid.UUID) (*domain.MentalHealthScoreSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest++
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.MentalHealthScoreSnapshot
	for i := range m.snapshots {
		s := &m.snapshots[i]
		if s.UserID == userID && (latest == nil || s.CalculatedAt.After(latest.CalculatedAt)) {
			latest = s
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

func (m *MockSnapshotRepository) History(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MentalHealthScoreSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MentalHealthScoreSnapshot
	for _, s := range m.snapshots {
		if s.UserID == userID && !s.CalculatedAt.Before(since) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CalculatedAt.Before(result[j].CalculatedAt) })
	return result, nil
}

// MockInsightRepository is a mock implementation of InsightRepository
type MockInsightRepository struct {
	mu       sync.Mutex
	insights []domain.MentalHealthInsight
	err      error
}

func NewMockInsightRepository() *MockInsightRepository {
	return &MockInsightRepository{}
}

func (m *MockInsightRepository) CreateBatch(ctx context.Context, insights []domain.MentalHealthInsight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.insights = append(m.insights, insights...)
	return nil
}

func (m *MockInsightRepository) List(ctx context.Context, userID uuid.UUID, filter repository.InsightFilter) ([]domain.MentalHealthInsight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MentalHealthInsight
	for _, i := range m.insights {
		if i.UserID != userID || (filter.UnacknowledgedOnly && i.Acknowledged) {
			continue
		}
		result = append(result, i)
	}
	return result, nil
}

func (m *MockInsightRepository) Acknowledge(ctx context.Context, userID, insightID uuid.UUID, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for i := range m.insights {
		insight := &m.insights[i]
		if insight.ID != insightID || insight.UserID != userID {
			continue
		}
		if !insight.Acknowledged {
			insight.Acknowledged = true
			insight.AcknowledgedAt = &at
		}
		return true, nil
	}
	return false, nil
}

// MockResultWriter records persisted runs and feeds the read-side mocks.
type MockResultWriter struct {
	mu        sync.Mutex
	patterns  *MockPatternRepository
	snapshots *MockSnapshotRepository
	insights  *MockInsightRepository
	calls     int
	err       error
}

func NewMockResultWriter(patterns *MockPatternRepository, snapshots *MockSnapshotRepository, insights *MockInsightRepository) *MockResultWriter {
	return &MockResultWriter{patterns: patterns, snapshots: snapshots, insights: insights}
}

func (m *MockResultWriter) Persist(ctx context.Context, patterns []domain.MoodPattern, snapshot *domain.MentalHealthScoreSnapshot, insights []domain.MentalHealthInsight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	if err := m.patterns.CreateBatch(ctx, patterns); err != nil {
		return err
	}
	if err := m.snapshots.Create(ctx, snapshot); err != nil {
		return err
	}
	return m.insights.CreateBatch(ctx, insights)
}

// MockSnapshotCache is an in-memory SnapshotCache.
type MockSnapshotCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]domain.MentalHealthScoreSnapshot
	invalidated int
	err         error
}

func NewMockSnapshotCache() *MockSnapshotCache {
	return &MockSnapshotCache{entries: make(map[uuid.UUID]domain.MentalHealthScoreSnapshot)}
}

func (m *MockSnapshotCache) Get(ctx context.Context, userID uuid.UUID) (*domain.MentalHealthScoreSnapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, false, m.err
	}
	s, ok := m.entries[userID]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (m *MockSnapshotCache) Set(ctx context.Context, snapshot *domain.MentalHealthScoreSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if current, ok := m.entries[snapshot.UserID]; ok && current.CalculatedAt.After(snapshot.CalculatedAt) {
		return nil
	}
	m.entries[snapshot.UserID] = *snapshot
	return nil
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
	if m.err != nil {
		return m.err
	}
	delete(m.entries, userID)
	return nil
}

// MockPublisher records published insight batches.
type MockPublisher struct {
	mu        sync.Mutex
	published map[uuid.UUID][]domain.MentalHealthInsight
	err       error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{published: make(map[uuid.UUID][]domain.MentalHealthInsight)}
}

func (m *MockPublisher) PublishInsights(ctx context.Context, userID uuid.UUID, insights []domain.MentalHealthInsight) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.published[userID] = insights
	return nil
}

// MockNarrativeLLM returns a canned narrative.
type MockNarrativeLLM struct {
	output   *domain.NarrativeOutput
	err      error
	received *domain.NarrativeContext
}

func (m *MockNarrativeLLM) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error) {
	m.received = narrativeCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	enabled bool
	traceID string
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return m.traceID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }
