// Package cache keeps a read-through copy of the latest score snapshot per user
// and publishes insight events for the notification dispatcher.
package cache

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

// SnapshotCache caches the latest snapshot query. The store stays the source of truth.
type SnapshotCache interface {
	// Get returns the cached snapshot; found is false on a miss.
	Get(ctx context.Context, userID uuid.UUID) (snapshot *domain.MentalHealthScoreSnapshot, found bool, err error)
	// Set stores snapshot unless a snapshot with a later CalculatedAt is cached.
	Set(ctx context.Context, snapshot *domain.MentalHealthScoreSnapshot) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// InsightPublisher announces freshly persisted insights.
type InsightPublisher interface {
	PublishInsights(ctx context.Context, userID uuid.UUID, insights []domain.MentalHealthInsight) error
}

// InsightEvent is the message published for each analytics run that produced insights.
type InsightEvent struct {
	UserID      uuid.UUID                    `json:"user_id"`
	Insights    []domain.MentalHealthInsight `json:"insights"`
	PublishedAt time.Time                    `json:"published_at"`
}

// Noop satisfies both interfaces when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (*domain.MentalHealthScoreSnapshot, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, *domain.MentalHealthScoreSnapshot) error { return nil }

func (Noop) Invalidate(context.Context, uuid.UUID) error { return nil }

func (Noop) PublishInsights(context.Context, uuid.UUID, []domain.MentalHealthInsight) error {
	return nil
}
