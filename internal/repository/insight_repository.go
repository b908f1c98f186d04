package repository

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsightFilter narrows an insight listing.
type InsightFilter struct {
	UnacknowledgedOnly bool
	Limit              int
}

type InsightRepository interface {
	CreateBatch(ctx context.Context, insights []domain.MentalHealthInsight) error
	List(ctx context.Context, userID uuid.UUID, filter InsightFilter) ([]domain.MentalHealthInsight, error)
	// Acknowledge marks the insight read. It reports false when the insight
	// does not exist or belongs to another user.
	Acknowledge(ctx context.Context, userID, insightID uuid.UUID, at time.Time) (bool, error)
}

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) CreateBatch(ctx context.Context, insights []domain.MentalHealthInsight) error {
	if len(insights) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&insights).Error
}

func (r *insightRepository) List(ctx context.Context, userID uuid.UUID, filter InsightFilter) ([]domain.MentalHealthInsight, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if filter.UnacknowledgedOnly {
		query = query.Where("acknowledged = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var insights []domain.MentalHealthInsight
	if err := query.Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (r *insightRepository) Acknowledge(ctx context.Context, userID, insightID uuid.UUID, at time.Time) (bool, error) {
	// The first acknowledgment time is kept on repeat calls.
	result := r.db.WithContext(ctx).
		Model(&domain.MentalHealthInsight{}).
		Where("id = ? AND user_id = ?", insightID, userID).
		Updates(map[string]any{
			"acknowledged":    true,
			"acknowledged_at": gorm.Expr("COALESCE(acknowledged_at, ?)", at),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
