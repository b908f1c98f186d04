package repository

import (
	"context"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatternRepository interface {
	CreateBatch(ctx context.Context, patterns []domain.MoodPattern) error
	// ListLatest returns the patterns of the most recent detection run.
	ListLatest(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error)
}

type patternRepository struct {
	db *gorm.DB
}

func NewPatternRepository(db *gorm.DB) PatternRepository {
	return &patternRepository{db: db}
}

func (r *patternRepository) CreateBatch(ctx context.Context, patterns []domain.MoodPattern) error {
	if len(patterns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&patterns).Error
}

func (r *patternRepository) ListLatest(ctx context.Context, userID uuid.UUID) ([]domain.MoodPattern, error) {
	latest := r.db.Model(&domain.MoodPattern{}).
		Select("MAX(detected_at)").
		Where("user_id = ?", userID)

	var patterns []domain.MoodPattern
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND detected_at = (?)", userID, latest).
		Order("pattern_type ASC").
		Find(&patterns).Error
	return patterns, err
}
