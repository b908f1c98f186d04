package repository

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.WellnessActivityCompletion) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WellnessActivityCompletion, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.WellnessActivityCompletion, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.WellnessActivityCompletion) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WellnessActivityCompletion, error) {
	query := applyListFilter(r.db.WithContext(ctx).Where("user_id = ?", userID), "completed_at", filter)

	var activities []domain.WellnessActivityCompletion
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.WellnessActivityCompletion, error) {
	var activities []domain.WellnessActivityCompletion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ?", userID, since).
		Order("completed_at ASC").
		Find(&activities).Error
	return activities, err
}
