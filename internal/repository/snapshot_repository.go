package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotRepository is an append-only log of score snapshots. The latest
// snapshot is always a query over that log.
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *domain.MentalHealthScoreSnapshot) error
	Latest(ctx context.Context, userID uuid.UUID) (*domain.MentalHealthScoreSnapshot, error)
	// History returns snapshots calculated at or after since, oldest first.
	History(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MentalHealthScoreSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *domain.MentalHealthScoreSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *snapshotRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.MentalHealthScoreSnapshot, error) {
	var snapshot domain.MentalHealthScoreSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("calculated_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *snapshotRepository) History(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MentalHealthScoreSnapshot, error) {
	var snapshots []domain.MentalHealthScoreSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND calculated_at >= ?", userID, since).
		Order("calculated_at ASC").
		Find(&snapshots).Error
	return snapshots, err
}
