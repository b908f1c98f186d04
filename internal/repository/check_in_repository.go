package repository

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckInRepository stores the daily social and energy check-ins.
type CheckInRepository interface {
	CreateSocial(ctx context.Context, checkIn *domain.SocialInteraction) error
	CreateEnergy(ctx context.Context, checkIn *domain.EnergyCheckIn) error
	ListSocialSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.SocialInteraction, error)
	ListEnergySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.EnergyCheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) CreateSocial(ctx context.Context, checkIn *domain.SocialInteraction) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *checkInRepository) CreateEnergy(ctx context.Context, checkIn *domain.EnergyCheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *checkInRepository) ListSocialSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.SocialInteraction, error) {
	var checkIns []domain.SocialInteraction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&checkIns).Error
	return checkIns, err
}

func (r *checkInRepository) ListEnergySince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.EnergyCheckIn, error) {
	var checkIns []domain.EnergyCheckIn
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&checkIns).Error
	return checkIns, err
}
