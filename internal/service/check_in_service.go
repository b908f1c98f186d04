package service

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
)

// CheckInService records the daily social and energy check-ins.
type CheckInService interface {
	CreateSocial(ctx context.Context, userID uuid.UUID, req *domain.CreateSocialCheckInRequest) (*domain.SocialInteraction, error)
	CreateEnergy(ctx context.Context, userID uuid.UUID, req *domain.CreateEnergyCheckInRequest) (*domain.EnergyCheckIn, error)
}

type checkInService struct {
	repo     repository.CheckInRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewCheckInService(repo repository.CheckInRepository, userRepo repository.UserRepository) CheckInService {
	return &checkInService{
		repo:     repo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *checkInService) CreateSocial(ctx context.Context, userID uuid.UUID, req *domain.CreateSocialCheckInRequest) (*domain.SocialInteraction, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	createdAt, err := s.timestamp(req.CreatedAt)
	if err != nil {
		return nil, err
	}

	checkIn := &domain.SocialInteraction{
		UserID:            userID,
		TalkedToSomeone:   req.TalkedToSomeone,
		FeltConnected:     req.FeltConnected,
		ConnectionQuality: req.ConnectionQuality,
		SocialEnergy:      req.SocialEnergy,
		CreatedAt:         createdAt,
	}
	if err := s.repo.CreateSocial(ctx, checkIn); err != nil {
		return nil, err
	}
	return checkIn, nil
}

func (s *checkInService) CreateEnergy(ctx context.Context, userID uuid.UUID, req *domain.CreateEnergyCheckInRequest) (*domain.EnergyCheckIn, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	createdAt, err := s.timestamp(req.CreatedAt)
	if err != nil {
		return nil, err
	}

	checkIn := &domain.EnergyCheckIn{
		UserID:          userID,
		EnergyLevel:     req.EnergyLevel,
		MotivationLevel: req.MotivationLevel,
		FeelingDrained:  req.FeelingDrained,
		FeltMotivated:   req.FeltMotivated,
		CreatedAt:       createdAt,
	}
	if err := s.repo.CreateEnergy(ctx, checkIn); err != nil {
		return nil, err
	}
	return checkIn, nil
}

// timestamp defaults to now and rejects times in the future.
func (s *checkInService) timestamp(at *time.Time) (time.Time, error) {
	now := s.now()
	if at == nil {
		return now, nil
	}
	if at.After(now) {
		return time.Time{}, domain.ErrInvalidInput
	}
	return at.UTC(), nil
}
