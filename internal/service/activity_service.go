package service

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
)

type ActivityService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateActivityRequest) (*domain.WellnessActivityCompletion, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ActivityListResponse, error)
}

type activityService struct {
	repo     repository.ActivityRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewActivityService(repo repository.ActivityRepository, userRepo repository.UserRepository) ActivityService {
	return &activityService{
		repo:     repo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *activityService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateActivityRequest) (*domain.WellnessActivityCompletion, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}
	// Stress readings only make sense as a pair.
	if (req.StressBefore == nil) != (req.StressAfter == nil) {
		return nil, domain.ErrInvalidInput
	}

	completedAt := s.now()
	if req.CompletedAt != nil {
		if req.CompletedAt.After(completedAt) {
			return nil, domain.ErrInvalidInput
		}
		completedAt = req.CompletedAt.UTC()
	}

	activity := &domain.WellnessActivityCompletion{
		UserID:          userID,
		ActivityType:    req.ActivityType,
		DurationSeconds: req.DurationSeconds,
		StressBefore:    req.StressBefore,
		StressAfter:     req.StressAfter,
		CompletedAt:     completedAt,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ActivityListResponse, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	activities, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	activities, next := pagination.Page(activities, filter.Limit, func(a domain.WellnessActivityCompletion) (uuid.UUID, time.Time) {
		return a.ID, a.CompletedAt
	})

	response := &domain.ActivityListResponse{
		Data: make([]domain.ActivityResponse, len(activities)),
		Pagination: domain.PaginationResponse{
			NextCursor: next,
			HasMore:    next != "",
		},
	}
	for i := range activities {
		response.Data[i] = activities[i].ToResponse()
	}
	return response, nil
}
