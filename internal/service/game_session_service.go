package service

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GameSessionService interface {
	// Create validates the payload for its family before storing it. An invalid
	// payload returns an error wrapping domain.ErrMalformedPayload.
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateGameSessionRequest) (*domain.GameSession, error)
	List(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) (*domain.GameSessionListResponse, error)
}

type gameSessionService struct {
	repo     repository.GameSessionRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewGameSessionService(repo repository.GameSessionRepository, userRepo repository.UserRepository) GameSessionService {
	return &gameSessionService{
		repo:     repo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *gameSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateGameSessionRequest) (*domain.GameSession, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	if _, err := domain.DecodeGamePayload(req.GameFamily, req.Payload); err != nil {
		return nil, err
	}

	completedAt := s.now()
	if req.CompletedAt != nil {
		if req.CompletedAt.After(completedAt) {
			return nil, domain.ErrInvalidInput
		}
		completedAt = req.CompletedAt.UTC()
	}

	session := &domain.GameSession{
		UserID:      userID,
		GameFamily:  req.GameFamily,
		Payload:     datatypes.JSON(req.Payload),
		CompletedAt: completedAt,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *gameSessionService) List(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) (*domain.GameSessionListResponse, error) {
	if family != nil && !family.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	sessions, err := s.repo.List(ctx, userID, family, filter)
	if err != nil {
		return nil, err
	}

	sessions, next := pagination.Page(sessions, filter.Limit, func(g domain.GameSession) (uuid.UUID, time.Time) {
		return g.ID, g.CompletedAt
	})

	response := &domain.GameSessionListResponse{
		Data: make([]domain.GameSessionResponse, len(sessions)),
		Pagination: domain.PaginationResponse{
			NextCursor: next,
			HasMore:    next != "",
		},
	}
	for i := range sessions {
		response.Data[i] = sessions[i].ToResponse()
	}
	return response, nil
}
