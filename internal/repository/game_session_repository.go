package repository

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameSessionRepository interface {
	Create(ctx context.Context, session *domain.GameSession) error
	List(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) ([]domain.GameSession, error)
	// ListSince returns sessions completed at or after since, oldest first,
	// optionally restricted to one family.
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time, family *domain.GameFamily) ([]domain.GameSession, error)
}

type gameSessionRepository struct {
	db *gorm.DB
}

func NewGameSessionRepository(db *gorm.DB) GameSessionRepository {
	return &gameSessionRepository{db: db}
}

func (r *gameSessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *gameSessionRepository) List(ctx context.Context, userID uuid.UUID, family *domain.GameFamily, filter domain.ListFilter) ([]domain.GameSession, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if family != nil {
		query = query.Where("game_family = ?", *family)
	}
	query = applyListFilter(query, "completed_at", filter)

	var sessions []domain.GameSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *gameSessionRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time, family *domain.GameFamily) ([]domain.GameSession, error) {
	query := r.db.WithContext(ctx).Where("user_id = ? AND completed_at >= ?", userID, since)
	if family != nil {
		query = query.Where("game_family = ?", *family)
	}

	var sessions []domain.GameSession
	err := query.Order("completed_at ASC").Find(&sessions).Error
	return sessions, err
}
