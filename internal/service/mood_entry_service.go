package service

import (
	"context"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/blaisecz/wellbeing-tracker/pkg/pagination"
	"github.com/google/uuid"
)

type MoodEntryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error)
	// UpdateJournal replaces the journal text; the mood value never changes.
	UpdateJournal(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodEntryListResponse, error)
}

type moodEntryService struct {
	repo     repository.MoodEntryRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewMoodEntryService(repo repository.MoodEntryRepository, userRepo repository.UserRepository) MoodEntryService {
	return &moodEntryService{
		repo:     repo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *moodEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	createdAt := s.now()
	if req.CreatedAt != nil {
		if req.CreatedAt.After(createdAt) {
			return nil, domain.ErrInvalidInput
		}
		createdAt = req.CreatedAt.UTC()
	}

	entry := &domain.MoodEntry{
		UserID:      userID,
		MoodValue:   req.MoodValue,
		JournalText: req.JournalText,
		CreatedAt:   createdAt,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *moodEntryService) UpdateJournal(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	// Entries of other users are invisible.
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}

	entry.JournalText = req.JournalText
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *moodEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.MoodEntryListResponse, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, next := pagination.Page(entries, filter.Limit, func(e domain.MoodEntry) (uuid.UUID, time.Time) {
		return e.ID, e.CreatedAt
	})

	response := &domain.MoodEntryListResponse{
		Data: make([]domain.MoodEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			NextCursor: next,
			HasMore:    next != "",
		},
	}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}
	return response, nil
}
