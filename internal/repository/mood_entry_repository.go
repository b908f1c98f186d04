package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry *domain.MoodEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error)
	Update(ctx context.Context, entry *domain.MoodEntry) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.MoodEntry, error)
	// ListSince returns entries created at or after since, oldest first.
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MoodEntry, error)
}

type moodEntryRepository struct {
	db *gorm.DB
}

func NewMoodEntryRepository(db *gorm.DB) MoodEntryRepository {
	return &moodEntryRepository{db: db}
}

func (r *moodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *moodEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *moodEntryRepository) Update(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).
		Model(entry).
		Update("journal_text", entry.JournalText).Error
}

func (r *moodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.MoodEntry, error) {
	query := applyListFilter(r.db.WithContext(ctx).Where("user_id = ?", userID), "created_at", filter)

	var entries []domain.MoodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodEntryRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
