package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinMoodValue = 1
	MaxMoodValue = 5

	// LowMoodThreshold is the highest mood value still considered low.
	LowMoodThreshold = 2
)

type MoodEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_entries_user_created" json:"user_id"`
	MoodValue   int       `gorm:"type:smallint;not null" json:"mood_value"`
	JournalText *string   `gorm:"type:text" json:"journal_text,omitempty"`
	CreatedAt   time.Time `gorm:"not null;index:idx_mood_entries_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

func (m *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

// CreateMoodEntryRequest is the request body for logging a mood.
// @Description Request payload for logging a mood entry.
type CreateMoodEntryRequest struct {
	// Mood value from 1 (very low) to 5 (very good)
	MoodValue int `json:"mood_value" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional free-text journal note
	JournalText *string `json:"journal_text,omitempty" validate:"omitempty,max=5000" example:"Went for a long walk"`
	// Optional timestamp for back-filled entries (defaults to now)
	CreatedAt *time.Time `json:"created_at,omitempty" example:"2024-01-15T20:00:00Z"`
}

// UpdateMoodEntryRequest edits the journal text of an existing entry.
// @Description Only the journal text of a mood entry can change.
type UpdateMoodEntryRequest struct {
	JournalText *string `json:"journal_text" validate:"required,max=5000" example:"Updated note"`
}

// MoodEntryResponse is the response body for mood entry endpoints.
// @Description Mood entry record.
type MoodEntryResponse struct {
	ID          uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID      uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	MoodValue   int       `json:"mood_value" example:"4"`
	JournalText *string   `json:"journal_text,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2024-01-15T20:00:00Z"`
}

func (m *MoodEntry) ToResponse() MoodEntryResponse {
	return MoodEntryResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		MoodValue:   m.MoodValue,
		JournalText: m.JournalText,
		CreatedAt:   m.CreatedAt,
	}
}

// MoodEntryListResponse is the response body for listing mood entries.
// @Description Paginated list of mood entries.
type MoodEntryListResponse struct {
	Data       []MoodEntryResponse `json:"data"`
	Pagination PaginationResponse  `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// ListFilter contains filter parameters for listing time-ordered records.
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
