package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatternType names a detected mood regularity.
// @Description Detected mood pattern type.
type PatternType string

const (
	PatternWeeklyCycle PatternType = "weekly_cycle"
	PatternMoodTrend   PatternType = "mood_trend"
)

// TrendDirection is the direction of a mood trend shift.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

type MoodPattern struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_mood_patterns_user_detected" json:"user_id"`
	PatternType     PatternType    `gorm:"type:varchar(32);not null" json:"pattern_type"`
	PatternData     datatypes.JSON `gorm:"not null" json:"pattern_data" swaggertype:"object"`
	ConfidenceScore float64        `gorm:"not null" json:"confidence_score"`
	DetectedAt      time.Time      `gorm:"not null;index:idx_mood_patterns_user_detected,sort:desc" json:"detected_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodPattern) TableName() string {
	return "mood_patterns"
}

func (p *MoodPattern) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// WeeklyCycleData is the pattern_data of a weekly_cycle pattern.
type WeeklyCycleData struct {
	BestDay     string             `json:"best_day" example:"Monday"`
	WorstDay    string             `json:"worst_day" example:"Sunday"`
	BestAvg     float64            `json:"best_avg" example:"4.5"`
	WorstAvg    float64            `json:"worst_avg" example:"2.25"`
	DayAverages map[string]float64 `json:"day_averages"`
}

// MoodTrendData is the pattern_data of a mood_trend pattern.
type MoodTrendData struct {
	Trend     TrendDirection `json:"trend" example:"declining"`
	Change    float64        `json:"change" example:"-1.2"`
	RecentAvg float64        `json:"recent_avg" example:"2.6"`
	OlderAvg  float64        `json:"older_avg" example:"3.8"`
}

// NewMoodPattern builds a pattern row with data marshalled into pattern_data.
func NewMoodPattern(userID uuid.UUID, patternType PatternType, data any, confidence float64, detectedAt time.Time) (MoodPattern, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return MoodPattern{}, err
	}
	return MoodPattern{
		ID:              uuid.New(),
		UserID:          userID,
		PatternType:     patternType,
		PatternData:     datatypes.JSON(raw),
		ConfidenceScore: confidence,
		DetectedAt:      detectedAt,
	}, nil
}

// TrendData decodes pattern_data of a mood_trend pattern.
func (p *MoodPattern) TrendData() (MoodTrendData, bool) {
	var data MoodTrendData
	if p.PatternType != PatternMoodTrend {
		return data, false
	}
	if err := json.Unmarshal(p.PatternData, &data); err != nil {
		return data, false
	}
	return data, true
}

// WeeklyData decodes pattern_data of a weekly_cycle pattern.
func (p *MoodPattern) WeeklyData() (WeeklyCycleData, bool) {
	var data WeeklyCycleData
	if p.PatternType != PatternWeeklyCycle {
		return data, false
	}
	if err := json.Unmarshal(p.PatternData, &data); err != nil {
		return data, false
	}
	return data, true
}
