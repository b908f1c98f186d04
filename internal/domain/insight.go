package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Severity ranks how urgent an insight is.
// @Description Insight severity.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities, higher is more urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

const (
	InsightMoodConcern            = "mood_concern"
	InsightActivityRecommendation = "activity_recommendation"
	InsightEngagement             = "engagement"
	InsightMoodTrendAlert         = "mood_trend_alert"
	InsightScoreAlert             = "score_alert"
)

type MentalHealthInsight struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_insights_user_created" json:"user_id"`
	InsightType     string     `gorm:"type:varchar(64);not null" json:"insight_type" example:"mood_concern"`
	InsightText     string     `gorm:"type:text;not null" json:"insight_text"`
	Recommendations []string   `gorm:"type:text;serializer:json" json:"recommendations"`
	Severity        Severity   `gorm:"type:varchar(10);not null" json:"severity" example:"medium"`
	Acknowledged    bool       `gorm:"not null;default:false" json:"acknowledged"`
	AcknowledgedAt  *time.Time `json:"acknowledged_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;index:idx_insights_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MentalHealthInsight) TableName() string {
	return "mental_health_insights"
}

func (i *MentalHealthInsight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// InsightListResponse is the response for listing insights.
// @Description Insights, newest first.
type InsightListResponse struct {
	Data []MentalHealthInsight `json:"data"`
}
