package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreIndex names one index of a score snapshot.
type ScoreIndex string

const (
	IndexMoodStability    ScoreIndex = "mood_stability_index"
	IndexStressResilience ScoreIndex = "stress_resilience_score"
	IndexBurnoutRisk      ScoreIndex = "burnout_risk_score"
	IndexSocialConnection ScoreIndex = "social_connection_index"
	IndexCognitiveFatigue ScoreIndex = "cognitive_fatigue_score"
	IndexOverallWellbeing ScoreIndex = "overall_wellbeing_score"
	IndexComposite        ScoreIndex = "composite_score"
)

// SignalAvailability tells whether a signal class fed the snapshot and how many records it had.
type SignalAvailability struct {
	Available bool `json:"available"`
	Samples   int  `json:"samples"`
}

// InputAvailability records which inputs a snapshot was computed from.
// @Description Inputs used by a score snapshot; defaulted lists indices that fell back to 50.
type InputAvailability struct {
	Mood           SignalAvailability `json:"mood"`
	Activity       SignalAvailability `json:"activity"`
	StressGames    SignalAvailability `json:"stress_games"`
	AttentionGames SignalAvailability `json:"attention_games"`
	SocialCheckIns SignalAvailability `json:"social_check_ins"`
	EnergyCheckIns SignalAvailability `json:"energy_check_ins"`
	Defaulted      []ScoreIndex       `json:"defaulted"`
}

// IsDefaulted reports whether idx fell back to the neutral midpoint.
func (in InputAvailability) IsDefaulted(idx ScoreIndex) bool {
	for _, d := range in.Defaulted {
		if d == idx {
			return true
		}
	}
	return false
}

type MentalHealthScoreSnapshot struct {
	ID                    uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID         `gorm:"type:uuid;not null;index:idx_score_snapshots_user_calculated" json:"user_id"`
	MoodStabilityIndex    int               `gorm:"type:smallint;not null" json:"mood_stability_index" example:"72"`
	StressResilienceScore int               `gorm:"type:smallint;not null" json:"stress_resilience_score" example:"65"`
	BurnoutRiskScore      int               `gorm:"type:smallint;not null" json:"burnout_risk_score" example:"38"`
	SocialConnectionIndex int               `gorm:"type:smallint;not null" json:"social_connection_index" example:"58"`
	CognitiveFatigueScore int               `gorm:"type:smallint;not null" json:"cognitive_fatigue_score" example:"45"`
	OverallWellbeingScore int               `gorm:"type:smallint;not null" json:"overall_wellbeing_score" example:"70"`
	CompositeScore        int               `gorm:"type:smallint;not null" json:"composite_score" example:"64"`
	Inputs                InputAvailability `gorm:"type:text;serializer:json" json:"inputs"`
	WindowDays            int               `gorm:"not null" json:"window_days" example:"30"`
	CalculatedAt          time.Time         `gorm:"not null;index:idx_score_snapshots_user_calculated,sort:desc" json:"calculated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MentalHealthScoreSnapshot) TableName() string {
	return "mental_health_scores"
}

func (s *MentalHealthScoreSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Indices returns every index of the snapshot keyed by name.
func (s *MentalHealthScoreSnapshot) Indices() map[ScoreIndex]int {
	return map[ScoreIndex]int{
		IndexMoodStability:    s.MoodStabilityIndex,
		IndexStressResilience: s.StressResilienceScore,
		IndexBurnoutRisk:      s.BurnoutRiskScore,
		IndexSocialConnection: s.SocialConnectionIndex,
		IndexCognitiveFatigue: s.CognitiveFatigueScore,
		IndexOverallWellbeing: s.OverallWellbeingScore,
		IndexComposite:        s.CompositeScore,
	}
}

// Interpretation is the human-readable band a score falls into.
type Interpretation struct {
	Level       string `json:"level" example:"Good"`
	Description string `json:"description" example:"Your mood shows healthy variation with overall stability"`
}

// ScoreReport is the response for the latest score endpoint.
// @Description Latest score snapshot with interpretations and recommendations.
type ScoreReport struct {
	Snapshot        MentalHealthScoreSnapshot     `json:"snapshot"`
	Interpretations map[ScoreIndex]Interpretation `json:"interpretations"`
	Recommendations []string                      `json:"recommendations"`
}

// ScoreHistoryResponse is the response for the score history endpoint.
// @Description Score snapshots in ascending calculation order.
type ScoreHistoryResponse struct {
	Days int                         `json:"days" example:"90"`
	Data []MentalHealthScoreSnapshot `json:"data"`
}
