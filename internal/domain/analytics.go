package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultAnalyticsWindowDays is the default lookback for scoring and insights.
	DefaultAnalyticsWindowDays = 30
	// PatternLookbackDays is the lookback used for pattern detection.
	PatternLookbackDays = 90
	// MaxAnalyticsWindowDays bounds caller supplied windows.
	MaxAnalyticsWindowDays = 365
)

// MoodStats summarizes mood values over a window.
// @Description Descriptive mood statistics with derived stress, anxiety and wellbeing levels.
type MoodStats struct {
	Count          int     `json:"count" example:"24"`
	Average        float64 `json:"average" example:"3.4"`
	Variance       float64 `json:"variance" example:"0.8"`
	StressLevel    int     `json:"stress_level" example:"16"`
	AnxietyLevel   int     `json:"anxiety_level" example:"47"`
	WellbeingScore int     `json:"wellbeing_score" example:"68"`
}

// EngagementSummary is the dashboard view of a user's logging behavior.
// @Description Engagement summary over the analytics window.
type EngagementSummary struct {
	WeeklyAverage         float64        `json:"weekly_average" example:"3.6"`
	MonthlyAverage        float64        `json:"monthly_average" example:"3.4"`
	MoodTrend             TrendDirection `json:"mood_trend" example:"stable"`
	MostEffectiveActivity ActivityType   `json:"most_effective_activity" example:"meditation"`
	CurrentStreak         int            `json:"current_streak" example:"5"`
	LongestStreak         int            `json:"longest_streak" example:"12"`
	TotalEntries          int            `json:"total_entries" example:"42"`
	MoodStats             MoodStats      `json:"mood_stats"`
}

// RejectedSession is a game session excluded from a run because its payload was malformed.
type RejectedSession struct {
	SessionID  uuid.UUID  `json:"session_id"`
	GameFamily GameFamily `json:"game_family"`
	Reason     string     `json:"reason"`
}

// AnalyticsRunResult is everything a single analytics run produced and persisted.
// @Description Result of one analytics run.
type AnalyticsRunResult struct {
	UserID       uuid.UUID                 `json:"user_id"`
	WindowDays   int                       `json:"window_days" example:"30"`
	Patterns     []MoodPattern             `json:"patterns"`
	Snapshot     MentalHealthScoreSnapshot `json:"snapshot"`
	Insights     []MentalHealthInsight     `json:"insights"`
	Streak       int                       `json:"streak" example:"4"`
	Rejected     []RejectedSession         `json:"rejected_sessions,omitempty"`
	CalculatedAt time.Time                 `json:"calculated_at"`
}

// StreakResponse is the response for the streak endpoint.
// @Description Current consecutive-day logging streak.
type StreakResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	CurrentStreak int       `json:"current_streak" example:"6"`
	AsOf          string    `json:"as_of" example:"2024-01-15"`
	Timezone      string    `json:"timezone" example:"Europe/Prague"`
}

// PatternListResponse is the response for the latest patterns endpoint.
// @Description Patterns from the most recent detection run.
type PatternListResponse struct {
	Data []MoodPattern `json:"data"`
}

// NarrativeContext is the context object sent to the LLM.
type NarrativeContext struct {
	Summary  EngagementSummary          `json:"summary"`
	Snapshot *MentalHealthScoreSnapshot `json:"snapshot,omitempty"`
	Patterns []MoodPattern              `json:"patterns"`
	Insights []MentalHealthInsight      `json:"insights"`
}

// NarrativeOutput contains the structured output from the LLM.
// @Description LLM-generated wellbeing narrative.
type NarrativeOutput struct {
	Summary      string   `json:"summary" example:"Your mood has been steady this week..."`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// NarrativeResponse is the response for the narrative endpoint.
// @Description Wellbeing narrative over the latest analytics results.
type NarrativeResponse struct {
	Context   NarrativeContext `json:"context"`
	Narrative NarrativeOutput  `json:"narrative"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// NarrativeFeedbackRequest is the request body for rating a narrative.
// @Description User rating of a generated narrative.
type NarrativeFeedbackRequest struct {
	// Trace ID from the narrative response
	TraceID string `json:"trace_id" validate:"required,max=128" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=2000" example:"The summary matched how my week felt"`
}
