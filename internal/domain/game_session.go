package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GameFamily identifies a mini-game type and selects its payload shape.
// @Description Mini-game family.
type GameFamily string

const (
	GameAttentionFocus     GameFamily = "attention_focus"
	GameStressResponse     GameFamily = "stress_response"
	GameDecisionMaking     GameFamily = "decision_making"
	GameEmotionRecognition GameFamily = "emotion_recognition"
	GameMemoryMatch        GameFamily = "memory_match"
	GameBreathingBubble    GameFamily = "breathing_bubble"
)

// GameFamilies lists every supported family in a stable order.
var GameFamilies = []GameFamily{
	GameAttentionFocus,
	GameStressResponse,
	GameDecisionMaking,
	GameEmotionRecognition,
	GameMemoryMatch,
	GameBreathingBubble,
}

func (f GameFamily) Valid() bool {
	for _, known := range GameFamilies {
		if f == known {
			return true
		}
	}
	return false
}

// Emotion is one of the fixed categories used by the emotion recognition game.
type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionAngry   Emotion = "angry"
	EmotionNeutral Emotion = "neutral"
	EmotionExcited Emotion = "excited"
	EmotionLove    Emotion = "love"
)

var Emotions = []Emotion{EmotionHappy, EmotionSad, EmotionAngry, EmotionNeutral, EmotionExcited, EmotionLove}

func (e Emotion) Valid() bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

// GamePayload is the family-specific body of a game session.
type GamePayload interface {
	Family() GameFamily
	Validate() error
}

type GameSession struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_game_sessions_user_completed" json:"user_id"`
	GameFamily  GameFamily     `gorm:"type:varchar(32);not null;index" json:"game_family"`
	Payload     datatypes.JSON `gorm:"not null" json:"payload"`
	CompletedAt time.Time      `gorm:"not null;index:idx_game_sessions_user_completed,sort:desc" json:"completed_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

func (g *GameSession) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// DecodePayload decodes and validates the stored payload for the session's family.
func (g *GameSession) DecodePayload() (GamePayload, error) {
	return DecodeGamePayload(g.GameFamily, g.Payload)
}

// DecodeGamePayload dispatches raw JSON to the payload type of family and validates it.
func DecodeGamePayload(family GameFamily, raw []byte) (GamePayload, error) {
	var payload GamePayload
	switch family {
	case GameAttentionFocus:
		payload = &AttentionFocusPayload{}
	case GameStressResponse:
		payload = &StressResponsePayload{}
	case GameDecisionMaking:
		payload = &DecisionMakingPayload{}
	case GameEmotionRecognition:
		payload = &EmotionRecognitionPayload{}
	case GameMemoryMatch, GameBreathingBubble:
		payload = &CasualGamePayload{family: family}
	default:
		return nil, fmt.Errorf("%w: unknown game family %q", ErrMalformedPayload, family)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedPayload)
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return payload, nil
}

// FatigueCurve is the accuracy change between the two halves of a timed task sequence.
type FatigueCurve struct {
	FirstHalfAcc  float64 `json:"first_half_acc" example:"92.5"`
	SecondHalfAcc float64 `json:"second_half_acc" example:"80"`
	Degradation   float64 `json:"degradation" example:"12.5"`
}

type AttentionFocusPayload struct {
	TotalTasks      int          `json:"total_tasks"`
	Errors          int          `json:"errors"`
	ImpulsiveErrors int          `json:"impulsive_errors"`
	AvgResponseMs   float64      `json:"avg_response_ms"`
	FatigueCurve    FatigueCurve `json:"fatigue_curve"`
	// Per-trial correctness in presentation order, when the client sends it.
	Trials []bool `json:"trials,omitempty"`
}

func (*AttentionFocusPayload) Family() GameFamily { return GameAttentionFocus }

func (p *AttentionFocusPayload) Validate() error {
	return firstError(
		checkCount("total_tasks", p.TotalTasks),
		checkCount("errors", p.Errors),
		checkCount("impulsive_errors", p.ImpulsiveErrors),
		checkNonNegative("avg_response_ms", p.AvgResponseMs),
		checkRate("fatigue_curve.first_half_acc", p.FatigueCurve.FirstHalfAcc),
		checkRate("fatigue_curve.second_half_acc", p.FatigueCurve.SecondHalfAcc),
		checkRange("fatigue_curve.degradation", p.FatigueCurve.Degradation, -100, 100),
		checkAtMost("errors", p.Errors, "total_tasks", p.TotalTasks),
		checkAtMost("impulsive_errors", p.ImpulsiveErrors, "errors", p.Errors),
		checkAtMost("trials", len(p.Trials), "total_tasks", p.TotalTasks),
	)
}

type ErrorSpikes struct {
	UnderPressure int `json:"under_pressure"`
	TotalErrors   int `json:"total_errors"`
}

// PressureTask is one stress-game task with the time remaining when it was answered.
type PressureTask struct {
	TimeLeftSeconds float64 `json:"time_left_seconds"`
	Correct         bool    `json:"correct"`
}

type StressResponsePayload struct {
	TotalTasks           int            `json:"total_tasks"`
	DifficultyLevel      int            `json:"difficulty_level"`
	PerformanceScore     float64        `json:"performance_score"`
	ErrorSpikes          ErrorSpikes    `json:"error_spikes"`
	StressToleranceScore *float64       `json:"stress_tolerance_score,omitempty"`
	RecoveryTimeTasks    *int           `json:"recovery_time_tasks,omitempty"`
	Tasks                []PressureTask `json:"tasks,omitempty"`
}

func (*StressResponsePayload) Family() GameFamily { return GameStressResponse }

func (p *StressResponsePayload) Validate() error {
	checks := []error{
		checkCount("total_tasks", p.TotalTasks),
		checkCount("difficulty_level", p.DifficultyLevel),
		checkRate("performance_score", p.PerformanceScore),
		checkCount("error_spikes.under_pressure", p.ErrorSpikes.UnderPressure),
		checkCount("error_spikes.total_errors", p.ErrorSpikes.TotalErrors),
		checkAtMost("error_spikes.under_pressure", p.ErrorSpikes.UnderPressure, "error_spikes.total_errors", p.ErrorSpikes.TotalErrors),
		checkAtMost("error_spikes.total_errors", p.ErrorSpikes.TotalErrors, "total_tasks", p.TotalTasks),
		checkAtMost("tasks", len(p.Tasks), "total_tasks", p.TotalTasks),
	}
	if p.StressToleranceScore != nil {
		checks = append(checks, checkRate("stress_tolerance_score", *p.StressToleranceScore))
	}
	if p.RecoveryTimeTasks != nil {
		checks = append(checks, checkCount("recovery_time_tasks", *p.RecoveryTimeTasks))
	}
	for i, task := range p.Tasks {
		checks = append(checks, checkNonNegative(fmt.Sprintf("tasks[%d].time_left_seconds", i), task.TimeLeftSeconds))
	}
	return firstError(checks...)
}

type RegretBehavior struct {
	TotalRegrets     int     `json:"total_regrets"`
	RegretRate       float64 `json:"regret_rate"`
	ChangedMindCount int     `json:"changed_mind_count"`
}

// DecisionChoice is a single risky or safe pick in the decision game.
type DecisionChoice string

const (
	ChoiceRisky DecisionChoice = "risky"
	ChoiceSafe  DecisionChoice = "safe"
)

type DecisionMakingPayload struct {
	TotalDecisions      int            `json:"total_decisions"`
	RiskyChoices        int            `json:"risky_choices"`
	SafeChoices         int            `json:"safe_choices"`
	RiskPreferenceScore float64        `json:"risk_preference_score"`
	RegretBehavior      RegretBehavior `json:"regret_behavior"`
	DecisionConsistency float64        `json:"decision_consistency"`
	// Ordered choices, when the client sends them.
	Choices []DecisionChoice `json:"choices,omitempty"`
}

func (*DecisionMakingPayload) Family() GameFamily { return GameDecisionMaking }

func (p *DecisionMakingPayload) Validate() error {
	checks := []error{
		checkCount("total_decisions", p.TotalDecisions),
		checkCount("risky_choices", p.RiskyChoices),
		checkCount("safe_choices", p.SafeChoices),
		checkRange("risk_preference_score", p.RiskPreferenceScore, -100, 100),
		checkCount("regret_behavior.total_regrets", p.RegretBehavior.TotalRegrets),
		checkRate("regret_behavior.regret_rate", p.RegretBehavior.RegretRate),
		checkCount("regret_behavior.changed_mind_count", p.RegretBehavior.ChangedMindCount),
		checkRate("decision_consistency", p.DecisionConsistency),
		checkAtMost("risky_choices+safe_choices", p.RiskyChoices+p.SafeChoices, "total_decisions", p.TotalDecisions),
		checkAtMost("choices", len(p.Choices), "total_decisions", p.TotalDecisions),
	}
	for i, c := range p.Choices {
		if c != ChoiceRisky && c != ChoiceSafe {
			checks = append(checks, fmt.Errorf("%w: choices[%d] must be risky or safe", ErrMalformedPayload, i))
		}
	}
	return firstError(checks...)
}

// ConfusionMatrix counts answers by actual emotion (outer key) and selected emotion (inner key).
type ConfusionMatrix map[Emotion]map[Emotion]int

// Total returns the sum of every cell.
func (m ConfusionMatrix) Total() int {
	total := 0
	for _, row := range m {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Correct returns the sum of the diagonal.
func (m ConfusionMatrix) Correct() int {
	correct := 0
	for actual, row := range m {
		correct += row[actual]
	}
	return correct
}

// Selected returns how many answers picked e, right or wrong.
func (m ConfusionMatrix) Selected(e Emotion) int {
	n := 0
	for _, row := range m {
		n += row[e]
	}
	return n
}

type EmotionRecognitionPayload struct {
	TotalQuestions      int                 `json:"total_questions"`
	CorrectAnswers      int                 `json:"correct_answers"`
	AccuracyRate        float64             `json:"accuracy_rate"`
	AvgReactionMs       float64             `json:"avg_reaction_ms"`
	NegativeEmotionBias float64             `json:"negative_emotion_bias"`
	ConfusionMatrix     ConfusionMatrix     `json:"confusion_matrix,omitempty"`
	EmotionBreakdown    map[Emotion]float64 `json:"emotion_breakdown,omitempty"`
}

func (*EmotionRecognitionPayload) Family() GameFamily { return GameEmotionRecognition }

func (p *EmotionRecognitionPayload) Validate() error {
	checks := []error{
		checkCount("total_questions", p.TotalQuestions),
		checkCount("correct_answers", p.CorrectAnswers),
		checkRate("accuracy_rate", p.AccuracyRate),
		checkNonNegative("avg_reaction_ms", p.AvgReactionMs),
		checkRate("negative_emotion_bias", p.NegativeEmotionBias),
		checkAtMost("correct_answers", p.CorrectAnswers, "total_questions", p.TotalQuestions),
	}
	for actual, row := range p.ConfusionMatrix {
		if !actual.Valid() {
			checks = append(checks, fmt.Errorf("%w: unknown emotion %q in confusion_matrix", ErrMalformedPayload, actual))
		}
		for selected, n := range row {
			if !selected.Valid() {
				checks = append(checks, fmt.Errorf("%w: unknown emotion %q in confusion_matrix", ErrMalformedPayload, selected))
			}
			checks = append(checks, checkCount(fmt.Sprintf("confusion_matrix.%s.%s", actual, selected), n))
		}
	}
	if len(p.ConfusionMatrix) > 0 {
		if total := p.ConfusionMatrix.Total(); total != p.TotalQuestions {
			checks = append(checks, fmt.Errorf("%w: confusion_matrix sums to %d, total_questions is %d", ErrMalformedPayload, total, p.TotalQuestions))
		}
		if correct := p.ConfusionMatrix.Correct(); correct != p.CorrectAnswers {
			checks = append(checks, fmt.Errorf("%w: confusion_matrix diagonal is %d, correct_answers is %d", ErrMalformedPayload, correct, p.CorrectAnswers))
		}
	}
	for emotion, acc := range p.EmotionBreakdown {
		if !emotion.Valid() {
			checks = append(checks, fmt.Errorf("%w: unknown emotion %q in emotion_breakdown", ErrMalformedPayload, emotion))
		}
		checks = append(checks, checkRate("emotion_breakdown."+string(emotion), acc))
	}
	return firstError(checks...)
}

// CasualGamePayload is the score-only payload shared by the memory and breathing games.
type CasualGamePayload struct {
	Score           int    `json:"score"`
	DurationSeconds int    `json:"duration_seconds"`
	Difficulty      string `json:"difficulty,omitempty"`

	family GameFamily
}

func (p *CasualGamePayload) Family() GameFamily { return p.family }

func (p *CasualGamePayload) Validate() error {
	checks := []error{
		checkCount("score", p.Score),
		checkCount("duration_seconds", p.DurationSeconds),
	}
	switch p.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		checks = append(checks, fmt.Errorf("%w: difficulty must be easy, medium or hard", ErrMalformedPayload))
	}
	return firstError(checks...)
}

func checkCount(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrMalformedPayload, field)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be >= 0", ErrMalformedPayload, field)
	}
	return nil
}

func checkRate(field string, v float64) error {
	return checkRange(field, v, 0, 100)
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g", ErrMalformedPayload, field, lo, hi)
	}
	return nil
}

func checkAtMost(field string, v int, limitField string, limit int) error {
	if v > limit {
		return fmt.Errorf("%w: %s must not exceed %s", ErrMalformedPayload, field, limitField)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateGameSessionRequest is the request body for recording a finished game.
// @Description Request payload for a finished mini-game session.
type CreateGameSessionRequest struct {
	GameFamily GameFamily `json:"game_family" validate:"required,oneof=attention_focus stress_response decision_making emotion_recognition memory_match breathing_bubble" example:"stress_response"`
	// Family-specific payload
	Payload json.RawMessage `json:"payload" validate:"required" swaggertype:"object"`
	// Completion time (defaults to now)
	CompletedAt *time.Time `json:"completed_at,omitempty" example:"2024-01-15T18:00:00Z"`
}

// GameSessionResponse is the response body for game session endpoints.
// @Description Recorded mini-game session.
type GameSessionResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	GameFamily  GameFamily      `json:"game_family" example:"attention_focus"`
	Payload     json.RawMessage `json:"payload" swaggertype:"object"`
	CompletedAt time.Time       `json:"completed_at"`
}

func (g *GameSession) ToResponse() GameSessionResponse {
	return GameSessionResponse{
		ID:          g.ID,
		UserID:      g.UserID,
		GameFamily:  g.GameFamily,
		Payload:     json.RawMessage(g.Payload),
		CompletedAt: g.CompletedAt,
	}
}

// GameSessionListResponse is the response body for listing game sessions.
// @Description Paginated list of game sessions.
type GameSessionListResponse struct {
	Data       []GameSessionResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}
