package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

// PressureThresholdSeconds is the time left below which a stress task counts as under pressure.
const PressureThresholdSeconds = 10

// GameFeatures are the secondary statistics derived from one game session.
// Nil fields were not measurable for the session's family or payload.
type GameFeatures struct {
	SessionID uuid.UUID
	Family    domain.GameFamily
	At        time.Time

	Accuracy        *float64
	AvgReactionMs   *float64
	ImpulsivityRate *float64
	FatigueCurve    *domain.FatigueCurve

	PerformanceScore  *float64
	StressTolerance   *float64
	RecoveryTimeTasks *int

	RiskPreference      *float64
	RegretRate          *float64
	DecisionConsistency *float64

	NegativeEmotionBias *float64
	EmotionBreakdown    map[domain.Emotion]float64

	Score           *float64
	DurationSeconds *int
}

// Vector flattens the measured features in a fixed order.
func (f GameFeatures) Vector() []float64 {
	var v []float64
	for _, p := range []*float64{
		f.Accuracy, f.AvgReactionMs, f.ImpulsivityRate,
		f.PerformanceScore, f.StressTolerance,
		f.RiskPreference, f.RegretRate, f.DecisionConsistency,
		f.NegativeEmotionBias, f.Score,
	} {
		if p != nil {
			v = append(v, *p)
		}
	}
	if f.FatigueCurve != nil {
		v = append(v, f.FatigueCurve.Degradation)
	}
	if f.RecoveryTimeTasks != nil {
		v = append(v, float64(*f.RecoveryTimeTasks))
	}
	if f.DurationSeconds != nil {
		v = append(v, float64(*f.DurationSeconds))
	}
	return v
}

// ExtractFeatures derives the family-specific features of a session. It
// returns false when the session has no trials to derive anything from.
func ExtractFeatures(g GamePoint) (GameFeatures, bool) {
	f := GameFeatures{SessionID: g.SessionID, Family: g.Family, At: g.At}

	switch p := g.Payload.(type) {
	case *domain.AttentionFocusPayload:
		if p.TotalTasks == 0 {
			return f, false
		}
		f.Accuracy = ptr(float64(p.TotalTasks-p.Errors) / float64(p.TotalTasks) * 100)
		f.AvgReactionMs = ptr(p.AvgResponseMs)
		f.ImpulsivityRate = ptr(float64(p.ImpulsiveErrors) / float64(p.TotalTasks) * 100)
		curve := p.FatigueCurve
		if derived, ok := FatigueCurveFromTrials(p.Trials); ok {
			curve = derived
		}
		f.FatigueCurve = &curve

	case *domain.StressResponsePayload:
		if p.TotalTasks == 0 {
			return f, false
		}
		f.PerformanceScore = ptr(p.PerformanceScore)
		switch {
		case p.StressToleranceScore != nil:
			f.StressTolerance = ptr(*p.StressToleranceScore)
		case len(p.Tasks) > 0:
			f.StressTolerance = ptr(StressToleranceFromTasks(p.Tasks))
		}
		switch {
		case len(p.Tasks) > 0:
			f.RecoveryTimeTasks = ptr(RecoveryTime(p.Tasks))
		case p.RecoveryTimeTasks != nil:
			f.RecoveryTimeTasks = ptr(*p.RecoveryTimeTasks)
		}

	case *domain.DecisionMakingPayload:
		if p.TotalDecisions == 0 {
			return f, false
		}
		f.RiskPreference = ptr(p.RiskPreferenceScore)
		if p.RiskyChoices > 0 {
			f.RegretRate = ptr(math.Min(100, float64(p.RegretBehavior.TotalRegrets)/float64(p.RiskyChoices)*100))
		}
		if consistency, ok := DecisionConsistency(p.Choices); ok {
			f.DecisionConsistency = ptr(consistency)
		} else {
			f.DecisionConsistency = ptr(p.DecisionConsistency)
		}

	case *domain.EmotionRecognitionPayload:
		if p.TotalQuestions == 0 {
			return f, false
		}
		f.Accuracy = ptr(float64(p.CorrectAnswers) / float64(p.TotalQuestions) * 100)
		f.AvgReactionMs = ptr(p.AvgReactionMs)
		f.NegativeEmotionBias = ptr(p.NegativeEmotionBias)
		f.EmotionBreakdown = p.EmotionBreakdown
		if len(p.ConfusionMatrix) > 0 {
			if bias, ok := NegativeEmotionBias(p.ConfusionMatrix, p.TotalQuestions); ok {
				f.NegativeEmotionBias = ptr(bias)
			}
			f.EmotionBreakdown = EmotionBreakdown(p.ConfusionMatrix)
		}

	case *domain.CasualGamePayload:
		if p.DurationSeconds == 0 {
			return f, false
		}
		f.Score = ptr(float64(p.Score))
		f.DurationSeconds = ptr(p.DurationSeconds)

	default:
		return f, false
	}

	return f, true
}

// ExtractAll extracts features from every session with enough data.
func ExtractAll(games []GamePoint) []GameFeatures {
	var out []GameFeatures
	for _, g := range games {
		if f, ok := ExtractFeatures(g); ok {
			out = append(out, f)
		}
	}
	return out
}

// FatigueDegradation is the signed accuracy drop from the first to the second half.
func FatigueDegradation(firstHalfAcc, secondHalfAcc float64) float64 {
	return firstHalfAcc - secondHalfAcc
}

// FatigueCurveFromTrials splits trials at the midpoint and compares half accuracies.
func FatigueCurveFromTrials(trials []bool) (domain.FatigueCurve, bool) {
	mid := len(trials) / 2
	if mid == 0 {
		return domain.FatigueCurve{}, false
	}
	first := accuracy(trials[:mid])
	second := accuracy(trials[mid:])
	return domain.FatigueCurve{
		FirstHalfAcc:  round2(first),
		SecondHalfAcc: round2(second),
		Degradation:   round2(FatigueDegradation(first, second)),
	}, true
}

// RecoveryTime counts the tasks in the first run answered under pressure,
// up to the first task answered with time to spare again. A run that never
// ends, or no run at all, yields 0.
func RecoveryTime(tasks []domain.PressureTask) int {
	start := -1
	for i, task := range tasks {
		underPressure := task.TimeLeftSeconds < PressureThresholdSeconds
		if start < 0 {
			if underPressure {
				start = i
			}
			continue
		}
		if !underPressure {
			return i - start
		}
	}
	return 0
}

// StressToleranceFromTasks is the accuracy on tasks answered under pressure,
// or 100 when nothing was answered under pressure.
func StressToleranceFromTasks(tasks []domain.PressureTask) float64 {
	total, correct := 0, 0
	for _, task := range tasks {
		if task.TimeLeftSeconds >= PressureThresholdSeconds {
			continue
		}
		total++
		if task.Correct {
			correct++
		}
	}
	if total == 0 {
		return 100
	}
	return round2(float64(correct) / float64(total) * 100)
}

// DecisionConsistency compares the risky-choice rate of both halves of the session.
func DecisionConsistency(choices []domain.DecisionChoice) (float64, bool) {
	mid := len(choices) / 2
	if mid == 0 {
		return 0, false
	}
	first := riskRate(choices[:mid])
	second := riskRate(choices[mid:])
	return round2(100 - math.Abs(first-second)*100), true
}

// NegativeEmotionBias is the share of answers, right or wrong, that selected
// sad or angry.
func NegativeEmotionBias(matrix domain.ConfusionMatrix, totalQuestions int) (float64, bool) {
	if totalQuestions <= 0 {
		return 0, false
	}
	negative := matrix.Selected(domain.EmotionSad) + matrix.Selected(domain.EmotionAngry)
	return round2(float64(negative) / float64(totalQuestions) * 100), true
}

// EmotionBreakdown is per-emotion recognition accuracy from the confusion matrix.
func EmotionBreakdown(matrix domain.ConfusionMatrix) map[domain.Emotion]float64 {
	out := make(map[domain.Emotion]float64)
	for _, actual := range domain.Emotions {
		row, ok := matrix[actual]
		if !ok {
			continue
		}
		total := 0
		for _, n := range row {
			total += n
		}
		if total == 0 {
			continue
		}
		out[actual] = round2(float64(row[actual]) / float64(total) * 100)
	}
	return out
}

func accuracy(trials []bool) float64 {
	if len(trials) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range trials {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(trials)) * 100
}

func riskRate(choices []domain.DecisionChoice) float64 {
	if len(choices) == 0 {
		return 0
	}
	risky := 0
	for _, c := range choices {
		if c == domain.ChoiceRisky {
			risky++
		}
	}
	return float64(risky) / float64(len(choices))
}

func ptr[T any](v T) *T {
	return &v
}
