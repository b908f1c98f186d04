package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

// NeutralScore is the value an index falls back to when its signals are absent.
const NeutralScore = 50

const (
	// maxMoodVariance is the largest possible population variance on the 1-5 scale.
	maxMoodVariance = 4.0
	// maxCheckInLevel is the top of the 1-5 energy and motivation scales.
	maxCheckInLevel = 5.0
)

// Weights are the tunable constants of the scoring model.
type Weights struct {
	// overall_wellbeing_score = avg_mood/5*MoodScale + min(activities, ActivityCap)*ActivityPoints
	WellbeingMoodScale      float64
	WellbeingActivityCap    int
	WellbeingActivityPoints float64

	// social_connection_index components, applied to percentages.
	SocialTalked    float64
	SocialConnected float64
	SocialQuality   float64

	// burnout_risk_score components, renormalized over the available ones.
	BurnoutVolatility  float64
	BurnoutInactivity  float64
	BurnoutFatigue     float64
	BurnoutExhaustion  float64
	BurnoutActivityCap int

	// composite_score components. Burnout and fatigue enter inverted.
	CompositeStability  float64
	CompositeResilience float64
	CompositeBurnout    float64
	CompositeSocial     float64
	CompositeFatigue    float64
}

var DefaultWeights = Weights{
	WellbeingMoodScale:      60,
	WellbeingActivityCap:    20,
	WellbeingActivityPoints: 2,

	SocialTalked:    0.4,
	SocialConnected: 0.3,
	SocialQuality:   0.3,

	BurnoutVolatility:  0.35,
	BurnoutInactivity:  0.25,
	BurnoutFatigue:     0.25,
	BurnoutExhaustion:  0.15,
	BurnoutActivityCap: 20,

	CompositeStability:  0.25,
	CompositeResilience: 0.2,
	CompositeBurnout:    0.25,
	CompositeSocial:     0.15,
	CompositeFatigue:    0.15,
}

// Composer folds telemetry and game features into a score snapshot.
type Composer struct {
	weights Weights
}

func NewComposer(weights Weights) *Composer {
	return &Composer{weights: weights}
}

// Compose computes a snapshot. Every index is clamped to [0,100]; an index
// whose signals are all absent is set to NeutralScore and listed in
// Inputs.Defaulted.
func (c *Composer) Compose(t Telemetry, features []GameFeatures, calculatedAt time.Time, windowDays int) domain.MentalHealthScoreSnapshot {
	w := c.weights
	moods := t.MoodValues()
	activityCount := len(t.Activities)

	var tolerances, degradations []float64
	for _, f := range features {
		if f.Family == domain.GameStressResponse && f.StressTolerance != nil {
			tolerances = append(tolerances, *f.StressTolerance)
		}
		if f.Family == domain.GameAttentionFocus && f.FatigueCurve != nil {
			degradations = append(degradations, f.FatigueCurve.Degradation)
		}
	}

	inputs := domain.InputAvailability{
		Mood:           availability(len(moods)),
		Activity:       availability(activityCount),
		StressGames:    availability(len(tolerances)),
		AttentionGames: availability(len(degradations)),
		SocialCheckIns: availability(len(t.Social)),
		EnergyCheckIns: availability(len(t.Energy)),
		Defaulted:      []domain.ScoreIndex{},
	}
	fallback := func(idx domain.ScoreIndex) int {
		inputs.Defaulted = append(inputs.Defaulted, idx)
		return NeutralScore
	}

	snapshot := domain.MentalHealthScoreSnapshot{
		ID:           uuid.New(),
		UserID:       t.UserID,
		WindowDays:   windowDays,
		CalculatedAt: calculatedAt,
	}

	if len(moods) >= 2 {
		snapshot.MoodStabilityIndex = clampScore(100 * (1 - variance(moods)/maxMoodVariance))
	} else {
		snapshot.MoodStabilityIndex = fallback(domain.IndexMoodStability)
	}

	if len(tolerances) > 0 {
		snapshot.StressResilienceScore = clampScore(mean(tolerances))
	} else {
		snapshot.StressResilienceScore = fallback(domain.IndexStressResilience)
	}

	if len(degradations) > 0 {
		snapshot.CognitiveFatigueScore = clampScore(CognitiveFatigue(degradations))
	} else {
		snapshot.CognitiveFatigueScore = fallback(domain.IndexCognitiveFatigue)
	}

	if social, ok := SocialConnection(t.Social, w); ok {
		snapshot.SocialConnectionIndex = clampScore(social)
	} else {
		snapshot.SocialConnectionIndex = fallback(domain.IndexSocialConnection)
	}

	if burnout, ok := c.burnoutRisk(moods, activityCount, degradations, t.Energy); ok {
		snapshot.BurnoutRiskScore = clampScore(burnout)
	} else {
		snapshot.BurnoutRiskScore = fallback(domain.IndexBurnoutRisk)
	}

	if len(moods) > 0 {
		activities := float64(min(activityCount, w.WellbeingActivityCap))
		snapshot.OverallWellbeingScore = clampScore(mean(moods)/domain.MaxMoodValue*w.WellbeingMoodScale + activities*w.WellbeingActivityPoints)
	} else {
		snapshot.OverallWellbeingScore = fallback(domain.IndexOverallWellbeing)
	}

	snapshot.CompositeScore = clampScore(
		w.CompositeStability*float64(snapshot.MoodStabilityIndex) +
			w.CompositeResilience*float64(snapshot.StressResilienceScore) +
			w.CompositeBurnout*float64(100-snapshot.BurnoutRiskScore) +
			w.CompositeSocial*float64(snapshot.SocialConnectionIndex) +
			w.CompositeFatigue*float64(100-snapshot.CognitiveFatigueScore))

	snapshot.Inputs = inputs
	return snapshot
}

// CognitiveFatigue maps the mean signed degradation (-100..100) onto 0..100,
// where no change is 50.
func CognitiveFatigue(degradations []float64) float64 {
	return 50 + mean(degradations)/2
}

// SocialConnection scores social check-ins. Without any reported connection
// quality the quality weight is spread over the two rates.
func SocialConnection(points []SocialPoint, w Weights) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}

	talked, connected := 0, 0
	var qualities []float64
	for _, p := range points {
		if p.TalkedToSomeone {
			talked++
		}
		if p.FeltConnected {
			connected++
		}
		if p.ConnectionQuality != nil {
			qualities = append(qualities, float64(*p.ConnectionQuality))
		}
	}

	n := float64(len(points))
	talkRate := float64(talked) / n * 100
	connectedRate := float64(connected) / n * 100

	if len(qualities) == 0 {
		total := w.SocialTalked + w.SocialConnected
		if total == 0 {
			return 0, false
		}
		return (talkRate*w.SocialTalked + connectedRate*w.SocialConnected) / total, true
	}
	quality := mean(qualities) * 20
	return talkRate*w.SocialTalked + connectedRate*w.SocialConnected + quality*w.SocialQuality, true
}

func (c *Composer) burnoutRisk(moods []float64, activityCount int, degradations []float64, energy []EnergyPoint) (float64, bool) {
	w := c.weights
	var sum, weight float64
	add := func(value, wt float64) {
		sum += value * wt
		weight += wt
	}

	if len(moods) >= 2 {
		add(math.Min(100, variance(moods)/maxMoodVariance*100), w.BurnoutVolatility)
	}
	if (len(moods) > 0 || activityCount > 0) && w.BurnoutActivityCap > 0 {
		capped := float64(min(activityCount, w.BurnoutActivityCap))
		add(100-capped/float64(w.BurnoutActivityCap)*100, w.BurnoutInactivity)
	}
	if len(degradations) > 0 {
		add(float64(clampScore(CognitiveFatigue(degradations))), w.BurnoutFatigue)
	}
	if len(energy) > 0 {
		add(Exhaustion(energy), w.BurnoutExhaustion)
	}

	if weight == 0 {
		return 0, false
	}
	return sum / weight, true
}

// Exhaustion blends low energy and how often the user reported feeling drained.
func Exhaustion(energy []EnergyPoint) float64 {
	if len(energy) == 0 {
		return 0
	}
	levels := make([]float64, len(energy))
	drained := 0
	for i, e := range energy {
		levels[i] = float64(e.Energy)
		if e.FeelingDrained {
			drained++
		}
	}
	lowEnergy := (maxCheckInLevel - mean(levels)) / (maxCheckInLevel - 1) * 100
	drainedRate := float64(drained) / float64(len(energy)) * 100
	return (lowEnergy + drainedRate) / 2
}

func availability(samples int) domain.SignalAvailability {
	return domain.SignalAvailability{Available: samples > 0, Samples: samples}
}
