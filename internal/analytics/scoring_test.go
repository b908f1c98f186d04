package analytics

import (
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestCompose_NoData(t *testing.T) {
	userID := uuid.New()
	s := NewComposer(DefaultWeights).Compose(Telemetry{UserID: userID}, nil, testNow, 30)

	for idx, value := range s.Indices() {
		if value != NeutralScore {
			t.Errorf("%s = %d, want %d", idx, value, NeutralScore)
		}
	}
	if len(s.Inputs.Defaulted) != 6 {
		t.Errorf("Defaulted = %v, want every index except composite", s.Inputs.Defaulted)
	}
	if s.Inputs.IsDefaulted(domain.IndexComposite) {
		t.Error("composite score is always computed")
	}
	if s.UserID != userID || s.WindowDays != 30 || !s.CalculatedAt.Equal(testNow) {
		t.Errorf("snapshot metadata = %+v", s)
	}
}

func TestCompose_MoodOnly(t *testing.T) {
	tel := Telemetry{Moods: moodSeries(testNow.AddDate(0, 0, -3), 24*time.Hour, 5, 5, 5)}
	s := NewComposer(DefaultWeights).Compose(tel, nil, testNow, 30)

	if s.MoodStabilityIndex != 100 {
		t.Errorf("MoodStabilityIndex = %d, want 100", s.MoodStabilityIndex)
	}
	if s.OverallWellbeingScore != 60 {
		t.Errorf("OverallWellbeingScore = %d, want 60", s.OverallWellbeingScore)
	}
	// No volatility, full inactivity: (0*0.35 + 100*0.25) / 0.6.
	if s.BurnoutRiskScore != 42 {
		t.Errorf("BurnoutRiskScore = %d, want 42", s.BurnoutRiskScore)
	}
	if hasDefaulted(s, domain.IndexMoodStability) || hasDefaulted(s, domain.IndexBurnoutRisk) {
		t.Errorf("Defaulted = %v, mood driven indices should be computed", s.Inputs.Defaulted)
	}
	if !hasDefaulted(s, domain.IndexStressResilience) || !hasDefaulted(s, domain.IndexSocialConnection) {
		t.Errorf("Defaulted = %v, want resilience and social defaulted", s.Inputs.Defaulted)
	}
	if !s.Inputs.Mood.Available || s.Inputs.Mood.Samples != 3 || s.Inputs.Activity.Available {
		t.Errorf("Inputs = %+v", s.Inputs)
	}
}

func TestCompose_SingleMoodDefaultsStability(t *testing.T) {
	tel := Telemetry{Moods: moodSeries(testNow, time.Hour, 4)}
	s := NewComposer(DefaultWeights).Compose(tel, nil, testNow, 30)

	if !hasDefaulted(s, domain.IndexMoodStability) || s.MoodStabilityIndex != NeutralScore {
		t.Errorf("MoodStabilityIndex = %d, want defaulted %d", s.MoodStabilityIndex, NeutralScore)
	}
	if hasDefaulted(s, domain.IndexOverallWellbeing) {
		t.Error("wellbeing needs only one mood")
	}
}

func TestCompose_MaximalVolatility(t *testing.T) {
	tel := Telemetry{Moods: moodSeries(testNow.AddDate(0, 0, -2), 24*time.Hour, 1, 5)}
	s := NewComposer(DefaultWeights).Compose(tel, nil, testNow, 30)
	if s.MoodStabilityIndex != 0 {
		t.Errorf("MoodStabilityIndex = %d, want 0", s.MoodStabilityIndex)
	}
}

func TestCompose_GameFeatures(t *testing.T) {
	features := []GameFeatures{
		{Family: domain.GameStressResponse, StressTolerance: floatPtr(80)},
		{Family: domain.GameStressResponse, StressTolerance: floatPtr(60)},
		{Family: domain.GameAttentionFocus, FatigueCurve: &domain.FatigueCurve{Degradation: 20}},
		{Family: domain.GameDecisionMaking, RiskPreference: floatPtr(40)},
	}
	s := NewComposer(DefaultWeights).Compose(Telemetry{}, features, testNow, 30)

	if s.StressResilienceScore != 70 {
		t.Errorf("StressResilienceScore = %d, want 70", s.StressResilienceScore)
	}
	if s.CognitiveFatigueScore != 60 {
		t.Errorf("CognitiveFatigueScore = %d, want 60", s.CognitiveFatigueScore)
	}
	// Only the fatigue component is available.
	if s.BurnoutRiskScore != 60 {
		t.Errorf("BurnoutRiskScore = %d, want 60", s.BurnoutRiskScore)
	}
	if s.Inputs.StressGames.Samples != 2 || s.Inputs.AttentionGames.Samples != 1 {
		t.Errorf("Inputs = %+v", s.Inputs)
	}
}

func TestCompose_ActivityCap(t *testing.T) {
	activities := make([]ActivityPoint, 25)
	for i := range activities {
		activities[i] = ActivityPoint{At: testNow.Add(-time.Duration(i) * time.Hour), Type: domain.ActivityMeditation}
	}
	tel := Telemetry{
		Moods:      moodSeries(testNow.Add(-time.Hour), time.Minute, 5),
		Activities: activities,
	}
	s := NewComposer(DefaultWeights).Compose(tel, nil, testNow, 30)

	if s.OverallWellbeingScore != 100 {
		t.Errorf("OverallWellbeingScore = %d, want 100", s.OverallWellbeingScore)
	}
}

func TestCompose_ScoresStayInRange(t *testing.T) {
	extreme := []GameFeatures{
		{Family: domain.GameStressResponse, StressTolerance: floatPtr(100)},
		{Family: domain.GameAttentionFocus, FatigueCurve: &domain.FatigueCurve{Degradation: -100}},
		{Family: domain.GameAttentionFocus, FatigueCurve: &domain.FatigueCurve{Degradation: -100}},
	}
	social := []SocialPoint{
		{TalkedToSomeone: true, FeltConnected: true, ConnectionQuality: intPtr(5)},
	}
	energy := []EnergyPoint{{Energy: 1, FeelingDrained: true}}

	for _, values := range [][]float64{{1}, {1, 1, 1}, {5, 1, 5, 1}, repeat(5, 40)} {
		tel := Telemetry{Moods: moodSeries(testNow.AddDate(0, 0, -1), time.Minute, values...), Social: social, Energy: energy}
		s := NewComposer(DefaultWeights).Compose(tel, extreme, testNow, 30)
		for idx, value := range s.Indices() {
			if value < 0 || value > 100 {
				t.Errorf("moods %v: %s = %d out of range", values, idx, value)
			}
		}
	}
}

func TestSocialConnection(t *testing.T) {
	tests := []struct {
		name   string
		points []SocialPoint
		want   float64
		wantOK bool
	}{
		{
			name: "without quality",
			points: []SocialPoint{
				{TalkedToSomeone: true, FeltConnected: true},
				{TalkedToSomeone: false, FeltConnected: true},
			},
			want:   (50*0.4 + 100*0.3) / 0.7,
			wantOK: true,
		},
		{
			name: "with quality",
			points: []SocialPoint{
				{TalkedToSomeone: true, FeltConnected: true, ConnectionQuality: intPtr(5)},
				{TalkedToSomeone: false, FeltConnected: true, ConnectionQuality: intPtr(5)},
			},
			want:   80,
			wantOK: true,
		},
		{
			name:   "no check-ins",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SocialConnection(tt.points, DefaultWeights)
			if ok != tt.wantOK {
				t.Fatalf("SocialConnection() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !almostEqual(got, tt.want) {
				t.Errorf("SocialConnection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExhaustion(t *testing.T) {
	tests := []struct {
		name   string
		energy []EnergyPoint
		want   float64
	}{
		{"drained and empty", []EnergyPoint{{Energy: 1, FeelingDrained: true}}, 100},
		{"full energy", []EnergyPoint{{Energy: 5}}, 0},
		{"mixed", []EnergyPoint{{Energy: 3, FeelingDrained: true}, {Energy: 3}}, 50},
		{"none", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exhaustion(tt.energy); !almostEqual(got, tt.want) {
				t.Errorf("Exhaustion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCognitiveFatigue(t *testing.T) {
	if got := CognitiveFatigue([]float64{0}); got != 50 {
		t.Errorf("CognitiveFatigue(0) = %v, want 50", got)
	}
	if got := CognitiveFatigue([]float64{100, 60}); got != 90 {
		t.Errorf("CognitiveFatigue(100, 60) = %v, want 90", got)
	}
}
