package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestLowMoodRule(t *testing.T) {
	rule := LowMoodRule{MediumShare: 0.3, HighShare: 0.5}

	tests := []struct {
		name         string
		values       []float64
		wantFire     bool
		wantSeverity domain.Severity
		wantText     string
	}{
		{"majority low", append(repeat(1, 6), repeat(4, 4)...), true, domain.SeverityHigh, "low mood 6 times in the past 30 days. This is 60% of your entries."},
		{"some low", append(repeat(2, 4), repeat(4, 6)...), true, domain.SeverityMedium, "This is 40%"},
		{"at threshold", append(repeat(2, 3), repeat(4, 7)...), false, "", ""},
		{"no entries", nil, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := RuleInput{Now: testNow, Moods: moodSeries(testNow.AddDate(0, 0, -10), 24*time.Hour, tt.values...)}
			finding, fired := rule.Evaluate(in)
			if fired != tt.wantFire {
				t.Fatalf("Evaluate() fired = %v, want %v", fired, tt.wantFire)
			}
			if !fired {
				return
			}
			if finding.Severity != tt.wantSeverity {
				t.Errorf("Severity = %s, want %s", finding.Severity, tt.wantSeverity)
			}
			if !strings.Contains(finding.Text, tt.wantText) {
				t.Errorf("Text = %q, want it to contain %q", finding.Text, tt.wantText)
			}
			if len(finding.Recommendations) != 4 {
				t.Errorf("len(Recommendations) = %d, want 4", len(finding.Recommendations))
			}
		})
	}
}

func TestLowMoodRule_IgnoresOldEntries(t *testing.T) {
	old := moodSeries(testNow.AddDate(0, 0, -60), 24*time.Hour, repeat(1, 10)...)
	recent := moodSeries(testNow.AddDate(0, 0, -5), 24*time.Hour, repeat(4, 5)...)
	in := RuleInput{Now: testNow, Moods: append(old, recent...)}

	if _, fired := (LowMoodRule{MediumShare: 0.3, HighShare: 0.5}).Evaluate(in); fired {
		t.Error("entries older than 30 days must not count")
	}
}

func TestMostEffectiveActivity(t *testing.T) {
	base := testNow.AddDate(0, 0, -5)

	t.Run("pairs moods within the following day", func(t *testing.T) {
		activities := []ActivityPoint{
			{At: base, Type: domain.ActivityMeditation},
			{At: base.AddDate(0, 0, 2), Type: domain.ActivityExercise},
		}
		moods := []MoodPoint{
			{At: base.Add(time.Hour), Value: 5},
			{At: base.Add(2 * time.Hour), Value: 4},
			{At: base.AddDate(0, 0, 2).Add(time.Hour), Value: 3},
			// Exactly 24h after is outside the window.
			{At: base.AddDate(0, 0, 3), Value: 1},
		}
		best, avg, ok := MostEffectiveActivity(activities, moods, 24*time.Hour)
		if !ok || best != domain.ActivityMeditation || !almostEqual(avg, 4.5) {
			t.Errorf("MostEffectiveActivity() = %s, %v, %v; want meditation, 4.5", best, avg, ok)
		}
	})

	t.Run("tie goes to alphabetically first type", func(t *testing.T) {
		activities := []ActivityPoint{
			{At: base, Type: domain.ActivityMeditation},
			{At: base.AddDate(0, 0, 2), Type: domain.ActivityExercise},
		}
		moods := []MoodPoint{
			{At: base.Add(time.Hour), Value: 4},
			{At: base.AddDate(0, 0, 2).Add(time.Hour), Value: 4},
		}
		best, _, _ := MostEffectiveActivity(activities, moods, 24*time.Hour)
		if best != domain.ActivityExercise {
			t.Errorf("best = %s, want exercise", best)
		}
	})

	t.Run("mood before activity does not count", func(t *testing.T) {
		activities := []ActivityPoint{{At: base, Type: domain.ActivityBreathing}}
		moods := []MoodPoint{{At: base.Add(-time.Minute), Value: 5}}
		if _, _, ok := MostEffectiveActivity(activities, moods, 24*time.Hour); ok {
			t.Error("expected no pairing")
		}
	})
}

func TestActivityEffectivenessRule(t *testing.T) {
	base := testNow.AddDate(0, 0, -5)
	rule := ActivityEffectivenessRule{MinMean: 3.5, After: 24 * time.Hour}
	activities := []ActivityPoint{{At: base, Type: domain.ActivityGratitude}}

	high := RuleInput{Now: testNow, Activities: activities, Moods: []MoodPoint{{At: base.Add(time.Hour), Value: 4}}}
	finding, fired := rule.Evaluate(high)
	if !fired {
		t.Fatal("expected rule to fire")
	}
	want := "gratitude seems to have the most positive impact on your mood, with an average mood of 4.0 after engaging in this activity."
	if finding.Text != want {
		t.Errorf("Text = %q, want %q", finding.Text, want)
	}
	if finding.Recommendations[0] != "Try to do gratitude more frequently" {
		t.Errorf("Recommendations[0] = %q", finding.Recommendations[0])
	}

	low := RuleInput{Now: testNow, Activities: activities, Moods: []MoodPoint{{At: base.Add(time.Hour), Value: 3.5}}}
	if _, fired := rule.Evaluate(low); fired {
		t.Error("an average of exactly 3.5 should not fire")
	}
}

func TestActivityEffectivenessRule_IgnoresOldCompletions(t *testing.T) {
	rule := ActivityEffectivenessRule{MinMean: 3.5, After: 24 * time.Hour}
	old := testNow.AddDate(0, 0, -60)

	in := RuleInput{
		Now:        testNow,
		Activities: []ActivityPoint{{At: old, Type: domain.ActivityBreathing}},
		Moods: append(
			[]MoodPoint{{At: old.Add(time.Hour), Value: 5}},
			moodSeries(testNow.AddDate(0, 0, -12), 24*time.Hour, repeat(3, 12)...)...,
		),
	}
	if finding, fired := rule.Evaluate(in); fired {
		t.Errorf("a 60 day old completion should not fire, got %q", finding.Text)
	}

	insights := NewRuleEngine(DefaultRules()...).Evaluate(in)
	for _, insight := range insights {
		if insight.InsightType == domain.InsightActivityRecommendation {
			t.Errorf("unexpected %s insight: %q", insight.InsightType, insight.InsightText)
		}
	}
}

func TestEngagementRule(t *testing.T) {
	rule := EngagementRule{MinEntries: 10}

	few := RuleInput{Now: testNow, Moods: moodSeries(testNow.AddDate(0, 0, -9), 24*time.Hour, repeat(4, 9)...)}
	if _, fired := rule.Evaluate(few); !fired {
		t.Error("9 entries should fire")
	}

	enough := RuleInput{Now: testNow, Moods: moodSeries(testNow.AddDate(0, 0, -10), 24*time.Hour, repeat(4, 10)...)}
	if _, fired := rule.Evaluate(enough); fired {
		t.Error("10 entries should not fire")
	}
}

func trendPattern(t *testing.T, trend domain.TrendDirection, confidence float64) domain.MoodPattern {
	t.Helper()
	p, err := domain.NewMoodPattern(uuid.New(), domain.PatternMoodTrend, domain.MoodTrendData{Trend: trend, RecentAvg: 2.5, OlderAvg: 3.5}, confidence, testNow)
	if err != nil {
		t.Fatalf("NewMoodPattern() error = %v", err)
	}
	return p
}

func TestTrendAlertRule(t *testing.T) {
	rule := TrendAlertRule{MinConfidence: 0.3}

	tests := []struct {
		name     string
		pattern  domain.MoodPattern
		wantFire bool
	}{
		{"confident decline", trendPattern(t, domain.TrendDeclining, 0.5), true},
		{"weak decline", trendPattern(t, domain.TrendDeclining, 0.2), false},
		{"improving", trendPattern(t, domain.TrendImproving, 0.9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding, fired := rule.Evaluate(RuleInput{Now: testNow, Patterns: []domain.MoodPattern{tt.pattern}})
			if fired != tt.wantFire {
				t.Fatalf("Evaluate() fired = %v, want %v", fired, tt.wantFire)
			}
			if fired && finding.Severity != domain.SeverityMedium {
				t.Errorf("Severity = %s, want medium", finding.Severity)
			}
		})
	}
}

func healthySnapshot() domain.MentalHealthScoreSnapshot {
	return domain.MentalHealthScoreSnapshot{
		MoodStabilityIndex:    80,
		StressResilienceScore: 80,
		BurnoutRiskScore:      20,
		SocialConnectionIndex: 80,
		CognitiveFatigueScore: 20,
		OverallWellbeingScore: 80,
		Inputs:                domain.InputAvailability{Defaulted: []domain.ScoreIndex{}},
	}
}

func TestScoreAlertRule(t *testing.T) {
	rule := ScoreAlertRule{HighBurnout: 70}

	t.Run("healthy scores", func(t *testing.T) {
		s := healthySnapshot()
		if _, fired := rule.Evaluate(RuleInput{Snapshot: &s}); fired {
			t.Error("healthy snapshot should not fire")
		}
	})

	t.Run("high burnout", func(t *testing.T) {
		s := healthySnapshot()
		s.BurnoutRiskScore = 75
		finding, fired := rule.Evaluate(RuleInput{Snapshot: &s})
		if !fired {
			t.Fatal("expected rule to fire")
		}
		if finding.Severity != domain.SeverityHigh {
			t.Errorf("Severity = %s, want high", finding.Severity)
		}
		if !strings.Contains(finding.Text, "burnout risk") {
			t.Errorf("Text = %q", finding.Text)
		}
	})

	t.Run("low social connection", func(t *testing.T) {
		s := healthySnapshot()
		s.SocialConnectionIndex = 30
		finding, fired := rule.Evaluate(RuleInput{Snapshot: &s})
		if !fired || finding.Severity != domain.SeverityMedium {
			t.Errorf("fired = %v severity = %s, want medium", fired, finding.Severity)
		}
	})

	t.Run("defaulted indices never fire", func(t *testing.T) {
		s := healthySnapshot()
		s.MoodStabilityIndex = 10
		s.Inputs.Defaulted = []domain.ScoreIndex{domain.IndexMoodStability}
		if _, fired := rule.Evaluate(RuleInput{Snapshot: &s}); fired {
			t.Error("defaulted index should not fire")
		}
	})

	t.Run("no snapshot", func(t *testing.T) {
		if _, fired := rule.Evaluate(RuleInput{}); fired {
			t.Error("expected no finding without a snapshot")
		}
	})
}

func TestRuleEngine_Evaluate(t *testing.T) {
	userID := uuid.New()
	engine := NewRuleEngine(DefaultRules()...)

	// Six low moods out of eight: mood concern (high) plus engagement (low).
	in := RuleInput{
		UserID: userID,
		Now:    testNow,
		Moods:  moodSeries(testNow.AddDate(0, 0, -8), 24*time.Hour, 4, 1, 1, 2, 1, 2, 1, 4),
	}

	insights := engine.Evaluate(in)
	if len(insights) != 2 {
		t.Fatalf("len(insights) = %d, want 2: %+v", len(insights), insights)
	}
	if insights[0].InsightType != domain.InsightMoodConcern || insights[0].Severity != domain.SeverityHigh {
		t.Errorf("insights[0] = %s/%s, want mood_concern/high", insights[0].InsightType, insights[0].Severity)
	}
	if insights[1].InsightType != domain.InsightEngagement {
		t.Errorf("insights[1] = %s, want engagement", insights[1].InsightType)
	}
	for _, ins := range insights {
		if ins.UserID != userID || ins.ID == uuid.Nil || !ins.CreatedAt.Equal(testNow) {
			t.Errorf("insight metadata = %+v", ins)
		}
	}
}

func TestRuleEngine_SeverityOrderIsStable(t *testing.T) {
	s := healthySnapshot()
	s.SocialConnectionIndex = 30
	engine := NewRuleEngine(DefaultRules()...)

	insights := engine.Evaluate(RuleInput{
		Now:      testNow,
		Patterns: []domain.MoodPattern{trendPattern(t, domain.TrendDeclining, 0.6)},
		Snapshot: &s,
	})

	var types []string
	for _, ins := range insights {
		types = append(types, ins.InsightType)
	}
	want := []string{domain.InsightMoodTrendAlert, domain.InsightScoreAlert, domain.InsightEngagement}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", types, want)
	}
}

func TestRuleEngine_NoRules(t *testing.T) {
	if got := NewRuleEngine().Evaluate(RuleInput{Now: testNow}); len(got) != 0 {
		t.Errorf("Evaluate() = %v, want empty", got)
	}
}
