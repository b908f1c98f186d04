package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

// InsightWindow is the lookback the insight rules look at.
const InsightWindow = 30 * 24 * time.Hour

// RuleInput is everything the insight rules may look at.
type RuleInput struct {
	UserID     uuid.UUID
	Now        time.Time
	Moods      []MoodPoint
	Activities []ActivityPoint
	Patterns   []domain.MoodPattern
	Snapshot   *domain.MentalHealthScoreSnapshot
}

func (in RuleInput) recentMoods() []MoodPoint {
	since := in.Now.Add(-InsightWindow)
	var out []MoodPoint
	for _, m := range in.Moods {
		if !m.At.Before(since) && !m.At.After(in.Now) {
			out = append(out, m)
		}
	}
	return out
}

func (in RuleInput) recentActivities() []ActivityPoint {
	since := in.Now.Add(-InsightWindow)
	var out []ActivityPoint
	for _, a := range in.Activities {
		if !a.At.Before(since) && !a.At.After(in.Now) {
			out = append(out, a)
		}
	}
	return out
}

// Finding is the outcome of a rule that fired.
type Finding struct {
	Type            string
	Text            string
	Recommendations []string
	Severity        domain.Severity
}

// Rule is one independent insight rule.
type Rule interface {
	Name() string
	Evaluate(in RuleInput) (Finding, bool)
}

// RuleEngine evaluates rules in order and returns every insight that fired.
type RuleEngine struct {
	rules []Rule
}

func NewRuleEngine(rules ...Rule) *RuleEngine {
	return &RuleEngine{rules: rules}
}

// DefaultRules returns the production rule set in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		LowMoodRule{MediumShare: 0.3, HighShare: 0.5},
		ActivityEffectivenessRule{MinMean: 3.5, After: 24 * time.Hour},
		EngagementRule{MinEntries: 10},
		TrendAlertRule{MinConfidence: 0.3},
		ScoreAlertRule{HighBurnout: 70},
	}
}

// Evaluate runs every rule. Insights are ranked by severity, keeping rule
// order among equal severities.
func (e *RuleEngine) Evaluate(in RuleInput) []domain.MentalHealthInsight {
	insights := []domain.MentalHealthInsight{}
	for _, rule := range e.rules {
		finding, ok := rule.Evaluate(in)
		if !ok {
			continue
		}
		insights = append(insights, domain.MentalHealthInsight{
			ID:              uuid.New(),
			UserID:          in.UserID,
			InsightType:     finding.Type,
			InsightText:     finding.Text,
			Recommendations: finding.Recommendations,
			Severity:        finding.Severity,
			CreatedAt:       in.Now,
		})
	}
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Severity.Rank() > insights[j].Severity.Rank()
	})
	return insights
}

// LowMoodRule fires when too many recent entries are low.
type LowMoodRule struct {
	MediumShare float64
	HighShare   float64
}

func (LowMoodRule) Name() string { return domain.InsightMoodConcern }

func (r LowMoodRule) Evaluate(in RuleInput) (Finding, bool) {
	moods := in.recentMoods()
	if len(moods) == 0 {
		return Finding{}, false
	}
	low := 0
	for _, m := range moods {
		if m.Value <= domain.LowMoodThreshold {
			low++
		}
	}
	share := float64(low) / float64(len(moods))
	if share <= r.MediumShare {
		return Finding{}, false
	}
	severity := domain.SeverityMedium
	if share > r.HighShare {
		severity = domain.SeverityHigh
	}
	return Finding{
		Type:     domain.InsightMoodConcern,
		Text:     fmt.Sprintf("You've experienced low mood %d times in the past 30 days. This is %d%% of your entries.", low, int(math.Round(share*100))),
		Severity: severity,
		Recommendations: []string{
			"Consider talking to a mental health professional",
			"Try daily meditation or breathing exercises",
			"Engage in physical activity for 30 minutes daily",
			"Maintain a consistent sleep schedule",
		},
	}, true
}

// ActivityEffectivenessRule names the activity followed by the best moods.
type ActivityEffectivenessRule struct {
	MinMean float64
	After   time.Duration
}

func (ActivityEffectivenessRule) Name() string { return domain.InsightActivityRecommendation }

func (r ActivityEffectivenessRule) Evaluate(in RuleInput) (Finding, bool) {
	best, bestAvg, ok := MostEffectiveActivity(in.recentActivities(), in.recentMoods(), r.After)
	if !ok || bestAvg <= r.MinMean {
		return Finding{}, false
	}
	return Finding{
		Type:     domain.InsightActivityRecommendation,
		Text:     fmt.Sprintf("%s seems to have the most positive impact on your mood, with an average mood of %.1f after engaging in this activity.", best, bestAvg),
		Severity: domain.SeverityLow,
		Recommendations: []string{
			fmt.Sprintf("Try to do %s more frequently", best),
			"Schedule this activity during times when you typically feel low",
			"Track how you feel before and after this activity",
		},
	}, true
}

// MostEffectiveActivity pairs every mood logged strictly within after of an
// activity with that activity's type and returns the type with the best mean
// mood. Ties go to the alphabetically first type.
func MostEffectiveActivity(activities []ActivityPoint, moods []MoodPoint, after time.Duration) (domain.ActivityType, float64, bool) {
	values := make(map[domain.ActivityType][]float64)
	for _, a := range activities {
		end := a.At.Add(after)
		for _, m := range moods {
			if m.At.After(a.At) && m.At.Before(end) {
				values[a.Type] = append(values[a.Type], m.Value)
			}
		}
	}
	if len(values) == 0 {
		return "", 0, false
	}

	types := make([]domain.ActivityType, 0, len(values))
	for t := range values {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var best domain.ActivityType
	bestAvg := math.Inf(-1)
	for _, t := range types {
		if avg := mean(values[t]); avg > bestAvg {
			best, bestAvg = t, avg
		}
	}
	return best, bestAvg, true
}

// EngagementRule nudges users who log rarely.
type EngagementRule struct {
	MinEntries int
}

func (EngagementRule) Name() string { return domain.InsightEngagement }

func (r EngagementRule) Evaluate(in RuleInput) (Finding, bool) {
	if len(in.recentMoods()) >= r.MinEntries {
		return Finding{}, false
	}
	return Finding{
		Type:     domain.InsightEngagement,
		Text:     "Regular mood tracking helps identify patterns and improve mental health awareness.",
		Severity: domain.SeverityLow,
		Recommendations: []string{
			"Set a daily reminder to log your mood",
			"Try to track your mood at the same time each day",
			"Add journal entries to provide context for your moods",
		},
	}, true
}

// TrendAlertRule fires on a confidently declining mood trend.
type TrendAlertRule struct {
	MinConfidence float64
}

func (TrendAlertRule) Name() string { return domain.InsightMoodTrendAlert }

func (r TrendAlertRule) Evaluate(in RuleInput) (Finding, bool) {
	for i := range in.Patterns {
		p := &in.Patterns[i]
		data, ok := p.TrendData()
		if !ok || data.Trend != domain.TrendDeclining || p.ConfidenceScore < r.MinConfidence {
			continue
		}
		return Finding{
			Type:     domain.InsightMoodTrendAlert,
			Text:     fmt.Sprintf("Your recent mood average of %.1f is down from %.1f in the entries before.", data.RecentAvg, data.OlderAvg),
			Severity: domain.SeverityMedium,
			Recommendations: []string{
				"Notice what has changed in your routine recently",
				"Plan one activity that usually lifts your mood",
				"Reach out to someone you trust",
			},
		}, true
	}
	return Finding{}, false
}

// ScoreAlertRule fires when a computed score index crosses its concern threshold.
type ScoreAlertRule struct {
	HighBurnout int
}

func (ScoreAlertRule) Name() string { return domain.InsightScoreAlert }

func (r ScoreAlertRule) Evaluate(in RuleInput) (Finding, bool) {
	s := in.Snapshot
	if s == nil {
		return Finding{}, false
	}

	computed := func(idx domain.ScoreIndex) bool { return !s.Inputs.IsDefaulted(idx) }
	var concerns []string
	if computed(domain.IndexMoodStability) && s.MoodStabilityIndex < LowScoreThreshold {
		concerns = append(concerns, "mood stability")
	}
	if computed(domain.IndexStressResilience) && s.StressResilienceScore < LowScoreThreshold {
		concerns = append(concerns, "stress resilience")
	}
	if computed(domain.IndexBurnoutRisk) && s.BurnoutRiskScore > HighScoreThreshold {
		concerns = append(concerns, "burnout risk")
	}
	if computed(domain.IndexSocialConnection) && s.SocialConnectionIndex < LowScoreThreshold {
		concerns = append(concerns, "social connection")
	}
	if computed(domain.IndexCognitiveFatigue) && s.CognitiveFatigueScore > HighScoreThreshold {
		concerns = append(concerns, "cognitive fatigue")
	}
	if len(concerns) == 0 {
		return Finding{}, false
	}

	severity := domain.SeverityMedium
	if computed(domain.IndexBurnoutRisk) && s.BurnoutRiskScore >= r.HighBurnout {
		severity = domain.SeverityHigh
	}
	return Finding{
		Type:            domain.InsightScoreAlert,
		Text:            fmt.Sprintf("Your latest scores point to areas that need attention: %s.", strings.Join(concerns, ", ")),
		Severity:        severity,
		Recommendations: Recommendations(*s),
	}, true
}
