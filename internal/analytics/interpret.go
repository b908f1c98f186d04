package analytics

import "github.com/blaisecz/wellbeing-tracker/internal/domain"

type band struct {
	min         int
	level       string
	description string
}

var interpretationBands = map[domain.ScoreIndex][]band{
	domain.IndexMoodStability: {
		{70, "Excellent", "Your mood is very stable with minimal fluctuations"},
		{50, "Good", "Your mood shows healthy variation with overall stability"},
		{30, "Moderate", "Your mood shows some fluctuation that may benefit from attention"},
		{0, "Needs Attention", "Your mood shows significant fluctuation - consider reaching out for support"},
	},
	domain.IndexStressResilience: {
		{70, "High", "You handle stress very well and recover quickly"},
		{50, "Moderate", "You manage stress reasonably well"},
		{30, "Low", "Stress may be impacting you more than usual"},
		{0, "Very Low", "You may be struggling with stress - consider stress management techniques"},
	},
	domain.IndexBurnoutRisk: {
		{70, "High Risk", "Signs of burnout detected - please prioritize self-care"},
		{50, "Moderate Risk", "Some burnout indicators present - watch your energy levels"},
		{30, "Low Risk", "Minimal burnout signs - maintain healthy habits"},
		{0, "Minimal Risk", "You're managing your energy well"},
	},
	domain.IndexSocialConnection: {
		{70, "Strong", "You have healthy social connections"},
		{50, "Moderate", "Your social connections are adequate"},
		{30, "Limited", "Consider reaching out to friends or loved ones"},
		{0, "Low", "Social connection may need attention - consider connecting with others"},
	},
	domain.IndexCognitiveFatigue: {
		{70, "High", "You may be experiencing significant mental fatigue"},
		{50, "Moderate", "Some mental fatigue detected - consider taking breaks"},
		{30, "Low", "Your cognitive function is good"},
		{0, "Minimal", "You're mentally sharp and focused"},
	},
	domain.IndexOverallWellbeing: {
		{75, "Excellent", "Your overall mental wellbeing is very strong"},
		{60, "Good", "Your mental wellbeing is healthy"},
		{40, "Fair", "Your wellbeing could benefit from some attention"},
		{0, "Needs Support", "Consider reaching out for professional support"},
	},
}

func init() {
	interpretationBands[domain.IndexComposite] = interpretationBands[domain.IndexOverallWellbeing]
}

// InterpretScore returns the band value falls into for idx.
func InterpretScore(idx domain.ScoreIndex, value int) domain.Interpretation {
	for _, b := range interpretationBands[idx] {
		if value >= b.min {
			return domain.Interpretation{Level: b.level, Description: b.description}
		}
	}
	return domain.Interpretation{Level: "Unknown"}
}

// InterpretSnapshot interprets every index of s.
func InterpretSnapshot(s domain.MentalHealthScoreSnapshot) map[domain.ScoreIndex]domain.Interpretation {
	out := make(map[domain.ScoreIndex]domain.Interpretation)
	for idx, value := range s.Indices() {
		out[idx] = InterpretScore(idx, value)
	}
	return out
}

// Concern thresholds for score based recommendations.
const (
	LowScoreThreshold  = 50
	HighScoreThreshold = 50
)

// Recommendations lists the advice for every index past its concern
// threshold, in a fixed order.
func Recommendations(s domain.MentalHealthScoreSnapshot) []string {
	var recs []string
	if s.MoodStabilityIndex < LowScoreThreshold {
		recs = append(recs,
			"Practice daily mood tracking to identify patterns",
			"Consider mindfulness or meditation exercises")
	}
	if s.StressResilienceScore < LowScoreThreshold {
		recs = append(recs,
			"Try breathing exercises when feeling stressed",
			"Build a stress management routine")
	}
	if s.BurnoutRiskScore > HighScoreThreshold {
		recs = append(recs,
			"Prioritize rest and recovery time",
			"Set boundaries around work and personal time",
			"Engage in activities that energize you")
	}
	if s.SocialConnectionIndex < LowScoreThreshold {
		recs = append(recs,
			"Reach out to a friend or family member",
			"Join a community or group activity")
	}
	if s.CognitiveFatigueScore > HighScoreThreshold {
		recs = append(recs,
			"Take regular breaks during focused work",
			"Ensure you're getting adequate sleep",
			"Try cognitive games to maintain mental sharpness")
	}
	if len(recs) == 0 {
		recs = append(recs,
			"Keep up your healthy habits!",
			"Continue monitoring your mental health")
	}
	return recs
}
