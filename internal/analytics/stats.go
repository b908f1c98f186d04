package analytics

import (
	"math"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the population variance.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampScore rounds v and bounds it to [0,100]. NaN maps to the neutral midpoint.
func clampScore(v float64) int {
	if math.IsNaN(v) {
		return NeutralScore
	}
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}

// ComputeMoodStats returns descriptive statistics plus the derived stress,
// anxiety and wellbeing levels.
func ComputeMoodStats(values []float64) domain.MoodStats {
	stats := domain.MoodStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	avg := mean(values)
	v := variance(values)

	stats.Average = round2(avg)
	stats.Variance = round2(v)
	stats.StressLevel = clampScore(math.Min(100, v*20))
	stats.AnxietyLevel = clampScore(math.Min(100, (6-avg)*15+v*10))
	stats.WellbeingScore = clampScore(avg / domain.MaxMoodValue * 100)
	return stats
}
