package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// moodSeries returns one mood per step, starting at start, in ascending order.
func moodSeries(start time.Time, step time.Duration, values ...float64) []MoodPoint {
	points := make([]MoodPoint, len(values))
	for i, v := range values {
		points[i] = MoodPoint{At: start.Add(time.Duration(i) * step), Value: v}
	}
	return points
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func hasDefaulted(s domain.MentalHealthScoreSnapshot, idx domain.ScoreIndex) bool {
	return s.Inputs.IsDefaulted(idx)
}
