package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

const (
	// MinPatternEntries is the minimum number of mood entries for any pattern.
	MinPatternEntries = 7

	// WeeklyCycleMinSpread is the best/worst weekday gap a cycle must exceed.
	WeeklyCycleMinSpread = 0.5
	// TrendWindowEntries is the size of the recent and preceding trend windows.
	TrendWindowEntries = 14
	// TrendMinEntries is the minimum size of each trend window.
	TrendMinEntries = 7
	// TrendMinChange is the mean shift a trend must exceed.
	TrendMinChange = 0.3

	maxConfidence = 0.99
)

// DetectPatterns runs the weekly cycle and trend shift analyses over moods,
// which must be in ascending time order. Weekdays are taken in loc. Each
// analysis emits nothing when it lacks data or finds no signal.
func DetectPatterns(userID uuid.UUID, moods []MoodPoint, now time.Time, loc *time.Location) []domain.MoodPattern {
	var patterns []domain.MoodPattern

	if data, confidence, ok := WeeklyCycle(moods, now, loc); ok {
		if p, err := domain.NewMoodPattern(userID, domain.PatternWeeklyCycle, data, confidence, now); err == nil {
			patterns = append(patterns, p)
		}
	}

	if data, confidence, ok := TrendShift(moods); ok {
		if p, err := domain.NewMoodPattern(userID, domain.PatternMoodTrend, data, confidence, now); err == nil {
			patterns = append(patterns, p)
		}
	}

	return patterns
}

// WeeklyCycle buckets moods from the trailing 90 days by weekday and compares
// the best and worst weekday means. Ties go to the earliest weekday (Sunday first).
func WeeklyCycle(moods []MoodPoint, now time.Time, loc *time.Location) (domain.WeeklyCycleData, float64, bool) {
	if loc == nil {
		loc = time.UTC
	}
	since := now.AddDate(0, 0, -domain.PatternLookbackDays)

	var sums [7]float64
	var counts [7]int
	total := 0
	for _, m := range moods {
		if m.At.Before(since) || m.At.After(now) {
			continue
		}
		day := m.At.In(loc).Weekday()
		sums[day] += m.Value
		counts[day]++
		total++
	}
	if total < MinPatternEntries {
		return domain.WeeklyCycleData{}, 0, false
	}

	dayAverages := make(map[string]float64)
	best, worst := -1, -1
	var bestAvg, worstAvg float64
	for day := 0; day < 7; day++ {
		if counts[day] == 0 {
			continue
		}
		avg := sums[day] / float64(counts[day])
		dayAverages[time.Weekday(day).String()] = round2(avg)
		if best < 0 || avg > bestAvg {
			best, bestAvg = day, avg
		}
		if worst < 0 || avg < worstAvg {
			worst, worstAvg = day, avg
		}
	}

	spread := bestAvg - worstAvg
	if spread <= WeeklyCycleMinSpread {
		return domain.WeeklyCycleData{}, 0, false
	}

	data := domain.WeeklyCycleData{
		BestDay:     time.Weekday(best).String(),
		WorstDay:    time.Weekday(worst).String(),
		BestAvg:     round2(bestAvg),
		WorstAvg:    round2(worstAvg),
		DayAverages: dayAverages,
	}
	return data, math.Min(maxConfidence, spread/4), true
}

// TrendShift compares the mean of the latest 14 moods with up to 14 before them.
// With fewer than 21 moods the history is split into two halves.
func TrendShift(moods []MoodPoint) (domain.MoodTrendData, float64, bool) {
	n := len(moods)
	if n < MinPatternEntries {
		return domain.MoodTrendData{}, 0, false
	}

	// The latest 14 entries against up to 14 before them. Shorter series that
	// cannot fill 14 plus the minimum are split in halves.
	recentLen := TrendWindowEntries
	if n-TrendWindowEntries < TrendMinEntries {
		recentLen = n / 2
	}
	recentStart := n - recentLen
	olderStart := max(0, recentStart-TrendWindowEntries)
	recent := moods[recentStart:]
	older := moods[olderStart:recentStart]
	if len(recent) < TrendMinEntries || len(older) < TrendMinEntries {
		return domain.MoodTrendData{}, 0, false
	}

	recentAvg := mean(pointValues(recent))
	olderAvg := mean(pointValues(older))
	change := recentAvg - olderAvg
	if math.Abs(change) <= TrendMinChange {
		return domain.MoodTrendData{}, 0, false
	}

	trend := domain.TrendImproving
	if change < 0 {
		trend = domain.TrendDeclining
	}
	data := domain.MoodTrendData{
		Trend:     trend,
		Change:    round2(change),
		RecentAvg: round2(recentAvg),
		OlderAvg:  round2(olderAvg),
	}
	return data, math.Min(maxConfidence, math.Abs(change)/2), true
}

func pointValues(points []MoodPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}
