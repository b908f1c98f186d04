package analytics

import (
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

// MaxStreakDays bounds how far back the streak walk looks.
const MaxStreakDays = 365

const dateLayout = "2006-01-02"

// Streak counts consecutive local calendar days with at least one mood entry,
// walking back from today. A missing today does not break the streak.
func Streak(moodTimes []time.Time, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	days := localDays(moodTimes, loc)

	today := now.In(loc)
	streak := 0
	for i := 0; i < MaxStreakDays; i++ {
		day := today.AddDate(0, 0, -i).Format(dateLayout)
		if days[day] {
			streak++
			continue
		}
		if i > 0 {
			break
		}
	}
	return streak
}

// LongestStreak is the longest run of consecutive local days with an entry.
func LongestStreak(moodTimes []time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	days := localDays(moodTimes, loc)

	longest := 0
	for day := range days {
		d, err := time.ParseInLocation(dateLayout, day, loc)
		if err != nil {
			continue
		}
		// Only start counting at the first day of a run.
		if days[d.AddDate(0, 0, -1).Format(dateLayout)] {
			continue
		}
		run := 0
		for days[d.AddDate(0, 0, run).Format(dateLayout)] {
			run++
		}
		longest = max(longest, run)
	}
	return longest
}

func localDays(times []time.Time, loc *time.Location) map[string]bool {
	days := make(map[string]bool, len(times))
	for _, t := range times {
		days[t.In(loc).Format(dateLayout)] = true
	}
	return days
}

// SummaryInput feeds Summarize.
type SummaryInput struct {
	Moods      []MoodPoint
	Activities []ActivityPoint
	Patterns   []domain.MoodPattern
	Now        time.Time
	Location   *time.Location
}

// Summarize builds the engagement summary: weekly and monthly mood averages,
// trend, most frequent activity, streaks and mood statistics.
func Summarize(in SummaryInput) domain.EngagementSummary {
	weekAgo := in.Now.AddDate(0, 0, -7)
	monthAgo := in.Now.AddDate(0, 0, -30)

	var weekly, monthly []float64
	times := make([]time.Time, len(in.Moods))
	for i, m := range in.Moods {
		times[i] = m.At
		if !m.At.Before(weekAgo) {
			weekly = append(weekly, m.Value)
		}
		if !m.At.Before(monthAgo) {
			monthly = append(monthly, m.Value)
		}
	}

	summary := domain.EngagementSummary{
		WeeklyAverage:         round1(mean(weekly)),
		MonthlyAverage:        round1(mean(monthly)),
		MoodTrend:             domain.TrendStable,
		MostEffectiveActivity: MostFrequentActivity(in.Activities),
		CurrentStreak:         Streak(times, in.Now, in.Location),
		LongestStreak:         LongestStreak(times, in.Location),
		TotalEntries:          len(in.Moods),
		MoodStats:             ComputeMoodStats(monthly),
	}
	for i := range in.Patterns {
		if data, ok := in.Patterns[i].TrendData(); ok {
			summary.MoodTrend = data.Trend
			break
		}
	}
	return summary
}

// MostFrequentActivity returns the most completed activity type, defaulting
// to meditation. Ties go to the type completed first.
func MostFrequentActivity(activities []ActivityPoint) domain.ActivityType {
	counts := make(map[domain.ActivityType]int)
	var order []domain.ActivityType
	for _, a := range activities {
		if counts[a.Type] == 0 {
			order = append(order, a.Type)
		}
		counts[a.Type]++
	}

	best := domain.ActivityMeditation
	bestCount := 0
	for _, t := range order {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}
