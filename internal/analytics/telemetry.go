// Package analytics is the behavioral analytics and scoring engine. Every
// function here is pure: records are fetched and results persisted by the
// service layer.
package analytics

import (
	"sort"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
)

// RawRecords are the per-source records fetched for one user.
type RawRecords struct {
	Moods      []domain.MoodEntry
	Activities []domain.WellnessActivityCompletion
	Games      []domain.GameSession
	Social     []domain.SocialInteraction
	Energy     []domain.EnergyCheckIn
}

type MoodPoint struct {
	At      time.Time
	Value   float64
	Journal *string
}

func (p MoodPoint) Features() []float64 {
	hasJournal := 0.0
	if p.Journal != nil && *p.Journal != "" {
		hasJournal = 1
	}
	return []float64{p.Value, hasJournal}
}

type ActivityPoint struct {
	At              time.Time
	Type            domain.ActivityType
	DurationSeconds int
	// RecoverySpeed is nil when stress readings were not captured.
	RecoverySpeed *float64
}

func (p ActivityPoint) Features() []float64 {
	v := []float64{float64(p.DurationSeconds)}
	if p.RecoverySpeed != nil {
		v = append(v, *p.RecoverySpeed)
	}
	return v
}

type GamePoint struct {
	SessionID uuid.UUID
	At        time.Time
	Family    domain.GameFamily
	Payload   domain.GamePayload
}

// Features returns the extracted feature vector, or nil when the session has
// too little data.
func (p GamePoint) Features() []float64 {
	f, ok := ExtractFeatures(p)
	if !ok {
		return nil
	}
	return f.Vector()
}

type SocialPoint struct {
	At                time.Time
	TalkedToSomeone   bool
	FeltConnected     bool
	ConnectionQuality *int
	SocialEnergy      *domain.SocialEnergy
}

func (p SocialPoint) Features() []float64 {
	v := []float64{boolFloat(p.TalkedToSomeone), boolFloat(p.FeltConnected)}
	if p.ConnectionQuality != nil {
		v = append(v, float64(*p.ConnectionQuality))
	}
	return v
}

type EnergyPoint struct {
	At             time.Time
	Energy         int
	Motivation     int
	FeelingDrained bool
	FeltMotivated  bool
}

func (p EnergyPoint) Features() []float64 {
	return []float64{float64(p.Energy), float64(p.Motivation), boolFloat(p.FeelingDrained), boolFloat(p.FeltMotivated)}
}

// Telemetry is the normalized, time-ascending view of one user's records in a window.
type Telemetry struct {
	UserID      uuid.UUID
	WindowStart time.Time
	WindowEnd   time.Time

	Moods      []MoodPoint
	Activities []ActivityPoint
	Games      []GamePoint
	Social     []SocialPoint
	Energy     []EnergyPoint

	// Rejected lists game sessions dropped because their payload was malformed.
	Rejected []domain.RejectedSession
}

// MoodValues returns mood values in time order.
func (t Telemetry) MoodValues() []float64 {
	values := make([]float64, len(t.Moods))
	for i, m := range t.Moods {
		values[i] = m.Value
	}
	return values
}

// Since returns a copy restricted to records at or after start.
func (t Telemetry) Since(start time.Time) Telemetry {
	out := t
	out.WindowStart = start
	out.Moods = filterSince(t.Moods, start, func(p MoodPoint) time.Time { return p.At })
	out.Activities = filterSince(t.Activities, start, func(p ActivityPoint) time.Time { return p.At })
	out.Games = filterSince(t.Games, start, func(p GamePoint) time.Time { return p.At })
	out.Social = filterSince(t.Social, start, func(p SocialPoint) time.Time { return p.At })
	out.Energy = filterSince(t.Energy, start, func(p EnergyPoint) time.Time { return p.At })
	return out
}

// Normalize converts raw records into Telemetry. Records belonging to another
// user or falling outside [windowStart, windowEnd] are dropped. A zero
// windowEnd means no upper bound.
func Normalize(userID uuid.UUID, windowStart, windowEnd time.Time, raw RawRecords) Telemetry {
	inWindow := func(at time.Time) bool {
		if at.Before(windowStart) {
			return false
		}
		return windowEnd.IsZero() || !at.After(windowEnd)
	}

	t := Telemetry{
		UserID:      userID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}

	for _, m := range raw.Moods {
		if m.UserID != userID || !inWindow(m.CreatedAt) {
			continue
		}
		t.Moods = append(t.Moods, MoodPoint{At: m.CreatedAt, Value: float64(m.MoodValue), Journal: m.JournalText})
	}

	for i := range raw.Activities {
		a := &raw.Activities[i]
		if a.UserID != userID || !inWindow(a.CompletedAt) {
			continue
		}
		point := ActivityPoint{At: a.CompletedAt, Type: a.ActivityType, DurationSeconds: a.DurationSeconds}
		if speed, ok := a.RecoverySpeed(); ok {
			point.RecoverySpeed = &speed
		}
		t.Activities = append(t.Activities, point)
	}

	for i := range raw.Games {
		g := &raw.Games[i]
		if g.UserID != userID || !inWindow(g.CompletedAt) {
			continue
		}
		payload, err := g.DecodePayload()
		if err != nil {
			t.Rejected = append(t.Rejected, domain.RejectedSession{
				SessionID:  g.ID,
				GameFamily: g.GameFamily,
				Reason:     err.Error(),
			})
			continue
		}
		t.Games = append(t.Games, GamePoint{SessionID: g.ID, At: g.CompletedAt, Family: g.GameFamily, Payload: payload})
	}

	for _, s := range raw.Social {
		if s.UserID != userID || !inWindow(s.CreatedAt) {
			continue
		}
		t.Social = append(t.Social, SocialPoint{
			At:                s.CreatedAt,
			TalkedToSomeone:   s.TalkedToSomeone,
			FeltConnected:     s.FeltConnected,
			ConnectionQuality: s.ConnectionQuality,
			SocialEnergy:      s.SocialEnergy,
		})
	}

	for _, e := range raw.Energy {
		if e.UserID != userID || !inWindow(e.CreatedAt) {
			continue
		}
		t.Energy = append(t.Energy, EnergyPoint{
			At:             e.CreatedAt,
			Energy:         e.EnergyLevel,
			Motivation:     e.MotivationLevel,
			FeelingDrained: e.FeelingDrained,
			FeltMotivated:  e.FeltMotivated,
		})
	}

	sort.SliceStable(t.Moods, func(i, j int) bool { return t.Moods[i].At.Before(t.Moods[j].At) })
	sort.SliceStable(t.Activities, func(i, j int) bool { return t.Activities[i].At.Before(t.Activities[j].At) })
	sort.SliceStable(t.Games, func(i, j int) bool { return t.Games[i].At.Before(t.Games[j].At) })
	sort.SliceStable(t.Social, func(i, j int) bool { return t.Social[i].At.Before(t.Social[j].At) })
	sort.SliceStable(t.Energy, func(i, j int) bool { return t.Energy[i].At.Before(t.Energy[j].At) })

	return t
}

func filterSince[T any](points []T, start time.Time, at func(T) time.Time) []T {
	var out []T
	for _, p := range points {
		if !at(p).Before(start) {
			out = append(out, p)
		}
	}
	return out
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
