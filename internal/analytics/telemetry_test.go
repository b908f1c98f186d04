package analytics

import (
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestNormalize(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	windowStart := testNow.AddDate(0, 0, -30)

	validAttention := datatypes.JSON(`{"total_tasks":10,"errors":2,"impulsive_errors":1,"avg_response_ms":420,"fatigue_curve":{"first_half_acc":90,"second_half_acc":80,"degradation":10}}`)
	malformed := datatypes.JSON(`{"total_tasks":-1}`)
	badSessionID := uuid.New()

	raw := RawRecords{
		Moods: []domain.MoodEntry{
			{ID: uuid.New(), UserID: userID, MoodValue: 4, CreatedAt: testNow.Add(-2 * time.Hour)},
			{ID: uuid.New(), UserID: userID, MoodValue: 2, CreatedAt: testNow.Add(-48 * time.Hour)},
			{ID: uuid.New(), UserID: otherID, MoodValue: 5, CreatedAt: testNow.Add(-time.Hour)},
			{ID: uuid.New(), UserID: userID, MoodValue: 1, CreatedAt: windowStart.Add(-time.Hour)},
		},
		Activities: []domain.WellnessActivityCompletion{
			{ID: uuid.New(), UserID: userID, ActivityType: domain.ActivityBreathing, DurationSeconds: 120, StressBefore: intPtr(8), StressAfter: intPtr(4), CompletedAt: testNow.Add(-3 * time.Hour)},
			{ID: uuid.New(), UserID: userID, ActivityType: domain.ActivityMeditation, DurationSeconds: 600, CompletedAt: testNow.Add(-5 * time.Hour)},
		},
		Games: []domain.GameSession{
			{ID: uuid.New(), UserID: userID, GameFamily: domain.GameAttentionFocus, Payload: validAttention, CompletedAt: testNow.Add(-time.Hour)},
			{ID: badSessionID, UserID: userID, GameFamily: domain.GameAttentionFocus, Payload: malformed, CompletedAt: testNow.Add(-time.Hour)},
		},
	}

	tel := Normalize(userID, windowStart, testNow, raw)

	if len(tel.Moods) != 2 {
		t.Fatalf("len(Moods) = %d, want 2", len(tel.Moods))
	}
	if tel.Moods[0].Value != 2 || tel.Moods[1].Value != 4 {
		t.Errorf("Moods not in ascending time order: %+v", tel.Moods)
	}

	if len(tel.Activities) != 2 {
		t.Fatalf("len(Activities) = %d, want 2", len(tel.Activities))
	}
	if tel.Activities[0].Type != domain.ActivityMeditation {
		t.Errorf("Activities[0].Type = %s, want meditation", tel.Activities[0].Type)
	}
	if tel.Activities[0].RecoverySpeed != nil {
		t.Error("expected nil recovery speed without stress readings")
	}
	if speed := tel.Activities[1].RecoverySpeed; speed == nil || !almostEqual(*speed, 2) {
		t.Errorf("RecoverySpeed = %v, want 2 points per minute", speed)
	}

	if len(tel.Games) != 1 {
		t.Fatalf("len(Games) = %d, want 1", len(tel.Games))
	}
	if len(tel.Rejected) != 1 || tel.Rejected[0].SessionID != badSessionID {
		t.Errorf("Rejected = %+v, want the malformed session", tel.Rejected)
	}
}

func TestNormalize_OpenEndedWindow(t *testing.T) {
	userID := uuid.New()
	raw := RawRecords{
		Moods: []domain.MoodEntry{
			{UserID: userID, MoodValue: 3, CreatedAt: testNow.Add(24 * time.Hour)},
		},
	}

	tel := Normalize(userID, testNow.AddDate(0, 0, -1), time.Time{}, raw)
	if len(tel.Moods) != 1 {
		t.Errorf("len(Moods) = %d, want 1 with no upper bound", len(tel.Moods))
	}
}

func TestTelemetry_Since(t *testing.T) {
	tel := Telemetry{
		Moods: moodSeries(testNow.AddDate(0, 0, -10), 24*time.Hour, 1, 2, 3, 4, 5),
		Energy: []EnergyPoint{
			{At: testNow.AddDate(0, 0, -9), Energy: 2},
			{At: testNow.AddDate(0, 0, -1), Energy: 4},
		},
	}

	recent := tel.Since(testNow.AddDate(0, 0, -8))
	if len(recent.Moods) != 3 {
		t.Errorf("len(Moods) = %d, want 3", len(recent.Moods))
	}
	if len(recent.Energy) != 1 {
		t.Errorf("len(Energy) = %d, want 1", len(recent.Energy))
	}
	if len(tel.Moods) != 5 {
		t.Error("Since must not modify the receiver")
	}
}

func TestPointFeatures(t *testing.T) {
	journal := "went for a walk"
	mood := MoodPoint{Value: 4, Journal: &journal}
	if got := mood.Features(); len(got) != 2 || got[1] != 1 {
		t.Errorf("MoodPoint.Features() = %v, want journal flag set", got)
	}

	social := SocialPoint{TalkedToSomeone: true, ConnectionQuality: intPtr(4)}
	if got := social.Features(); len(got) != 3 || got[0] != 1 || got[1] != 0 || got[2] != 4 {
		t.Errorf("SocialPoint.Features() = %v", got)
	}

	empty := GamePoint{Family: domain.GameAttentionFocus, Payload: &domain.AttentionFocusPayload{}}
	if got := empty.Features(); got != nil {
		t.Errorf("GamePoint.Features() = %v, want nil for a session without tasks", got)
	}
}
