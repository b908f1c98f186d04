package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/logger"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seededDays = 45

// profile shapes the generated history so each demo user trips different insights.
type profile struct {
	user       domain.User
	baseMood   float64
	moodDrift  float64 // mood change per day, newest day last
	stress     int     // typical pre-activity stress, 1-10
	socialRate float64 // chance of a positive social check-in
	energy     int
}

// Profiles returns the demo users. IDs are fixed so repeated seeding is idempotent.
func Profiles() []domain.User {
	users := make([]domain.User, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, p.user)
	}
	return users
}

var profiles = []profile{
	{
		user:     domain.User{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		baseMood: 3.8, moodDrift: 0, stress: 4, socialRate: 0.8, energy: 4,
	},
	{
		user:     domain.User{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		baseMood: 4.2, moodDrift: -0.06, stress: 7, socialRate: 0.3, energy: 2,
	},
	{
		user:     domain.User{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		baseMood: 2.6, moodDrift: 0.03, stress: 8, socialRate: 0.5, energy: 3,
	},
	{
		user:     domain.User{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
		baseMood: 3.2, moodDrift: 0, stress: 5, socialRate: 0.1, energy: 2,
	},
}

// Run seeds demo users with mood, activity, game and check-in history.
// Users that already have mood entries are skipped, so it is safe to call repeatedly.
func Run(ctx context.Context, db *gorm.DB, log *logger.Logger) ([]uuid.UUID, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		user := p.user
		if err := db.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		ids = append(ids, user.ID)

		var existing int64
		if err := db.WithContext(ctx).Model(&domain.MoodEntry{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to count mood entries: %w", err)
		}
		if existing > 0 {
			log.Info("seed skipped, user already has data", "user_id", user.ID)
			continue
		}

		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return seedUser(tx, p, now, rng)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", user.ID, err)
		}
		log.Info("seeded user", "user_id", user.ID, "timezone", user.Timezone)
	}

	return ids, nil
}

func seedUser(tx *gorm.DB, p profile, now time.Time, rng *rand.Rand) error {
	var (
		moods      []domain.MoodEntry
		activities []domain.WellnessActivityCompletion
		games      []domain.GameSession
		social     []domain.SocialInteraction
		energy     []domain.EnergyCheckIn
	)

	for i := seededDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		at := func(hour int) time.Time {
			return time.Date(day.Year(), day.Month(), day.Day(), hour, rng.Intn(60), 0, 0, time.UTC)
		}
		// Skip a few days so streaks and missing-day handling have something to do.
		if i > 3 && rng.Float64() < 0.12 {
			continue
		}

		elapsed := float64(seededDays - 1 - i)
		moods = append(moods, domain.MoodEntry{
			UserID:    p.user.ID,
			MoodValue: clamp(int(p.baseMood+p.moodDrift*elapsed+rng.NormFloat64()*0.7+0.5), 1, 5),
			CreatedAt: at(20),
		})

		if rng.Float64() < 0.6 {
			before := clamp(p.stress+rng.Intn(3)-1, 1, 10)
			after := clamp(before-1-rng.Intn(3), 1, 10)
			activities = append(activities, domain.WellnessActivityCompletion{
				UserID:          p.user.ID,
				ActivityType:    activityTypes[rng.Intn(len(activityTypes))],
				DurationSeconds: 300 + rng.Intn(900),
				StressBefore:    &before,
				StressAfter:     &after,
				CompletedAt:     at(8),
			})
		}

		if rng.Float64() < 0.5 {
			family := domain.GameFamilies[rng.Intn(len(domain.GameFamilies))]
			payload, err := gamePayload(family, p, rng)
			if err != nil {
				return err
			}
			games = append(games, domain.GameSession{
				UserID:      p.user.ID,
				GameFamily:  family,
				Payload:     payload,
				CompletedAt: at(18),
			})
		}

		if rng.Float64() < 0.7 {
			positive := rng.Float64() < p.socialRate
			quality := 2
			if positive {
				quality = 4
			}
			social = append(social, domain.SocialInteraction{
				UserID:            p.user.ID,
				TalkedToSomeone:   positive || rng.Float64() < 0.3,
				FeltConnected:     positive,
				ConnectionQuality: &quality,
				CreatedAt:         at(21),
			})
		}

		if rng.Float64() < 0.7 {
			level := clamp(p.energy+rng.Intn(3)-1, 1, 5)
			energy = append(energy, domain.EnergyCheckIn{
				UserID:          p.user.ID,
				EnergyLevel:     level,
				MotivationLevel: clamp(level+rng.Intn(3)-1, 1, 5),
				FeelingDrained:  level <= 2,
				FeltMotivated:   level >= 4,
				CreatedAt:       at(9),
			})
		}
	}

	for _, rows := range []any{&moods, &activities, &games, &social, &energy} {
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return err
		}
	}
	return nil
}

var activityTypes = []domain.ActivityType{
	domain.ActivityMeditation,
	domain.ActivityBreathing,
	domain.ActivityGratitude,
	domain.ActivityJournaling,
	domain.ActivityExercise,
}

// gamePayload builds a valid payload for the family, worse for more stressed profiles.
func gamePayload(family domain.GameFamily, p profile, rng *rand.Rand) (datatypes.JSON, error) {
	strain := float64(p.stress) / 10
	var payload domain.GamePayload

	switch family {
	case domain.GameAttentionFocus:
		total := 40
		errs := int(strain*10) + rng.Intn(4)
		first := 95 - strain*10
		second := first - strain*20 - float64(rng.Intn(5))
		payload = &domain.AttentionFocusPayload{
			TotalTasks:      total,
			Errors:          errs,
			ImpulsiveErrors: errs / 2,
			AvgResponseMs:   450 + strain*300,
			FatigueCurve: domain.FatigueCurve{
				FirstHalfAcc:  first,
				SecondHalfAcc: second,
				Degradation:   first - second,
			},
		}
	case domain.GameStressResponse:
		total := 20
		totalErrors := int(strain*8) + rng.Intn(3)
		payload = &domain.StressResponsePayload{
			TotalTasks:       total,
			DifficultyLevel:  1 + rng.Intn(3),
			PerformanceScore: 90 - strain*40,
			ErrorSpikes: domain.ErrorSpikes{
				UnderPressure: totalErrors / 2,
				TotalErrors:   totalErrors,
			},
		}
	case domain.GameDecisionMaking:
		total := 12
		risky := rng.Intn(total + 1)
		regrets := int(strain * 4)
		payload = &domain.DecisionMakingPayload{
			TotalDecisions:      total,
			RiskyChoices:        risky,
			SafeChoices:         total - risky,
			RiskPreferenceScore: float64(risky-(total-risky)) / float64(total) * 100,
			RegretBehavior: domain.RegretBehavior{
				TotalRegrets:     regrets,
				RegretRate:       float64(regrets) / float64(total) * 100,
				ChangedMindCount: rng.Intn(3),
			},
			DecisionConsistency: 85 - strain*30,
		}
	case domain.GameEmotionRecognition:
		total := 18
		correct := total - int(strain*6) - rng.Intn(2)
		payload = &domain.EmotionRecognitionPayload{
			TotalQuestions:      total,
			CorrectAnswers:      correct,
			AccuracyRate:        float64(correct) / float64(total) * 100,
			AvgReactionMs:       900 + strain*400,
			NegativeEmotionBias: strain * 60,
		}
	default:
		payload = &domain.CasualGamePayload{
			Score:           100 + rng.Intn(200),
			DurationSeconds: 60 + rng.Intn(120),
		}
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("generated %s payload invalid: %w", family, err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
