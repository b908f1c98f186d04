package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityType is the kind of guided wellness activity.
// @Description Guided wellness activity type.
type ActivityType string

const (
	ActivityMeditation ActivityType = "meditation"
	ActivityBreathing  ActivityType = "breathing"
	ActivityGratitude  ActivityType = "gratitude"
	ActivityCounselor  ActivityType = "counselor"
	ActivityJournaling ActivityType = "journaling"
	ActivityExercise   ActivityType = "exercise"
)

type WellnessActivityCompletion struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index:idx_activity_completions_user_completed" json:"user_id"`
	ActivityType    ActivityType `gorm:"type:varchar(32);not null" json:"activity_type"`
	DurationSeconds int          `gorm:"not null" json:"duration_seconds"`
	StressBefore    *int         `gorm:"type:smallint" json:"stress_before,omitempty"`
	StressAfter     *int         `gorm:"type:smallint" json:"stress_after,omitempty"`
	CompletedAt     time.Time    `gorm:"not null;index:idx_activity_completions_user_completed,sort:desc" json:"completed_at"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WellnessActivityCompletion) TableName() string {
	return "wellness_activity_completions"
}

func (a *WellnessActivityCompletion) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// RecoverySpeed is the stress drop per minute of activity. Absent unless both
// stress readings were captured and the activity had a duration.
func (a *WellnessActivityCompletion) RecoverySpeed() (float64, bool) {
	if a.StressBefore == nil || a.StressAfter == nil || a.DurationSeconds <= 0 {
		return 0, false
	}
	return float64(*a.StressBefore-*a.StressAfter) / float64(a.DurationSeconds) * 60, true
}

// CreateActivityRequest is the request body for recording a completed activity.
// @Description Request payload for a completed guided activity.
type CreateActivityRequest struct {
	ActivityType    ActivityType `json:"activity_type" validate:"required,oneof=meditation breathing gratitude counselor journaling exercise" example:"meditation" enums:"meditation,breathing,gratitude,counselor,journaling,exercise"`
	DurationSeconds int          `json:"duration_seconds" validate:"min=0,max=86400" example:"600"`
	// Optional self-reported stress (1-10) before the activity
	StressBefore *int `json:"stress_before,omitempty" validate:"omitempty,min=1,max=10" example:"7"`
	// Optional self-reported stress (1-10) after the activity
	StressAfter *int `json:"stress_after,omitempty" validate:"omitempty,min=1,max=10" example:"4"`
	// Completion time (defaults to now)
	CompletedAt *time.Time `json:"completed_at,omitempty" example:"2024-01-15T08:30:00Z"`
}

// ActivityResponse is the response body for activity endpoints.
// @Description Completed wellness activity.
type ActivityResponse struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	ActivityType    ActivityType `json:"activity_type" example:"breathing"`
	DurationSeconds int          `json:"duration_seconds" example:"300"`
	StressBefore    *int         `json:"stress_before,omitempty" example:"7"`
	StressAfter     *int         `json:"stress_after,omitempty" example:"4"`
	RecoverySpeed   *float64     `json:"recovery_speed,omitempty" example:"0.6"`
	CompletedAt     time.Time    `json:"completed_at"`
}

func (a *WellnessActivityCompletion) ToResponse() ActivityResponse {
	resp := ActivityResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		ActivityType:    a.ActivityType,
		DurationSeconds: a.DurationSeconds,
		StressBefore:    a.StressBefore,
		StressAfter:     a.StressAfter,
		CompletedAt:     a.CompletedAt,
	}
	if speed, ok := a.RecoverySpeed(); ok {
		resp.RecoverySpeed = &speed
	}
	return resp
}

// ActivityListResponse is the response body for listing activities.
// @Description Paginated list of completed activities.
type ActivityListResponse struct {
	Data       []ActivityResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}
