package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialEnergy is how a social contact left the user feeling.
type SocialEnergy string

const (
	SocialEnergized SocialEnergy = "energized"
	SocialNeutral   SocialEnergy = "neutral"
	SocialDrained   SocialEnergy = "drained"
)

type SocialInteraction struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID     `gorm:"type:uuid;not null;index:idx_social_interactions_user_created" json:"user_id"`
	TalkedToSomeone   bool          `gorm:"not null" json:"talked_to_someone"`
	FeltConnected     bool          `gorm:"not null" json:"felt_connected"`
	ConnectionQuality *int          `gorm:"type:smallint" json:"connection_quality,omitempty"`
	SocialEnergy      *SocialEnergy `gorm:"type:varchar(16)" json:"social_energy,omitempty"`
	CreatedAt         time.Time     `gorm:"not null;index:idx_social_interactions_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SocialInteraction) TableName() string {
	return "social_interactions"
}

func (s *SocialInteraction) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return nil
}

type EnergyCheckIn struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_energy_check_ins_user_created" json:"user_id"`
	EnergyLevel     int       `gorm:"type:smallint;not null" json:"energy_level"`
	MotivationLevel int       `gorm:"type:smallint;not null" json:"motivation_level"`
	FeelingDrained  bool      `gorm:"not null" json:"feeling_drained"`
	FeltMotivated   bool      `gorm:"not null" json:"felt_motivated"`
	CreatedAt       time.Time `gorm:"not null;index:idx_energy_check_ins_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EnergyCheckIn) TableName() string {
	return "energy_check_ins"
}

func (e *EnergyCheckIn) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return nil
}

// CreateSocialCheckInRequest is the request body for a daily social check-in.
// @Description Daily social interaction check-in.
type CreateSocialCheckInRequest struct {
	TalkedToSomeone   bool          `json:"talked_to_someone" example:"true"`
	FeltConnected     bool          `json:"felt_connected" example:"true"`
	ConnectionQuality *int          `json:"connection_quality,omitempty" validate:"omitempty,min=1,max=5" example:"4"`
	SocialEnergy      *SocialEnergy `json:"social_energy,omitempty" validate:"omitempty,oneof=energized neutral drained" example:"energized"`
	CreatedAt         *time.Time    `json:"created_at,omitempty"`
}

// CreateEnergyCheckInRequest is the request body for a daily energy check-in.
// @Description Daily energy and motivation check-in.
type CreateEnergyCheckInRequest struct {
	EnergyLevel     int        `json:"energy_level" validate:"required,min=1,max=5" example:"3"`
	MotivationLevel int        `json:"motivation_level" validate:"required,min=1,max=5" example:"4"`
	FeelingDrained  bool       `json:"feeling_drained" example:"false"`
	FeltMotivated   bool       `json:"felt_motivated" example:"true"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}
