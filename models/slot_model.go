package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerSlot is a tutoring window published by a volunteer.
// IsAvailable stays true until exactly one booking claims the slot and
// flips back to true when that booking is cancelled.
type VolunteerSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VolunteerID uuid.UUID `gorm:"not null" json:"-"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Subject     string    `gorm:"size:100;not null" json:"subject"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`

	Volunteer User `gorm:"foreignkey:VolunteerID" json:"volunteer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *VolunteerSlot) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
