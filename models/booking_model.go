package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking pairs a student with a claimed slot. At most one booking
// exists per slot while the slot is unavailable; cancellation deletes
// the row outright.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"not null"`
	SlotID uuid.UUID `gorm:"not null"`

	User User          `gorm:"foreignkey:UserID"`
	Slot VolunteerSlot `gorm:"foreignkey:SlotID"`

	CreatedAt time.Time
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
