package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeclinic/code_clinic/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SlotService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSlotService(db *gorm.DB, logger *zap.Logger) *SlotService {
	return &SlotService{db: db, logger: logger}
}

// SlotView is an available slot annotated with its volunteer's name.
type SlotView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	VolunteerName string    `json:"volunteer_name"`
	Subject       string    `json:"subject"`
}

// Publish creates an available slot for a volunteer account.
func (s *SlotService) Publish(ctx context.Context, volunteerID uuid.UUID, start, end time.Time, subject string) (*models.VolunteerSlot, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrValidation)
	}

	var volunteer models.User
	if err := s.db.WithContext(ctx).First(&volunteer, "id = ?", volunteerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !volunteer.IsVolunteer {
		return nil, ErrUnauthorized
	}

	slot := models.VolunteerSlot{
		VolunteerID: volunteerID,
		StartTime:   start,
		EndTime:     end,
		Subject:     subject,
		IsAvailable: true,
	}
	if err := s.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Slot published",
		zap.String("slot_id", slot.ID.String()),
		zap.String("volunteer_id", volunteerID.String()),
		zap.String("subject", subject),
	)
	return &slot, nil
}

// ListAvailable returns every slot whose availability flag is true,
// joined with the owning volunteer's display name. No ordering is
// guaranteed.
func (s *SlotService) ListAvailable(ctx context.Context) ([]SlotView, error) {
	var slots []models.VolunteerSlot
	if err := s.db.WithContext(ctx).
		Preload("Volunteer").
		Where("is_available = ?", true).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, SlotView{
			ID:            slot.ID,
			Title:         fmt.Sprintf("%s with %s", slot.Subject, slot.Volunteer.Name),
			Start:         slot.StartTime,
			End:           slot.EndTime,
			VolunteerName: slot.Volunteer.Name,
			Subject:       slot.Subject,
		})
	}
	return views, nil
}
