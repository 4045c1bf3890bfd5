package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeclinic/code_clinic/calendar"
	"github.com/codeclinic/code_clinic/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingService orchestrates slot claims, cancellations, and the
// best-effort calendar mirror. Every calendar failure is logged and
// swallowed; the ledger transaction never depends on it.
type BookingService struct {
	db     *gorm.DB
	mirror calendar.Mirror
	logger *zap.Logger
}

func NewBookingService(db *gorm.DB, mirror calendar.Mirror, logger *zap.Logger) *BookingService {
	return &BookingService{db: db, mirror: mirror, logger: logger}
}

// BookingView is a student's booking annotated with slot details.
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	VolunteerName string    `json:"volunteer_name"`
	Subject       string    `json:"subject"`
}

// Book claims an available slot for a student. The availability flip
// is a conditional update inside the booking transaction, so two
// concurrent claims on the same slot cannot both succeed.
func (s *BookingService) Book(ctx context.Context, studentID, slotID uuid.UUID) (*models.Booking, error) {
	var slot models.VolunteerSlot
	if err := s.db.WithContext(ctx).Preload("Volunteer").First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !slot.IsAvailable {
		return nil, ErrSlotUnavailable
	}
	if slot.VolunteerID == studentID {
		return nil, ErrSelfBooking
	}

	var student models.User
	if err := s.db.WithContext(ctx).First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking := models.Booking{UserID: studentID, SlotID: slot.ID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.VolunteerSlot{}).
			Where("id = ? AND is_available = ?", slot.ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotUnavailable
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Slot booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("student_id", studentID.String()),
		zap.String("slot_id", slot.ID.String()),
	)

	if s.mirror != nil {
		event := calendar.Event{
			Summary:     sessionSummary(slot.Volunteer.Name),
			Description: fmt.Sprintf("One-on-one coding session with %s", slot.Volunteer.Name),
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			Attendees:   []string{student.Email, slot.Volunteer.Email},
		}
		if err := s.mirror.CreateEvent(ctx, event); err != nil {
			s.logger.Warn("Failed to mirror booking to calendar",
				zap.String("booking_id", booking.ID.String()),
				zap.Error(err),
			)
		}
	}

	return &booking, nil
}

// Cancel removes a student's booking, restoring the slot's
// availability in the same transaction.
func (s *BookingService) Cancel(ctx context.Context, studentID, bookingID uuid.UUID) error {
	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("Slot.Volunteer").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if booking.UserID != studentID {
		return ErrUnauthorized
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VolunteerSlot{}).
			Where("id = ?", booking.SlotID).
			Update("is_available", true).Error; err != nil {
			return err
		}
		return tx.Delete(&booking).Error
	})
	if err != nil {
		return err
	}

	s.logger.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("slot_id", booking.SlotID.String()),
	)

	if s.mirror != nil {
		summary := sessionSummary(booking.Slot.Volunteer.Name)
		if err := s.mirror.RemoveEvents(ctx, summary, booking.Slot.StartTime, booking.Slot.EndTime); err != nil {
			s.logger.Warn("Failed to remove mirrored calendar events",
				zap.String("booking_id", bookingID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}

// ListMine returns the student's bookings with slot window, subject,
// and volunteer name resolved.
func (s *BookingService) ListMine(ctx context.Context, studentID uuid.UUID) ([]BookingView, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Preload("Slot.Volunteer").
		Where("user_id = ?", studentID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, BookingView{
			ID:            booking.ID,
			StartTime:     booking.Slot.StartTime,
			EndTime:       booking.Slot.EndTime,
			VolunteerName: booking.Slot.Volunteer.Name,
			Subject:       booking.Slot.Subject,
		})
	}
	return views, nil
}

// sessionSummary is the event title the mirror creates on booking and
// searches for on cancellation. Matching is textual, so both paths
// must synthesize the identical string.
func sessionSummary(volunteerName string) string {
	return fmt.Sprintf("Code Clinic Session with %s", volunteerName)
}
