package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeclinic/code_clinic/calendar"
	"github.com/codeclinic/code_clinic/models"
	"github.com/codeclinic/code_clinic/services"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	// A second pool connection would get its own empty in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.VolunteerSlot{}, &models.Booking{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newAccount(t *testing.T, db *gorm.DB, name, email string, volunteer bool) *models.User {
	t.Helper()

	user, err := services.NewAccountService(db, zap.NewNop()).
		Register(context.Background(), email, name, "secret123", volunteer)
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func newSlot(t *testing.T, db *gorm.DB, volunteer *models.User, subject string) *models.VolunteerSlot {
	t.Helper()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	slot, err := services.NewSlotService(db, zap.NewNop()).
		Publish(context.Background(), volunteer.ID, start, start.Add(time.Hour), subject)
	if err != nil {
		t.Fatalf("publish slot: %v", err)
	}
	return slot
}

type removedCall struct {
	summary    string
	start, end time.Time
}

type fakeMirror struct {
	createErr error
	removeErr error
	created   []calendar.Event
	removed   []removedCall
}

func (f *fakeMirror) CreateEvent(_ context.Context, event calendar.Event) error {
	f.created = append(f.created, event)
	return f.createErr
}

func (f *fakeMirror) RemoveEvents(_ context.Context, summary string, start, end time.Time) error {
	f.removed = append(f.removed, removedCall{summary: summary, start: start, end: end})
	return f.removeErr
}
