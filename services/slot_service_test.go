package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codeclinic/code_clinic/services"
	"go.uber.org/zap"
)

func TestPublish_RequiresSubject(t *testing.T) {
	db := newTestDB(t)
	volunteer := newAccount(t, db, "Grace", "grace@example.com", true)
	svc := services.NewSlotService(db, zap.NewNop())

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	_, err := svc.Publish(context.Background(), volunteer.ID, start, start.Add(time.Hour), "   ")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank subject, got: %v", err)
	}
}

func TestPublish_RejectsInvertedWindow(t *testing.T) {
	db := newTestDB(t)
	volunteer := newAccount(t, db, "Grace", "grace@example.com", true)
	svc := services.NewSlotService(db, zap.NewNop())

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	if _, err := svc.Publish(context.Background(), volunteer.ID, start, start, "Algebra"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero-length window, got: %v", err)
	}
	if _, err := svc.Publish(context.Background(), volunteer.ID, start.Add(time.Hour), start, "Algebra"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted window, got: %v", err)
	}
}

func TestPublish_RejectsNonVolunteer(t *testing.T) {
	db := newTestDB(t)
	student := newAccount(t, db, "Sam", "sam@example.com", false)
	svc := services.NewSlotService(db, zap.NewNop())

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	_, err := svc.Publish(context.Background(), student.ID, start, start.Add(time.Hour), "Algebra")
	if !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-volunteer, got: %v", err)
	}
}

func TestListAvailable_FiltersOnFlag(t *testing.T) {
	db := newTestDB(t)
	volunteer := newAccount(t, db, "Grace", "grace@example.com", true)
	student := newAccount(t, db, "Sam", "sam@example.com", false)

	open := newSlot(t, db, volunteer, "Algebra")
	claimed := newSlot(t, db, volunteer, "Geometry")

	bookings := services.NewBookingService(db, nil, zap.NewNop())
	if _, err := bookings.Book(context.Background(), student.ID, claimed.ID); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	views, err := services.NewSlotService(db, zap.NewNop()).ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list available failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 available slot, got %d", len(views))
	}

	view := views[0]
	if view.ID != open.ID {
		t.Fatalf("listed wrong slot: got %s, want %s", view.ID, open.ID)
	}
	if view.VolunteerName != "Grace" {
		t.Fatalf("volunteer name not resolved: got %q", view.VolunteerName)
	}
	if view.Title != "Algebra with Grace" {
		t.Fatalf("unexpected title: %q", view.Title)
	}
	if !view.Start.Equal(open.StartTime) || !view.End.Equal(open.EndTime) {
		t.Fatalf("slot window not carried through: got [%v, %v]", view.Start, view.End)
	}
}
