// Package calendar mirrors booking state into an external calendar.
// The mirror is a best-effort side channel: the booking ledger is the
// source of truth and callers are expected to log and swallow every
// error returned from here.
package calendar

import (
	"context"
	"time"
)

// Event is the provider-independent representation of a mirrored
// booking session.
type Event struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
}

// Mirror creates and removes calendar events for bookings.
type Mirror interface {
	// CreateEvent inserts one event for a freshly created booking.
	CreateEvent(ctx context.Context, event Event) error

	// RemoveEvents deletes every event inside the [start, end] window
	// whose text matches summary.
	RemoveEvents(ctx context.Context, summary string, start, end time.Time) error
}
