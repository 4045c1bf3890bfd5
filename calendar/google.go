package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleMirror writes booking events into a single Google Calendar,
// authenticated with a service account credentials file.
type GoogleMirror struct {
	service    *gcal.Service
	calendarID string
	logger     *zap.Logger
}

// NewGoogleMirror builds a client from a service account JSON file and
// the target calendar ID.
func NewGoogleMirror(ctx context.Context, logger *zap.Logger, credentialsFile, calendarID string) (*GoogleMirror, error) {
	service, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleMirror{service: service, calendarID: calendarID, logger: logger}, nil
}

func (m *GoogleMirror) CreateEvent(ctx context.Context, event Event) error {
	attendees := make([]*gcal.EventAttendee, 0, len(event.Attendees))
	for _, email := range event.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	body := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.StartTime.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: event.EndTime.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: attendees,
	}

	inserted, err := m.service.Events.Insert(m.calendarID, body).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	m.logger.Info("Calendar event created",
		zap.String("event_id", inserted.Id),
		zap.String("summary", event.Summary),
	)
	return nil
}

func (m *GoogleMirror) RemoveEvents(ctx context.Context, summary string, start, end time.Time) error {
	events, err := m.service.Events.List(m.calendarID).
		TimeMin(start.UTC().Format(time.RFC3339)).
		TimeMax(end.UTC().Format(time.RFC3339)).
		Q(summary).
		SingleEvents(true).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	for _, item := range events.Items {
		if err := m.service.Events.Delete(m.calendarID, item.Id).Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to delete event %s: %w", item.Id, err)
		}
	}

	m.logger.Info("Calendar events removed",
		zap.String("summary", summary),
		zap.Int("count", len(events.Items)),
	)
	return nil
}
