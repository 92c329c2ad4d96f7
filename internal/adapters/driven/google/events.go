package google

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// Query shape for the meetings listing: the user's primary calendar with
// recurring events expanded into instances, ordered by start time.
const (
	primaryCalendarID = "primary"
	maxEventResults   = 50
	eventOrderBy      = "startTime"
)

// Ensure EventSource implements the driven port.
var _ driven.EventSource = (*EventSource)(nil)

// EventSource lists calendar events through the Google Calendar API.
type EventSource struct {
	service *calendar.Service
	limiter *RateLimiter
}

// NewEventSource creates an event source over a token source.
func NewEventSource(ctx context.Context, ts oauth2.TokenSource) (*EventSource, error) {
	service, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &EventSource{
		service: service,
		limiter: NewRateLimiter(),
	}, nil
}

// ListEvents implements driven.EventSource: a single expanded, ordered page
// of the primary calendar for the window.
func (s *EventSource) ListEvents(ctx context.Context, window domain.FetchWindow) ([]domain.MeetingEvent, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := s.service.Events.List(primaryCalendarID).
		SingleEvents(true).
		OrderBy(eventOrderBy).
		MaxResults(maxEventResults).
		TimeMin(window.Start.Format(time.RFC3339)).
		TimeMax(window.End.Format(time.RFC3339)).
		Context(ctx)

	result, err := call.Do()
	if err != nil {
		if IsRateLimited(err) {
			s.limiter.RecordRateLimitError(retryAfterSeconds(err))
		}
		return nil, WrapError(err)
	}

	events := make([]domain.MeetingEvent, 0, len(result.Items))
	for _, item := range result.Items {
		if item == nil || item.Id == "" {
			continue
		}
		events = append(events, toMeetingEvent(item))
	}

	logger.Debug("calendar list returned %d items", len(events))
	return events, nil
}

// toMeetingEvent converts a Google Calendar event to a MeetingEvent.
func toMeetingEvent(event *calendar.Event) domain.MeetingEvent {
	return domain.MeetingEvent{
		ID:             event.Id,
		Summary:        event.Summary,
		Description:    event.Description,
		Location:       event.Location,
		Start:          toTimePoint(event.Start),
		End:            toTimePoint(event.End),
		OrganiserEmail: organiserEmail(event),
		Attendees:      attendeeNames(event.Attendees),
		HTMLLink:       event.HtmlLink,
	}
}

// toTimePoint maps a calendar boundary to the domain representation.
// All-day events carry only a calendar date; converting that to an instant
// would shift the day in non-UTC timezones, so the date is kept verbatim.
func toTimePoint(edt *calendar.EventDateTime) domain.TimePoint {
	if edt == nil {
		return domain.TimePoint{}
	}
	if edt.DateTime != "" {
		if instant, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return domain.NewInstant(instant)
		}
	}
	if edt.Date != "" {
		return domain.NewDate(edt.Date)
	}
	return domain.TimePoint{}
}

// attendeeNames formats the attendee list, preferring display names.
func attendeeNames(attendees []*calendar.EventAttendee) []string {
	if len(attendees) == 0 {
		return nil
	}

	var names []string
	for _, a := range attendees {
		if a.DisplayName != "" {
			names = append(names, a.DisplayName)
		} else if a.Email != "" {
			names = append(names, a.Email)
		}
	}
	return names
}

// organiserEmail extracts the organiser email from an event.
func organiserEmail(event *calendar.Event) string {
	if event.Organizer != nil { //nolint:misspell // Google API field name
		return event.Organizer.Email //nolint:misspell // Google API field name
	}
	return ""
}
