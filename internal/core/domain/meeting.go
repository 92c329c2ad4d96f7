package domain

import (
	"time"
)

// dateLayout is the calendar-date format used for all-day events.
const dateLayout = "2006-01-02"

// TimePoint is either an exact instant (timed event) or a calendar date
// (all-day event). Exactly one of Instant and Date is set. All-day events
// keep their calendar-date form: coercing them to midnight-UTC instants
// would misrepresent the date in other time zones.
type TimePoint struct {
	// Instant is the zoned instant for timed events.
	Instant time.Time
	// Date is the calendar date ("2006-01-02") for all-day events.
	Date string
}

// NewInstant returns a TimePoint for a timed event.
func NewInstant(t time.Time) TimePoint {
	return TimePoint{Instant: t}
}

// NewDate returns a TimePoint for an all-day event.
func NewDate(date string) TimePoint {
	return TimePoint{Date: date}
}

// IsAllDay reports whether the point is a calendar date with no time component.
func (p TimePoint) IsAllDay() bool {
	return p.Date != ""
}

// IsZero reports whether the point is unset.
func (p TimePoint) IsZero() bool {
	return p.Date == "" && p.Instant.IsZero()
}

// Resolve returns the point as an instant in the given location.
// All-day dates resolve to midnight local time; this is for ordering and
// window checks only, never for display.
func (p TimePoint) Resolve(loc *time.Location) time.Time {
	if !p.IsAllDay() {
		return p.Instant
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dateLayout, p.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MeetingEvent is a single calendar event normalised from the provider.
// Lists of events are owned by whichever coordinator requested them and
// are replaced wholesale on the next fetch or sign-out.
type MeetingEvent struct {
	// ID is the provider's event identifier.
	ID string
	// Summary is the event title.
	Summary string
	// Description is the free-form event body, when present.
	Description string
	// Location is the event location, when present.
	Location string
	// Start is the event start, timed or all-day.
	Start TimePoint
	// End is the event end, timed or all-day.
	End TimePoint
	// OrganiserEmail is the organiser's address, when present.
	OrganiserEmail string
	// Attendees lists attendee display names or addresses.
	Attendees []string
	// HTMLLink is the provider's web link for the event, when present.
	HTMLLink string
}

// IsAllDay reports whether the event is an all-day event.
func (e MeetingEvent) IsAllDay() bool {
	return e.Start.IsAllDay()
}

// FetchWindow is a half-open time range [Start, End) for event queries.
type FetchWindow struct {
	Start time.Time
	End   time.Time
}

// DefaultLookahead is the window applied when a caller omits a range.
const DefaultLookahead = 30 * 24 * time.Hour

// DefaultFetchWindow returns the default 30-day lookahead from now.
func DefaultFetchWindow(now time.Time) FetchWindow {
	return FetchWindow{Start: now, End: now.Add(DefaultLookahead)}
}

// MonthWindow returns the window covering now's calendar month in now's
// location, first day 00:00:00 through last day 23:59:59.
func MonthWindow(now time.Time) FetchWindow {
	year, month, _ := now.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return FetchWindow{Start: start, End: end}
}

// IsDegenerate reports whether the window selects nothing (end not after start).
func (w FetchWindow) IsDegenerate() bool {
	return !w.End.After(w.Start)
}
