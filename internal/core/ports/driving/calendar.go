package driving

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// CalendarState is the observable state of the calendar session, consumed
// by presentation adapters. Meetings are owned by the coordinator that
// fetched them and replaced wholesale on the next fetch or sign-out.
type CalendarState struct {
	// Initialized reports whether the provider handle has been built.
	Initialized bool
	// Authenticated reports whether a usable access token is held.
	Authenticated bool
	// Loading reports whether initialisation or an auth operation is running.
	Loading bool
	// Err is the human-readable message of the last failure, empty when none.
	Err string
	// Meetings is the most recently fetched meeting list.
	Meetings []domain.MeetingEvent
	// LoadingMeetings reports whether a meetings fetch is in flight.
	LoadingMeetings bool
}

// CalendarService is the full surface the coordinator exposes outward.
type CalendarService interface {
	// Start drives initialisation and session restore. It blocks until the
	// state settles; run it in a goroutine for event-loop consumers.
	Start(ctx context.Context)

	// Snapshot returns a copy of the current state.
	Snapshot() CalendarState

	// SetOnChange registers a callback invoked after every state change.
	SetOnChange(fn func(CalendarState))

	// SignIn runs the interactive consent flow.
	SignIn(ctx context.Context) error

	// SignOut revokes and clears the session. Always succeeds locally.
	SignOut(ctx context.Context)

	// FetchMeetings fetches meetings for the window, or the default
	// 30-day lookahead when window is nil.
	FetchMeetings(ctx context.Context, window *domain.FetchWindow) error

	// Session describes the current connection for status reporting.
	Session(ctx context.Context) domain.Session
}
