package tui

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// mockCalendarService implements driving.CalendarService for tests.
type mockCalendarService struct {
	state      driving.CalendarState
	session    domain.Session
	signInErr  error
	fetchErr   error
	onChange   func(driving.CalendarState)
	starts     int
	signIns    int
	signOuts   int
	fetches    int
	lastWindow *domain.FetchWindow
}

var _ driving.CalendarService = (*mockCalendarService)(nil)

func (m *mockCalendarService) Start(context.Context) {
	m.starts++
}

func (m *mockCalendarService) Snapshot() driving.CalendarState {
	return m.state
}

func (m *mockCalendarService) SetOnChange(fn func(driving.CalendarState)) {
	m.onChange = fn
}

func (m *mockCalendarService) SignIn(context.Context) error {
	m.signIns++
	return m.signInErr
}

func (m *mockCalendarService) SignOut(context.Context) {
	m.signOuts++
}

func (m *mockCalendarService) FetchMeetings(_ context.Context, window *domain.FetchWindow) error {
	m.fetches++
	m.lastWindow = window
	return m.fetchErr
}

func (m *mockCalendarService) Session(context.Context) domain.Session {
	return m.session
}
