package mcp

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// mockCalendarService implements driving.CalendarService for tests.
type mockCalendarService struct {
	state      driving.CalendarState
	session    domain.Session
	fetchErr   error
	signInErr  error
	lastWindow *domain.FetchWindow
	fetches    int
}

var _ driving.CalendarService = (*mockCalendarService)(nil)

func (m *mockCalendarService) Start(context.Context) {}

func (m *mockCalendarService) Snapshot() driving.CalendarState {
	return m.state
}

func (m *mockCalendarService) SetOnChange(func(driving.CalendarState)) {}

func (m *mockCalendarService) SignIn(context.Context) error {
	return m.signInErr
}

func (m *mockCalendarService) SignOut(context.Context) {}

func (m *mockCalendarService) FetchMeetings(_ context.Context, window *domain.FetchWindow) error {
	m.fetches++
	m.lastWindow = window
	return m.fetchErr
}

func (m *mockCalendarService) Session(context.Context) domain.Session {
	return m.session
}
