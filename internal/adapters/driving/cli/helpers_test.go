package cli

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// mockCalendarService implements driving.CalendarService for tests.
type mockCalendarService struct {
	state      driving.CalendarState
	session    domain.Session
	signInErr  error
	fetchErr   error
	starts     int
	signIns    int
	signOuts   int
	fetches    int
	lastWindow *domain.FetchWindow
}

var _ driving.CalendarService = (*mockCalendarService)(nil)

func (m *mockCalendarService) Start(context.Context) { m.starts++ }

func (m *mockCalendarService) Snapshot() driving.CalendarState { return m.state }

func (m *mockCalendarService) SetOnChange(func(driving.CalendarState)) {}

func (m *mockCalendarService) SignIn(context.Context) error {
	m.signIns++
	return m.signInErr
}

func (m *mockCalendarService) SignOut(context.Context) { m.signOuts++ }

func (m *mockCalendarService) FetchMeetings(_ context.Context, window *domain.FetchWindow) error {
	m.fetches++
	m.lastWindow = window
	return m.fetchErr
}

func (m *mockCalendarService) Session(context.Context) domain.Session { return m.session }

// mockConfigStore implements driven.ConfigStore in memory.
type mockConfigStore struct {
	data map[string]any
	path string
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{
		data: make(map[string]any),
		path: "/tmp/cadence-test/config.toml",
	}
}

func (s *mockConfigStore) Get(key string) (any, bool) {
	val, ok := s.data[key]
	return val, ok
}

func (s *mockConfigStore) GetString(key string) string {
	if val, ok := s.data[key].(string); ok {
		return val
	}
	return ""
}

func (s *mockConfigStore) GetInt(key string) int {
	if val, ok := s.data[key].(int); ok {
		return val
	}
	return 0
}

func (s *mockConfigStore) GetBool(key string) bool {
	if val, ok := s.data[key].(bool); ok {
		return val
	}
	return false
}

func (s *mockConfigStore) Set(key string, value any) error {
	s.data[key] = value
	return nil
}

func (s *mockConfigStore) Save() error { return nil }

func (s *mockConfigStore) Load() error { return nil }

func (s *mockConfigStore) Path() string { return s.path }

// setupTestServices installs mock services and returns a cleanup that
// restores the previous ones.
func setupTestServices() (*mockCalendarService, *mockConfigStore, func()) {
	oldCalendar := calendarService
	oldConfig := configStore

	calendar := &mockCalendarService{
		state: driving.CalendarState{Initialized: true, Authenticated: true},
		session: domain.Session{
			HasToken:     true,
			ClientID:     "client-1",
			AccountEmail: "user@example.com",
		},
	}
	config := newMockConfigStore()

	calendarService = calendar
	configStore = config

	return calendar, config, func() {
		calendarService = oldCalendar
		configStore = oldConfig
	}
}
