package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// Ensure Coordinator implements the driving port.
var _ driving.CalendarService = (*Coordinator)(nil)

// Coordinator composes bootstrap, session restore, auth and fetching into
// the observable calendar state consumed by the CLI, TUI and MCP surfaces.
// All access is serialised by a mutex; concurrent meetings fetches carry a
// generation counter so stale responses never overwrite newer ones.
type Coordinator struct {
	clientID    string
	boot        *Bootstrapper
	holder      driven.TokenHolder
	hints       driven.ConnectionHintStore
	creds       driven.CredentialsStore
	now         func() time.Time
	sessionOpts []SessionOption

	mu       sync.Mutex
	state    driving.CalendarState
	auth     *AuthController
	fetcher  *EventFetcher
	session  *SessionStore
	fetchGen uint64
	onChange func(driving.CalendarState)
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithClock overrides the coordinator's time source.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) { c.now = now }
}

// WithSessionOptions forwards options to the session store built on Start.
func WithSessionOptions(opts ...SessionOption) CoordinatorOption {
	return func(c *Coordinator) { c.sessionOpts = opts }
}

// NewCoordinator creates a coordinator for a client ID. The initial state
// is loading until Start settles it.
func NewCoordinator(
	clientID string,
	boot *Bootstrapper,
	holder driven.TokenHolder,
	hints driven.ConnectionHintStore,
	creds driven.CredentialsStore,
	opts ...CoordinatorOption,
) *Coordinator {
	c := &Coordinator{
		clientID: clientID,
		boot:     boot,
		holder:   holder,
		hints:    hints,
		creds:    creds,
		now:      time.Now,
		state:    driving.CalendarState{Loading: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start implements driving.CalendarService. A missing client ID settles
// into a terminal configuration error without any network activity.
func (c *Coordinator) Start(ctx context.Context) {
	if c.clientID == "" {
		c.update(func(st *driving.CalendarState) {
			st.Loading = false
			st.Err = humanMessage(domain.ErrNotConfigured)
		})
		return
	}

	provider, err := c.boot.Initialize(ctx, c.clientID)
	if err != nil {
		logger.Warn("bootstrap failed: %v", err)
		c.update(func(st *driving.CalendarState) {
			st.Loading = false
			st.Err = humanMessage(err)
		})
		return
	}

	c.mu.Lock()
	c.auth = NewAuthController(c.clientID, provider.Issuer, c.holder, c.hints, c.creds)
	c.fetcher = NewEventFetcher(c.holder, provider.Events)
	c.session = NewSessionStore(c.clientID, c.holder, c.hints, c.auth, c.sessionOpts...)
	c.mu.Unlock()

	c.update(func(st *driving.CalendarState) { st.Initialized = true })

	status, _ := c.session.Restore(ctx)
	authed := status == domain.StatusAuthenticated

	became := false
	c.update(func(st *driving.CalendarState) {
		became = authed && !st.Authenticated
		st.Authenticated = authed
		st.Loading = false
	})

	if became {
		c.fetchCurrentMonth(ctx)
	}
}

// Snapshot implements driving.CalendarService.
func (c *Coordinator) Snapshot() driving.CalendarState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneState(c.state)
}

// SetOnChange implements driving.CalendarService.
func (c *Coordinator) SetOnChange(fn func(driving.CalendarState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// SignIn implements driving.CalendarService: the interactive consent flow.
// Every explicit call re-prompts consent.
func (c *Coordinator) SignIn(ctx context.Context) error {
	auth := c.authController()
	if auth == nil {
		return fmt.Errorf("%w: not initialised", domain.ErrProviderInit)
	}

	c.update(func(st *driving.CalendarState) {
		st.Loading = true
		st.Err = ""
	})

	err := auth.SignIn(ctx, domain.PromptConsent)

	became := false
	c.update(func(st *driving.CalendarState) {
		st.Loading = false
		if err != nil {
			st.Authenticated = false
			st.Err = humanMessage(err)
			return
		}
		became = !st.Authenticated
		st.Authenticated = true
	})
	if err != nil {
		return err
	}

	if became {
		c.fetchCurrentMonth(ctx)
	}
	return nil
}

// SignOut implements driving.CalendarService. Local sign-out always
// succeeds; remote revocation is best effort inside the controller.
// Durable state is cleared even before bootstrap, when there is no
// issuer to revoke with.
func (c *Coordinator) SignOut(ctx context.Context) {
	auth := c.authController()
	if auth != nil {
		auth.SignOut(ctx)
	} else {
		c.holder.Clear()
		if err := c.hints.Clear(); err != nil {
			logger.Debug("clearing connection hint: %v", err)
		}
		if err := c.creds.DeleteByClientID(ctx, c.clientID); err != nil {
			logger.Debug("clearing credentials: %v", err)
		}
	}

	c.update(func(st *driving.CalendarState) {
		st.Authenticated = false
		st.Meetings = nil
		st.Err = ""
	})
}

// FetchMeetings implements driving.CalendarService. Responses resolving
// after a newer fetch began are discarded rather than overwriting state.
func (c *Coordinator) FetchMeetings(ctx context.Context, window *domain.FetchWindow) error {
	fetcher := c.eventFetcher()
	if fetcher == nil {
		return fmt.Errorf("%w: not initialised", domain.ErrProviderInit)
	}

	c.mu.Lock()
	c.fetchGen++
	gen := c.fetchGen
	c.state.LoadingMeetings = true
	c.state.Err = ""
	st := cloneState(c.state)
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(st)
	}

	meetings, err := fetcher.FetchEvents(ctx, window)

	c.mu.Lock()
	if gen != c.fetchGen {
		// A newer fetch is in flight or already resolved.
		c.mu.Unlock()
		logger.Debug("discarding stale meetings response (generation %d)", gen)
		return err
	}
	c.state.LoadingMeetings = false
	if err != nil {
		c.state.Meetings = nil
		c.state.Err = humanMessage(err)
	} else {
		c.state.Meetings = meetings
	}
	st = cloneState(c.state)
	fn = c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(st)
	}

	return err
}

// Session implements driving.CalendarService.
func (c *Coordinator) Session(ctx context.Context) domain.Session {
	session := domain.Session{ClientID: c.clientID}
	session.HasToken = c.holder.Token().IsUsable()

	if hint, err := c.hints.Load(); err == nil {
		session.WasConnectedHint = hint.Matches(c.clientID)
	}
	if creds, err := c.creds.GetByClientID(ctx, c.clientID); err == nil {
		session.AccountEmail = creds.AccountEmail
	}
	return session
}

// fetchCurrentMonth is the implicit fetch triggered when the session
// becomes authenticated.
func (c *Coordinator) fetchCurrentMonth(ctx context.Context) {
	window := domain.MonthWindow(c.now())
	if err := c.FetchMeetings(ctx, &window); err != nil {
		logger.Debug("implicit month fetch failed: %v", err)
	}
}

func (c *Coordinator) authController() *AuthController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.auth
}

func (c *Coordinator) eventFetcher() *EventFetcher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetcher
}

// update applies a state mutation and notifies the observer.
func (c *Coordinator) update(mutate func(*driving.CalendarState)) {
	c.mu.Lock()
	mutate(&c.state)
	st := cloneState(c.state)
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}

// cloneState copies the state including its meetings slice.
func cloneState(st driving.CalendarState) driving.CalendarState {
	out := st
	if st.Meetings != nil {
		out.Meetings = make([]domain.MeetingEvent, len(st.Meetings))
		copy(out.Meetings, st.Meetings)
	}
	return out
}

// humanMessage converts a failure into the message shown inline to users.
func humanMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return "Google Client ID not configured"
	case errors.Is(err, domain.ErrInitTimeout):
		return "Initialisation timed out. Check your internet connection and try again."
	case errors.Is(err, domain.ErrProviderInit):
		return "Failed to initialise Google Calendar. Check your internet connection and try again."
	case errors.Is(err, domain.ErrBrowserLaunch):
		return "Could not open your browser for consent. Open the printed URL manually, or check your browser settings."
	case errors.Is(err, domain.ErrConsentDenied):
		return "Google Calendar access was declined. Connect again to grant access."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Not connected to Google Calendar. Run connect first."
	default:
		return err.Error()
	}
}
