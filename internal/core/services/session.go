package services

import (
	"context"
	"time"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// Token restore polling defaults. The holder may be populated
// asynchronously after bootstrap, and there is no readiness signal to
// subscribe to, so the authoritative check is retried with bounded
// backoff before concluding the session is gone.
const (
	defaultRestoreAttempts = 6
	defaultRestoreInterval = 500 * time.Millisecond
)

// signInController is the slice of AuthController the session store needs.
type signInController interface {
	SignIn(ctx context.Context, mode domain.PromptMode) error
}

// SessionStore establishes the session status on startup: authoritative
// token check first, then a silent reauthentication attempt guided by the
// durability hint.
type SessionStore struct {
	clientID string
	holder   driven.TokenHolder
	hints    driven.ConnectionHintStore
	auth     signInController

	attempts int
	interval time.Duration
}

// SessionOption configures a SessionStore.
type SessionOption func(*SessionStore)

// WithRestorePolicy overrides the bounded-retry polling policy.
func WithRestorePolicy(attempts int, interval time.Duration) SessionOption {
	return func(s *SessionStore) {
		s.attempts = attempts
		s.interval = interval
	}
}

// NewSessionStore creates a session store for a client ID.
func NewSessionStore(
	clientID string,
	holder driven.TokenHolder,
	hints driven.ConnectionHintStore,
	auth signInController,
	opts ...SessionOption,
) *SessionStore {
	s := &SessionStore{
		clientID: clientID,
		holder:   holder,
		hints:    hints,
		auth:     auth,
		attempts: defaultRestoreAttempts,
		interval: defaultRestoreInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore returns the session status for the client ID. A silent-restore
// failure is an expected steady-state outcome (token expiry): it clears
// the stale hint and reports unauthenticated without surfacing an error.
func (s *SessionStore) Restore(ctx context.Context) (domain.SessionStatus, error) {
	if s.holder.Token().IsUsable() {
		logger.Debug("existing token found, session restored")
		return domain.StatusAuthenticated, nil
	}

	hint, err := s.hints.Load()
	if err != nil {
		logger.Debug("loading connection hint: %v", err)
		return domain.StatusUnauthenticated, nil
	}
	if !hint.Matches(s.clientID) {
		// A hint for a different client ID is equivalent to no hint.
		return domain.StatusUnauthenticated, nil
	}

	logger.Debug("previous connection found, polling for restored token")
	if s.pollForToken(ctx) {
		return domain.StatusAuthenticated, nil
	}

	logger.Debug("attempting silent reauthentication")
	if err := s.auth.SignIn(ctx, domain.PromptNone); err != nil {
		// Normal when the grant expired; the hint is stale.
		logger.Debug("silent restore failed: %v", err)
		if clearErr := s.hints.Clear(); clearErr != nil {
			logger.Debug("clearing stale hint: %v", clearErr)
		}
		return domain.StatusUnauthenticated, nil
	}

	logger.Info("session restored silently")
	return domain.StatusAuthenticated, nil
}

// pollForToken re-runs the authoritative check with bounded backoff.
func (s *SessionStore) pollForToken(ctx context.Context) bool {
	for attempt := 1; attempt < s.attempts; attempt++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.interval):
		}
		if s.holder.Token().IsUsable() {
			return true
		}
	}
	return false
}
