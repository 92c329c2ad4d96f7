package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authadapter "github.com/cadence-labs/cadence-cli/internal/adapters/driven/auth"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/storage/memory"
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// fastRestore keeps polling out of the test's critical path.
var fastRestore = WithRestorePolicy(2, time.Millisecond)

func TestSessionStore_UsableTokenWins(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	holder.SetToken(&domain.OAuthToken{AccessToken: "at", Expiry: time.Now().Add(time.Hour)})
	issuer := &fakeIssuer{}
	hints := memory.NewHintStore()
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, fastRestore)
	status, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAuthenticated, status)
	// Authoritative check satisfied: no sign-in attempted.
	assert.Empty(t, issuer.modes())
}

func TestSessionStore_NoHintSettlesUnauthenticated(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	issuer := &fakeIssuer{}
	hints := memory.NewHintStore()
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, fastRestore)
	status, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnauthenticated, status)
	assert.Empty(t, issuer.modes())
}

func TestSessionStore_HintForOtherClientIgnored(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	issuer := &fakeIssuer{}
	hints := memory.NewHintStore()
	require.NoError(t, hints.Save(domain.ConnectionHint{Connected: true, ClientID: "someone-else"}))
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, fastRestore)
	status, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnauthenticated, status)
	assert.Empty(t, issuer.modes())
	// The foreign hint is left alone.
	hint, loadErr := hints.Load()
	require.NoError(t, loadErr)
	assert.True(t, hint.Connected)
}

func TestSessionStore_SilentRestoreSucceeds(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	issuer := &fakeIssuer{
		issueFn: func(_ context.Context, mode domain.PromptMode) (*domain.OAuthToken, error) {
			return &domain.OAuthToken{AccessToken: "restored", Expiry: time.Now().Add(time.Hour)}, nil
		},
	}
	hints := memory.NewHintStore()
	require.NoError(t, hints.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, fastRestore)
	status, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAuthenticated, status)
	assert.Equal(t, []domain.PromptMode{domain.PromptNone}, issuer.modes())
	require.NotNil(t, holder.Token())
	assert.Equal(t, "restored", holder.Token().AccessToken)
}

func TestSessionStore_SilentFailureClearsHintSilently(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	issuer := &fakeIssuer{
		issueFn: func(_ context.Context, _ domain.PromptMode) (*domain.OAuthToken, error) {
			return nil, domain.ErrSilentSignIn
		},
	}
	hints := memory.NewHintStore()
	require.NoError(t, hints.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, fastRestore)
	status, err := s.Restore(context.Background())

	// Expected steady-state outcome: no error surfaced.
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnauthenticated, status)

	hint, loadErr := hints.Load()
	require.NoError(t, loadErr)
	assert.False(t, hint.Connected)
}

func TestSessionStore_PollFindsLateToken(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	issuer := &fakeIssuer{}
	hints := memory.NewHintStore()
	require.NoError(t, hints.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, WithRestorePolicy(6, 10*time.Millisecond))

	go func() {
		time.Sleep(25 * time.Millisecond)
		holder.SetToken(&domain.OAuthToken{AccessToken: "late", Expiry: time.Now().Add(time.Hour)})
	}()

	status, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAuthenticated, status)
	assert.Empty(t, issuer.modes())
}

func TestSessionStore_PollStopsOnContextCancel(t *testing.T) {
	holder := authadapter.NewTokenHolder()
	issuer := &fakeIssuer{
		issueFn: func(_ context.Context, _ domain.PromptMode) (*domain.OAuthToken, error) {
			return nil, domain.ErrSilentSignIn
		},
	}
	hints := memory.NewHintStore()
	require.NoError(t, hints.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))
	auth := NewAuthController("client-1", issuer, holder, hints, memory.NewCredentialsStore())

	s := NewSessionStore("client-1", holder, hints, auth, WithRestorePolicy(6, time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	var status domain.SessionStatus
	go func() {
		status, _ = s.Restore(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("restore did not return after cancellation")
	}
	assert.Equal(t, domain.StatusUnauthenticated, status)
}
