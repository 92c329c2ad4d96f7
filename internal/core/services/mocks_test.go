package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// fakeIssuer is a scriptable TokenIssuer.
type fakeIssuer struct {
	mu          sync.Mutex
	issueFn     func(ctx context.Context, mode domain.PromptMode) (*domain.OAuthToken, error)
	revokeErr   error
	issuedModes []domain.PromptMode
	revoked     []string
}

func (f *fakeIssuer) Issue(ctx context.Context, mode domain.PromptMode) (*domain.OAuthToken, error) {
	f.mu.Lock()
	f.issuedModes = append(f.issuedModes, mode)
	fn := f.issueFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, mode)
	}
	return &domain.OAuthToken{AccessToken: "issued", TokenType: "Bearer"}, nil
}

func (f *fakeIssuer) Revoke(_ context.Context, accessToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, accessToken)
	return f.revokeErr
}

func (f *fakeIssuer) modes() []domain.PromptMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.PromptMode, len(f.issuedModes))
	copy(out, f.issuedModes)
	return out
}

// fakeEventSource is a scriptable EventSource that records queries.
type fakeEventSource struct {
	mu      sync.Mutex
	events  []domain.MeetingEvent
	err     error
	listFn  func(ctx context.Context, window domain.FetchWindow) ([]domain.MeetingEvent, error)
	windows []domain.FetchWindow
}

func (f *fakeEventSource) ListEvents(ctx context.Context, window domain.FetchWindow) ([]domain.MeetingEvent, error) {
	f.mu.Lock()
	f.windows = append(f.windows, window)
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, window)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeEventSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.windows)
}

// fakeFactory builds fakes and counts how often each phase runs.
type fakeFactory struct {
	issuer      driven.TokenIssuer
	events      driven.EventSource
	issuerErr   error
	eventsErr   error
	issuerDelay time.Duration
	eventsDelay time.Duration

	issuerCalls atomic.Int64
	eventsCalls atomic.Int64
}

func (f *fakeFactory) NewIssuer(ctx context.Context, _ string) (driven.TokenIssuer, error) {
	f.issuerCalls.Add(1)
	if f.issuerDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.issuerDelay):
		}
	}
	if f.issuerErr != nil {
		return nil, f.issuerErr
	}
	if f.issuer != nil {
		return f.issuer, nil
	}
	return &fakeIssuer{}, nil
}

func (f *fakeFactory) NewEventSource(ctx context.Context) (driven.EventSource, error) {
	f.eventsCalls.Add(1)
	if f.eventsDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.eventsDelay):
		}
	}
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	if f.events != nil {
		return f.events, nil
	}
	return &fakeEventSource{}, nil
}
