package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// Default bootstrap deadlines. Each half of the provider handle gets its
// own budget inside the overall one.
const (
	defaultPhaseTimeout   = 10 * time.Second
	defaultOverallTimeout = 15 * time.Second
)

// Bootstrapper builds the provider handle exactly once per process.
// Initialize is idempotent: concurrent and repeated calls while an attempt
// is in flight attach to that attempt instead of starting another. A failed
// attempt leaves no partial handle, so a later call may retry.
type Bootstrapper struct {
	factory        driven.ProviderFactory
	phaseTimeout   time.Duration
	overallTimeout time.Duration

	mu       sync.Mutex
	provider *driven.Provider
	pending  chan struct{}
	lastErr  error
}

// BootstrapOption configures a Bootstrapper.
type BootstrapOption func(*Bootstrapper)

// WithBootstrapTimeouts overrides the per-phase and overall deadlines.
func WithBootstrapTimeouts(phase, overall time.Duration) BootstrapOption {
	return func(b *Bootstrapper) {
		b.phaseTimeout = phase
		b.overallTimeout = overall
	}
}

// NewBootstrapper creates a bootstrapper over a provider factory.
func NewBootstrapper(factory driven.ProviderFactory, opts ...BootstrapOption) *Bootstrapper {
	b := &Bootstrapper{
		factory:        factory,
		phaseTimeout:   defaultPhaseTimeout,
		overallTimeout: defaultOverallTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Initialize returns the provider handle, building it on first call.
// Returns domain.ErrNotConfigured when clientID is empty,
// domain.ErrInitTimeout when a phase exceeds its deadline and
// domain.ErrProviderInit for construction failures.
func (b *Bootstrapper) Initialize(ctx context.Context, clientID string) (*driven.Provider, error) {
	if clientID == "" {
		return nil, domain.ErrNotConfigured
	}

	b.mu.Lock()
	if b.provider != nil {
		p := b.provider
		b.mu.Unlock()
		return p, nil
	}
	if b.pending != nil {
		// Attach to the in-flight attempt rather than starting another.
		done := b.pending
		b.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.provider != nil {
			return b.provider, nil
		}
		return nil, b.lastErr
	}
	done := make(chan struct{})
	b.pending = done
	b.mu.Unlock()

	provider, err := b.build(ctx, clientID)

	b.mu.Lock()
	if err == nil {
		b.provider = provider
	}
	b.lastErr = err
	b.pending = nil
	close(done)
	b.mu.Unlock()

	return provider, err
}

// Provider returns the handle once initialised, or nil.
func (b *Bootstrapper) Provider() *driven.Provider {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.provider
}

// build constructs both halves of the handle under the overall deadline.
func (b *Bootstrapper) build(ctx context.Context, clientID string) (*driven.Provider, error) {
	octx, cancel := context.WithTimeout(ctx, b.overallTimeout)
	defer cancel()

	logger.Debug("bootstrapping provider for client %s", clientID)

	issuer, err := buildPhase(octx, b.phaseTimeout, "identity", func(ctx context.Context) (driven.TokenIssuer, error) {
		return b.factory.NewIssuer(ctx, clientID)
	})
	if err != nil {
		return nil, err
	}

	events, err := buildPhase(octx, b.phaseTimeout, "events client", func(ctx context.Context) (driven.EventSource, error) {
		return b.factory.NewEventSource(ctx)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("provider handle ready")
	return &driven.Provider{Issuer: issuer, Events: events}, nil
}

// buildPhase runs one construction phase under its own deadline and maps
// failures onto the domain error taxonomy.
func buildPhase[T any](ctx context.Context, timeout time.Duration, name string, build func(context.Context) (T, error)) (T, error) {
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := build(pctx)
	if err != nil {
		var zero T
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(pctx.Err(), context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w: %s", domain.ErrInitTimeout, name)
		}
		return zero, fmt.Errorf("%w: %s: %v", domain.ErrProviderInit, name, err)
	}
	return v, nil
}
