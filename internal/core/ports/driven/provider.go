package driven

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// TokenIssuer obtains and revokes access tokens from the identity provider.
type TokenIssuer interface {
	// Issue requests an access token. With domain.PromptConsent it runs the
	// interactive consent flow; with domain.PromptNone it must complete
	// without any user-visible interaction and fail fast when it cannot.
	Issue(ctx context.Context, mode domain.PromptMode) (*domain.OAuthToken, error)

	// Revoke invalidates an access token with the provider. Advisory:
	// callers treat failures as non-fatal.
	Revoke(ctx context.Context, accessToken string) error
}

// EventSource queries the provider's events endpoint for a window and
// returns normalised meetings ordered by start time ascending.
type EventSource interface {
	ListEvents(ctx context.Context, window domain.FetchWindow) ([]domain.MeetingEvent, error)
}

// Provider is the initialised provider handle: the identity side that
// issues tokens and the REST side that serves events, sharing one token
// holder. Built exactly once per process by the bootstrapper.
type Provider struct {
	Issuer TokenIssuer
	Events EventSource
}

// ProviderFactory builds the two halves of the provider handle. Each
// build is invoked at most once per successful initialisation; the
// bootstrapper bounds both with timeouts.
type ProviderFactory interface {
	// NewIssuer builds the identity side for a client ID.
	NewIssuer(ctx context.Context, clientID string) (TokenIssuer, error)

	// NewEventSource builds the REST side.
	NewEventSource(ctx context.Context) (EventSource, error)
}
