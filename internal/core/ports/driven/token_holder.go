package driven

import (
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// TokenHolder is the single process-wide holder for the provider access
// token. It is an explicitly owned handle injected into the session store,
// auth controller and event fetcher rather than ambient global state.
// Only the auth controller writes it; everything else reads.
type TokenHolder interface {
	// Token returns the currently held token, or nil when none is held.
	// The result is derived live; callers must not cache it.
	Token() *domain.OAuthToken

	// SetToken installs a token, replacing any previous one.
	SetToken(token *domain.OAuthToken)

	// Clear removes the held token unconditionally.
	Clear()
}
