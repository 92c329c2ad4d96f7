// Package auth provides the process-wide token holder for the provider
// access token.
package auth

import (
	"sync"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// Ensure TokenHolder implements the interface.
var _ driven.TokenHolder = (*TokenHolder)(nil)

// TokenHolder is the in-memory access token holder. One instance exists
// per process; it is injected into everything that needs request-time
// auth rather than accessed as a global. Tokens never touch disk.
type TokenHolder struct {
	mu    sync.RWMutex
	token *domain.OAuthToken
}

// NewTokenHolder creates an empty token holder.
func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Token returns a copy of the held token, or nil when none is held.
func (h *TokenHolder) Token() *domain.OAuthToken {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == nil {
		return nil
	}
	token := *h.token
	return &token
}

// SetToken installs a token, replacing any previous one.
func (h *TokenHolder) SetToken(token *domain.OAuthToken) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if token == nil {
		h.token = nil
		return
	}
	copied := *token
	h.token = &copied
}

// Clear removes the held token unconditionally.
func (h *TokenHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = nil
}
