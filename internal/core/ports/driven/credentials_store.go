package driven

import (
	"context"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// CredentialsStore persists refresh tokens for connected accounts, keyed
// by OAuth client ID. Access tokens are never persisted.
type CredentialsStore interface {
	// GetByClientID returns the credentials for a client ID.
	// Returns domain.ErrNotFound when none are stored.
	GetByClientID(ctx context.Context, clientID string) (*domain.Credentials, error)

	// Save creates or replaces the credentials for their client ID.
	Save(ctx context.Context, creds domain.Credentials) error

	// DeleteByClientID removes the credentials for a client ID.
	// Deleting absent credentials is not an error.
	DeleteByClientID(ctx context.Context, clientID string) error
}
