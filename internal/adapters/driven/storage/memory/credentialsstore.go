package memory

import (
	"context"
	"sync"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// Ensure CredentialsStore implements the interface.
var _ driven.CredentialsStore = (*CredentialsStore)(nil)

// CredentialsStore is an in-memory credentials store keyed by client ID.
type CredentialsStore struct {
	mu    sync.RWMutex
	creds map[string]domain.Credentials
}

// NewCredentialsStore creates an empty credentials store.
func NewCredentialsStore() *CredentialsStore {
	return &CredentialsStore{
		creds: make(map[string]domain.Credentials),
	}
}

// GetByClientID returns the credentials for a client ID.
func (s *CredentialsStore) GetByClientID(_ context.Context, clientID string) (*domain.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.creds[clientID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := creds
	return &copied, nil
}

// Save creates or replaces the credentials for their client ID.
func (s *CredentialsStore) Save(_ context.Context, creds domain.Credentials) error {
	if creds.ClientID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[creds.ClientID] = creds
	return nil
}

// DeleteByClientID removes the credentials for a client ID.
func (s *CredentialsStore) DeleteByClientID(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, clientID)
	return nil
}
