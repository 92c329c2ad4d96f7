// Package memory provides in-memory implementations of the storage ports,
// used in tests and as fallbacks when no data directory is available.
package memory

import (
	"sync"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// Ensure HintStore implements the interface.
var _ driven.ConnectionHintStore = (*HintStore)(nil)

// HintStore is an in-memory connection hint store.
type HintStore struct {
	mu   sync.RWMutex
	hint domain.ConnectionHint
}

// NewHintStore creates an empty hint store.
func NewHintStore() *HintStore {
	return &HintStore{}
}

// Load returns the stored hint.
func (s *HintStore) Load() (domain.ConnectionHint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hint, nil
}

// Save persists the hint.
func (s *HintStore) Save(hint domain.ConnectionHint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hint = hint
	return nil
}

// Clear removes the hint.
func (s *HintStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hint = domain.ConnectionHint{}
	return nil
}
