package driven

import (
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// ConnectionHintStore persists the durability hint: a connected flag and
// the client ID it belongs to. The hint is advisory only: it decides
// whether a silent restore is attempted and is never treated as proof of
// authentication.
type ConnectionHintStore interface {
	// Load returns the stored hint. A missing hint is not an error; it
	// returns a zero-valued hint.
	Load() (domain.ConnectionHint, error)

	// Save persists the hint, replacing any previous one.
	Save(hint domain.ConnectionHint) error

	// Clear removes the hint. Clearing an absent hint is not an error.
	Clear() error
}
