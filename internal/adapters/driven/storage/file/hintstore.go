// Package file implements the connection hint store over a TOML state file.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// stateFileName holds the durability hint between processes. It is advisory
// only: the hint never carries a token, just the connected flag and the
// client ID it corresponds to.
const stateFileName = "state.toml"

// Ensure HintStore implements the interface.
var _ driven.ConnectionHintStore = (*HintStore)(nil)

// hintFile is the on-disk shape of the durability hint.
type hintFile struct {
	Connected bool   `toml:"connected"`
	ClientID  string `toml:"client_id"`
}

// HintStore is a file-based connection hint store.
type HintStore struct {
	mu       sync.Mutex
	filePath string
}

// NewHintStore creates a hint store in the given state directory.
// If stateDir is empty, defaults to ~/.cadence.
func NewHintStore(stateDir string) (*HintStore, error) {
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		stateDir = filepath.Join(home, ".cadence")
	}

	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, err
	}

	return &HintStore{
		filePath: filepath.Join(stateDir, stateFileName),
	}, nil
}

// Load returns the stored hint. A missing or unreadable state file is
// treated as no hint rather than an error: the hint is advisory and a
// corrupt file must never block startup.
func (s *HintStore) Load() (domain.ConnectionHint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return domain.ConnectionHint{}, nil
	}

	var state hintFile
	if err := toml.Unmarshal(data, &state); err != nil {
		return domain.ConnectionHint{}, nil
	}

	return domain.ConnectionHint{
		Connected: state.Connected,
		ClientID:  state.ClientID,
	}, nil
}

// Save persists the hint with restricted permissions.
func (s *HintStore) Save(hint domain.ConnectionHint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(hintFile{
		Connected: hint.Connected,
		ClientID:  hint.ClientID,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Clear removes the hint.
func (s *HintStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the state file path.
func (s *HintStore) Path() string {
	return s.filePath
}
