package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed store for persisted refresh grants.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.cadence/data/cadence.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cadence", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cadence.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CredentialsStore returns a CredentialsStore interface backed by this store.
func (s *Store) CredentialsStore() driven.CredentialsStore {
	return &credentialsStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_credentials.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// credentialsStore implements driven.CredentialsStore.
type credentialsStore struct {
	store *Store
}

var _ driven.CredentialsStore = (*credentialsStore)(nil)

// GetByClientID retrieves the credentials for a client ID.
func (s *credentialsStore) GetByClientID(ctx context.Context, clientID string) (*domain.Credentials, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, client_id, account_email, refresh_token, created_at, updated_at
		FROM credentials WHERE client_id = ?
	`, clientID)

	var creds domain.Credentials
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&creds.ID, &creds.ClientID, &creds.AccountEmail,
		&creds.RefreshToken, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning credentials: %w", err)
	}

	if createdAt.Valid {
		creds.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		creds.UpdatedAt = updatedAt.Time
	}

	return &creds, nil
}

// Save stores or updates the credentials for their client ID.
func (s *credentialsStore) Save(ctx context.Context, creds domain.Credentials) error {
	if creds.ID == "" || creds.ClientID == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if creds.CreatedAt.IsZero() {
		creds.CreatedAt = now
	}
	creds.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO credentials (id, client_id, account_email, refresh_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			account_email = excluded.account_email,
			refresh_token = excluded.refresh_token,
			updated_at = excluded.updated_at
	`, creds.ID, creds.ClientID, creds.AccountEmail, creds.RefreshToken,
		creds.CreatedAt, creds.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

// DeleteByClientID removes the credentials for a client ID.
func (s *credentialsStore) DeleteByClientID(ctx context.Context, clientID string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM credentials WHERE client_id = ?", clientID)
	if err != nil {
		return fmt.Errorf("deleting credentials: %w", err)
	}
	return nil
}
