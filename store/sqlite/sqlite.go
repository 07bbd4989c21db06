/*
Package sqlite provides a SQLite-backed store of calendar definitions.

PURPOSE:
  Persists ruleset JSON per calendar code so deployments can manage
  holiday data without rebuilding the binary. The ruleset implementation
  reads from this store when the "ruleset.db" configuration key points at
  a database file; otherwise it falls back to the embedded presets.

KEY TABLE:
  calendar_definitions:  code -> definition JSON, versioned on update

WAL MODE:
  The database is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/calendars.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  def, err := store.Definition(ctx, "us")

SEE ALSO:
  - ruleset/manager.go: consumes this store during Init
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrDefinitionNotFound is returned when no definition exists for a
// calendar code.
var ErrDefinitionNotFound = errors.New("calendar definition not found")

// Definition is a stored calendar definition record.
type Definition struct {
	Code        string
	Description string
	JSON        string
	Version     int
	UpdatedAt   time.Time
}

// Store persists calendar definitions in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store for the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calendar_definitions (
		code            TEXT PRIMARY KEY,
		description     TEXT NOT NULL DEFAULT '',
		definition_json TEXT NOT NULL,
		version         INTEGER NOT NULL DEFAULT 1,
		updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveDefinition inserts or replaces the definition for a code. Updates
// bump the stored version.
func (s *Store) SaveDefinition(ctx context.Context, code, description, definitionJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calendar_definitions (code, description, definition_json, version, updated_at)
		VALUES (?, ?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(code) DO UPDATE SET
			description     = excluded.description,
			definition_json = excluded.definition_json,
			version         = calendar_definitions.version + 1,
			updated_at      = CURRENT_TIMESTAMP
	`, code, description, definitionJSON)
	if err != nil {
		return fmt.Errorf("failed to save definition %q: %w", code, err)
	}
	return nil
}

// Definition loads the definition record for a code.
func (s *Store) Definition(ctx context.Context, code string) (Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var def Definition
	err := s.db.QueryRowContext(ctx, `
		SELECT code, description, definition_json, version, updated_at
		FROM calendar_definitions
		WHERE code = ?
	`, code).Scan(&def.Code, &def.Description, &def.JSON, &def.Version, &def.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Definition{}, fmt.Errorf("%w: %q", ErrDefinitionNotFound, code)
	}
	if err != nil {
		return Definition{}, fmt.Errorf("failed to load definition %q: %w", code, err)
	}
	return def, nil
}

// ListCodes returns all stored calendar codes, sorted.
func (s *Store) ListCodes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT code FROM calendar_definitions ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
