// ABOUTME: SQLite-backed slot store for persistence across restarts
// ABOUTME: One row per slot; values are replaced whole

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gistfm-api/core/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

const (
	maxKeyLength   = 255
	// a slot holds a whole list, e.g. every bookmark, so the cap is generous
	maxValueLength = 64 * 1024 * 1024
)

// Store implements the Store interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens or creates the database at filePath
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "gistfm.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates the slots table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL DEFAULT (strftime('%s','now'))
		);
	`

	_, err := s.db.Exec(query)
	return err
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: %d bytes (max %d)", len(key), maxKeyLength)
	}
	return nil
}

// Get retrieves the value held in a slot
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set replaces the value held in a slot
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: %d bytes (max %d)", len(value), maxValueLength)
	}
	if value == nil {
		value = []byte{}
	}

	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, strftime('%s','now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete empties a slot
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
