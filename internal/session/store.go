// Package session persists authorized Last.fm sessions in SQLite so the CLI
// and the example server can switch between accounts without
// re-authenticating.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no session is stored for a username.
var ErrNotFound = errors.New("session: not found")

// Store manages stored sessions using SQLite
type Store struct {
	db *sql.DB
}

// Record is one authorized session.
type Record struct {
	Username   string
	Key        string
	Subscriber bool
	Active     bool
	CreatedAt  time.Time
	LastUsedAt time.Time
}

// NewStore opens (or creates) the session database at dbPath. ":memory:"
// gives a private in-memory store.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",   // Write-Ahead Logging for concurrent access
		"PRAGMA temp_store = MEMORY",  // Use memory for temp tables
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			username TEXT PRIMARY KEY,
			session_key TEXT NOT NULL,
			subscriber BOOLEAN NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			last_used_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_last_used ON sessions(last_used_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put stores a session, replacing any previous key for the same user. The
// first session ever stored becomes the active one.
func (s *Store) Put(ctx context.Context, username, key string, subscriber bool) error {
	if username == "" || key == "" {
		return fmt.Errorf("session: username and key are required")
	}

	now := time.Now().Unix()
	query := `
		INSERT INTO sessions (username, session_key, subscriber, active, created_at, last_used_at)
		VALUES (?, ?, ?, NOT EXISTS (SELECT 1 FROM sessions), ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			session_key = excluded.session_key,
			subscriber = excluded.subscriber,
			last_used_at = excluded.last_used_at
	`

	if _, err := s.db.ExecContext(ctx, query, username, key, subscriber, now, now); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the session stored for username.
func (s *Store) Get(ctx context.Context, username string) (*Record, error) {
	return s.queryOne(ctx, "WHERE username = ?", username)
}

// Active returns the session marked active, or ErrNotFound.
func (s *Store) Active(ctx context.Context) (*Record, error) {
	return s.queryOne(ctx, "WHERE active = 1")
}

// SetActive marks username as the active session and clears the flag on
// every other session.
func (s *Store) SetActive(ctx context.Context, username string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		"UPDATE sessions SET active = 1, last_used_at = ? WHERE username = ?",
		time.Now().Unix(), username)
	if err != nil {
		return fmt.Errorf("failed to activate session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, username)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE sessions SET active = 0 WHERE username != ?", username); err != nil {
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Touch records that username's session was just used.
func (s *Store) Touch(ctx context.Context, username string) error {
	return s.execOne(ctx, "UPDATE sessions SET last_used_at = ? WHERE username = ?", username, time.Now().Unix(), username)
}

// Delete removes the session stored for username.
func (s *Store) Delete(ctx context.Context, username string) error {
	return s.execOne(ctx, "DELETE FROM sessions WHERE username = ?", username, username)
}

// List returns every stored session, most recently used first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, selectSessions+" ORDER BY last_used_at DESC, username ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return records, nil
}

// Prune removes inactive sessions not used within maxAge
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE active = 0 AND last_used_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Count returns the number of stored sessions
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

const selectSessions = `
	SELECT username, session_key, subscriber, active, created_at, last_used_at
	FROM sessions
`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var r Record
	var created, lastUsed int64

	err := row.Scan(&r.Username, &r.Key, &r.Subscriber, &r.Active, &created, &lastUsed)
	if err != nil {
		return nil, err
	}

	r.CreatedAt = time.Unix(created, 0)
	r.LastUsedAt = time.Unix(lastUsed, 0)
	return &r, nil
}

func (s *Store) queryOne(ctx context.Context, where string, args ...any) (*Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, selectSessions+where, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return r, nil
}

// execOne runs a single-row statement, mapping "no rows" to ErrNotFound.
func (s *Store) execOne(ctx context.Context, query, username string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", username, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, username)
	}

	return nil
}
