package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one journaled rename.
type Entry struct {
	ID          int64
	RunID       string
	Source      string
	Destination string
	RenamedAt   time.Time
}

// Store appends and lists journal entries.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends a committed rename.
func (s *Store) Record(ctx context.Context, runID, source, destination string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renames (run_id, source_path, destination_path, renamed_at) VALUES (?, ?, ?, ?)`,
		runID, source, destination, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert rename: %w", err)
	}
	return nil
}

// Recent lists up to limit entries, newest first. A limit <= 0 lists all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, run_id, source_path, destination_path, renamed_at FROM renames ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query renames: %w", err)
	}
	return scanEntries(rows)
}

// RunEntries lists the entries of a single run in insertion order.
func (s *Store) RunEntries(ctx context.Context, runID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, source_path, destination_path, renamed_at FROM renames WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			renamedAt string
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Source, &e.Destination, &renamedAt); err != nil {
			return nil, fmt.Errorf("scan rename: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, renamedAt)
		if err != nil {
			return nil, fmt.Errorf("parse renamed_at %q: %w", renamedAt, err)
		}
		e.RenamedAt = ts
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renames: %w", err)
	}
	return entries, nil
}
