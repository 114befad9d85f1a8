// Package store is a development-mode stand-in for the real persistence
// layer: a small SQLite-backed chord-sheet store with an explicit
// open/reset/close lifecycle. It is constructed and injected by the
// caller; there is no package-level state. Production deployments replace
// it with their own persistence behind the same operations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"

	"github.com/chordsight/chordsight/model"
)

// ErrNotFound is returned when the requested sheet does not exist.
var ErrNotFound = errors.New("sheet not found")

// SheetInfo is the listing metadata for a stored sheet.
type SheetInfo struct {
	ID        int64
	Title     string
	Artist    string
	UpdatedAt time.Time
}

// Store persists chord sheets in a single SQLite database. Sheets are
// stored as their JSON document form with title/artist columns for
// listing.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path. Use ":memory:" for a
// throwaway in-memory store in tests.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS sheets (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		artist     TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Reset deletes every stored sheet. It exists for development and test
// lifecycles; the schema stays in place.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sheets`); err != nil {
		return fmt.Errorf("reset sheets: %w", err)
	}
	return nil
}

// Save inserts the sheet and returns its new id.
func (s *Store) Save(ctx context.Context, sheet *model.ChordSheet) (int64, error) {
	body, err := json.Marshal(sheet)
	if err != nil {
		return 0, fmt.Errorf("encode sheet: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sheets (title, artist, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		sheet.Title, sheet.Artist, string(body), now, now)
	if err != nil {
		return 0, fmt.Errorf("insert sheet: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert sheet: %w", err)
	}
	return id, nil
}

// Update replaces the stored sheet with the given id.
func (s *Store) Update(ctx context.Context, id int64, sheet *model.ChordSheet) error {
	body, err := json.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE sheets SET title=?, artist=?, body=?, updated_at=? WHERE id=?`,
		sheet.Title, sheet.Artist, string(body), now, id)
	if err != nil {
		return fmt.Errorf("update sheet: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get loads a sheet by id.
func (s *Store) Get(ctx context.Context, id int64) (*model.ChordSheet, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM sheets WHERE id=?`, id).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	var sheet model.ChordSheet
	if err := json.Unmarshal([]byte(body), &sheet); err != nil {
		return nil, fmt.Errorf("decode sheet %d: %w", id, err)
	}
	return &sheet, nil
}

// List returns metadata for all stored sheets, most recently updated
// first.
func (s *Store) List(ctx context.Context) ([]SheetInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, artist, updated_at FROM sheets ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var out []SheetInfo
	for rows.Next() {
		var info SheetInfo
		var updated string
		if err := rows.Scan(&info.ID, &info.Title, &info.Artist, &updated); err != nil {
			return nil, fmt.Errorf("list sheets: %w", err)
		}
		info.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	return out, nil
}

// Delete removes a sheet by id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sheets WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
