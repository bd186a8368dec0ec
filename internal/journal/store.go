// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal keeps a SQLite history of conversions.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docconv/pkg/types"
)

// DefaultLimit is the number of records List returns when limit <= 0.
const DefaultLimit = 20

// timeLayout is fixed-width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			direction TEXT NOT NULL,
			backend TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			pages TEXT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_started_at ON conversions(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends rec to the journal.
func (s *Store) Record(ctx context.Context, rec types.ConversionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, direction, backend, input, output, pages, started_at, duration_ms, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Direction), rec.Backend, rec.Input, rec.Output, rec.Pages,
		rec.StartedAt.UTC().Format(timeLayout), rec.Duration.Milliseconds(),
		string(rec.Status), rec.Error,
	)
	if err != nil {
		return fmt.Errorf("inserting conversion %s: %w", rec.ID, err)
	}
	return nil
}

// List returns up to limit records, most recent first.
func (s *Store) List(ctx context.Context, limit int) ([]types.ConversionRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, direction, backend, input, output, pages, started_at, duration_ms, status, error
		FROM conversions ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		var (
			rec        types.ConversionRecord
			direction  string
			status     string
			pages      sql.NullString
			startedAt  string
			durationMS int64
			errText    sql.NullString
		)
		if err := rows.Scan(&rec.ID, &direction, &rec.Backend, &rec.Input, &rec.Output, &pages,
			&startedAt, &durationMS, &status, &errText); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		rec.Direction = types.Direction(direction)
		rec.Status = types.ConversionStatus(status)
		rec.Pages = pages.String
		rec.Error = errText.String
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		t, err := time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning conversion %s: started_at: %w", rec.ID, err)
		}
		rec.StartedAt = t
		records = append(records, rec)
	}
	return records, rows.Err()
}
