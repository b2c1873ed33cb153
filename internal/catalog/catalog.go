// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records generated syllabus documents in a SQLite
// database so past builds can be listed.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/syllabus/pkg/types"
)

const (
	dbFile            = "syllabus.db"
	defaultMaxResults = 20

	// timeLayout is fixed-width so created_at sorts as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Entry is one recorded build.
type Entry struct {
	ID           string    `json:"id" yaml:"id"`
	Path         string    `json:"path" yaml:"path"`
	Title        string    `json:"title" yaml:"title"`
	Instructor   string    `json:"instructor" yaml:"instructor"`
	Topics       int       `json:"topics" yaml:"topics"`
	ScheduleRows int       `json:"schedule_rows" yaml:"schedule_rows"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// NewEntry describes a build of c written to path.
func NewEntry(c types.Course, path string, at time.Time) Entry {
	return Entry{
		Path:         path,
		Title:        c.Title,
		Instructor:   c.Instructor,
		Topics:       len(c.Topics),
		ScheduleRows: len(c.Schedule),
		CreatedAt:    at,
	}
}

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates catalogDir/syllabus.db and its schema.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS builds (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			title TEXT,
			instructor TEXT,
			topics INTEGER,
			schedule_rows INTEGER,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_created_at ON builds(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e and returns it with its ID filled in. An empty ID gets a
// new UUID; a zero CreatedAt gets the current time.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO builds (id, path, title, instructor, topics, schedule_rows, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Path, e.Title, e.Instructor, e.Topics, e.ScheduleRows,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("recording build %s: %w", e.Path, err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. A limit of zero or less
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, title, instructor, topics, schedule_rows, created_at
		 FROM builds ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			created string
		)
		if err := rows.Scan(&e.ID, &e.Path, &e.Title, &e.Instructor, &e.Topics, &e.ScheduleRows, &created); err != nil {
			return nil, fmt.Errorf("scanning build: %w", err)
		}
		e.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
