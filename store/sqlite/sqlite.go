/*
Package sqlite provides a SQLite-backed term-record source.

PURPOSE:
  Persists the prescribed term starts so an operator can stage provisional
  dates ahead of publication and serve the engine from a database instead
  of a flat dataset file. Implements academic.Source; the engine itself
  never writes through this package at query time.

KEY TABLE:
  term_records: one row per term instance
    term        TEXT     full term name ("Michaelmas", ...)
    year        INTEGER  calendar year
    start       TEXT     week-1 Sunday, YYYY-MM-DD
    provisional INTEGER  0 finalized, 1 subject to revision

WAL MODE:
  Opened with WAL so readers don't block the occasional writer. A RWMutex
  guards the connection the same way; record upserts are rare and cheap.

USAGE:
  store, err := sqlite.New("./terms.db")
  ...
  db, err := academic.Open(store)

SEE ALSO:
  - academic/database.go: Source interface and validation
  - dataset/: flat-file and embedded sources
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/term-engine/academic"
	"github.com/warp/term-engine/datemath"
)

const startLayout = "2006-01-02"

// Store persists term records in SQLite and serves them as a Source.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (creating if needed) a SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serializes writers anyway, and a single pooled connection keeps
	// ":memory:" databases from vanishing between calls.
	db.SetMaxOpenConns(1)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS term_records (
		term        TEXT NOT NULL,
		year        INTEGER NOT NULL,
		start       TEXT NOT NULL,
		provisional INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (term, year)
	);

	CREATE INDEX IF NOT EXISTS idx_term_records_start
		ON term_records(start);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SOURCE IMPLEMENTATION
// =============================================================================

// Load returns every stored term record. An empty store reports
// ErrDataUnavailable: serving an empty database would make every
// conversion fail with a misleading range error instead.
func (s *Store) Load() ([]academic.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT term, year, start, provisional FROM term_records`)
	if err != nil {
		return nil, fmt.Errorf("query term records: %v: %w", err, academic.ErrDataUnavailable)
	}
	defer rows.Close()

	var records []academic.Record
	for rows.Next() {
		var (
			termName    string
			year        int
			startText   string
			provisional int
		)
		if err := rows.Scan(&termName, &year, &startText, &provisional); err != nil {
			return nil, fmt.Errorf("scan term record: %v: %w", err, academic.ErrDataUnavailable)
		}
		term, ok := academic.ParseTerm(termName)
		if !ok {
			return nil, fmt.Errorf("unknown term %q in store: %w", termName, academic.ErrDataUnavailable)
		}
		start, err := time.Parse(startLayout, startText)
		if err != nil {
			return nil, fmt.Errorf("bad start date %q in store: %w", startText, academic.ErrDataUnavailable)
		}
		records = append(records, academic.Record{
			Key:         academic.TermKey{Term: term, Year: year},
			Start:       datemath.DayOf(start),
			Provisional: provisional != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read term records: %v: %w", err, academic.ErrDataUnavailable)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("store holds no term records: %w", academic.ErrDataUnavailable)
	}
	return records, nil
}

// =============================================================================
// WRITES
// =============================================================================

// Put upserts one term record. Staging a revised start for an existing
// term instance replaces the previous row.
func (s *Store) Put(ctx context.Context, r academic.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putLocked(ctx, r)
}

// Seed bulk-loads records in a single transaction, typically from the
// compiled-in dataset on first run.
func (s *Store) Seed(ctx context.Context, records []academic.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	for _, r := range records {
		if err := putTx(ctx, tx, r); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) putLocked(ctx context.Context, r academic.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO term_records (term, year, start, provisional, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(term, year) DO UPDATE SET
			start = excluded.start,
			provisional = excluded.provisional,
			updated_at = excluded.updated_at`,
		r.Key.Term.String(), r.Key.Year,
		datemath.DayOf(r.Start).Format(startLayout),
		boolToInt(r.Provisional),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", r.Key, err)
	}
	return nil
}

func putTx(ctx context.Context, tx *sql.Tx, r academic.Record) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO term_records (term, year, start, provisional, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(term, year) DO UPDATE SET
			start = excluded.start,
			provisional = excluded.provisional,
			updated_at = excluded.updated_at`,
		r.Key.Term.String(), r.Key.Year,
		datemath.DayOf(r.Start).Format(startLayout),
		boolToInt(r.Provisional),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("seed %s: %w", r.Key, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
