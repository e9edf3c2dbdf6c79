/*
database.go - The prescribed term-start database

PURPOSE:
  Holds, per term instance, the prescribed Sunday on which week 1 of full
  term begins, plus a provisional flag for dates the governing body may
  still revise. Statutory boundaries (statutory.go) are computed; these
  start Sundays are prescribed data and must come from a source.

LIFECYCLE:
  A Database is built once by Open from a Source and is immutable
  thereafter. Reloading means opening a new Database; entries are never
  individually mutated. Because it is read-only after Open, a Database may
  be shared freely across concurrent readers without locking.

SOURCES:
  Anything implementing Source: the YAML dataset loader and compiled-in
  default (dataset package), or the SQLite store (store/sqlite).

INVARIANTS ENFORCED AT OPEN:
  - every start date is a Sunday
  - keys are unique
  - at least one record exists

SEE ALSO:
  - dataset/: file, embedded, and static sources
  - store/sqlite/: persistent source
*/
package academic

import (
	"fmt"
	"sort"
	"time"

	"github.com/warp/term-engine/datemath"
)

// =============================================================================
// RECORD
// =============================================================================

// Record is one prescribed term start.
type Record struct {
	Key TermKey

	// Start is the Sunday beginning week 1 of full term.
	Start time.Time

	// Provisional marks a start date not yet finalized by the
	// governing body.
	Provisional bool
}

// FullTermEnd returns the Sunday beginning week 8, the high end of the
// nominal full-term window on a week granularity. The last day of week 8
// is six days later.
func (r Record) FullTermEnd() time.Time {
	return r.Start.AddDate(0, 0, 7*7)
}

// WeekStart returns the first day of the given week of this term.
// Week numbers outside 1-8 are accepted and extrapolate the scheme.
func (r Record) WeekStart(week int) time.Time {
	return r.Start.AddDate(0, 0, 7*(week-1))
}

// =============================================================================
// SOURCE
// =============================================================================

// Source loads the full set of term records. Implementations report a
// missing or corrupt dataset by returning an error wrapping
// ErrDataUnavailable.
type Source interface {
	Load() ([]Record, error)
}

// =============================================================================
// DATABASE
// =============================================================================

// Database is the immutable mapping from term instance to prescribed start.
type Database struct {
	records map[TermKey]Record
	ordered []Record // ascending by start date
}

// Open loads all records from src and validates them. Construction is
// explicit: a failed load surfaces here, not on first use.
func Open(src Source) (*Database, error) {
	records, err := src.Load()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("source yielded no term records: %w", ErrDataUnavailable)
	}

	db := &Database{
		records: make(map[TermKey]Record, len(records)),
		ordered: make([]Record, 0, len(records)),
	}
	for _, r := range records {
		r.Start = datemath.DayOf(r.Start)
		if r.Start.Weekday() != time.Sunday {
			return nil, fmt.Errorf("%s: start %s is not a Sunday: %w",
				r.Key, r.Start.Format("02/01/2006"), ErrDataUnavailable)
		}
		if _, dup := db.records[r.Key]; dup {
			return nil, fmt.Errorf("duplicate record for %s: %w", r.Key, ErrDataUnavailable)
		}
		db.records[r.Key] = r
		db.ordered = append(db.ordered, r)
	}
	sort.Slice(db.ordered, func(i, j int) bool {
		return db.ordered[i].Start.Before(db.ordered[j].Start)
	})
	return db, nil
}

// Lookup returns the record for a term instance, if present.
func (db *Database) Lookup(term Term, year int) (Record, bool) {
	r, ok := db.records[TermKey{Term: term, Year: year}]
	return r, ok
}

// Records returns all records in ascending start order. The slice is a
// copy; callers may not mutate the database through it.
func (db *Database) Records() []Record {
	out := make([]Record, len(db.ordered))
	copy(out, db.ordered)
	return out
}

// Len returns the number of term records.
func (db *Database) Len() int {
	return len(db.ordered)
}
