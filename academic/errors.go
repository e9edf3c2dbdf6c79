/*
errors.go - Centralized error types for the academic engine

ERROR CATEGORIES:
  1. Range errors - The query falls outside database coverage. Fatal to the
     call and propagated: guessing term boundaries beyond the known dataset
     would silently produce wrong answers.
  2. Data errors  - The term dataset is missing, corrupt, or violates an
     invariant at load time.

NOT ERRORS:
  "Date is not in term for the requested mode" and "text did not parse" are
  normal outcomes. They are modeled as nil results so callers can tell
  "no such academic date" apart from "the system failed".

USAGE:
  if errors.Is(err, academic.ErrOutOfRange) { ... }

SEE ALSO:
  - convert.go:  raises RangeError
  - database.go: raises ErrDataUnavailable
*/
package academic

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrOutOfRange is returned when a queried date or term-year has no
	// covering entry in the term database.
	ErrOutOfRange = errors.New("outside term database coverage")

	// ErrDataUnavailable is returned when the term dataset source is
	// missing, empty, or corrupt.
	ErrDataUnavailable = errors.New("term data unavailable")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the failing query
// =============================================================================

// RangeError reports which query fell outside database coverage.
// Exactly one of Date/Key is meaningful: Date for forward conversions,
// Key for inverse conversions and in-term lookups.
type RangeError struct {
	Date time.Time
	Key  TermKey
}

func (e *RangeError) Error() string {
	if !e.Date.IsZero() {
		return fmt.Sprintf("no term database entry covers %s", e.Date.Format("02/01/2006"))
	}
	return fmt.Sprintf("no term database entry for %s", e.Key)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
