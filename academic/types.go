/*
Package academic converts between Gregorian calendar dates and a university's
academic-date representation (weekday, week of term, term, year), and back.

KEY CONCEPTS IN THIS FILE (types.go):
  - Term:    One of Michaelmas, Hilary, Trinity, cycling in that fixed order
  - TermKey: A specific instance of a term (Term x calendar year)
  - Date:    The academic rendering of a calendar date
  - Options: Conversion mode and provisional filtering for ToAcademic

TERM CYCLE:
  Michaelmas(Y) -> Hilary(Y+1) -> Trinity(Y+1) -> Michaelmas(Y+1) -> ...
  The year increments exactly once per cycle, at the Michaelmas -> Hilary
  transition. Hilary and Trinity of academic year Y fall in calendar year Y.

WEEK NUMBERING:
  Week 1 begins on a term record's start Sunday. Weeks 1-8 are full term.
  Dates outside full term still get a week number: zero or negative before
  the start, 9 and up after week 8. Nothing clamps the range; the inverse
  conversion accepts arbitrary week integers for the same reason.

SEE ALSO:
  - statutory.go: regulation-defined term boundaries
  - convert.go:   forward and inverse conversion
  - parse.go:     free-text parsing
*/
package academic

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// TERM - The three statutory terms, in cycle order
// =============================================================================

type Term int

const (
	Michaelmas Term = iota
	Hilary
	Trinity
)

var termNames = [...]string{"Michaelmas", "Hilary", "Trinity"}

func (t Term) String() string {
	if t < Michaelmas || t > Trinity {
		return fmt.Sprintf("Term(%d)", int(t))
	}
	return termNames[t]
}

// ParseTerm resolves a full term name, case-insensitively.
func ParseTerm(s string) (Term, bool) {
	for i, name := range termNames {
		if strings.EqualFold(s, name) {
			return Term(i), true
		}
	}
	return 0, false
}

// ParseWeekday resolves a full English weekday name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return 0, false
}

// =============================================================================
// TERM KEY - A term instance anchored to a calendar year
// =============================================================================

type TermKey struct {
	Term Term
	Year int
}

// Next returns the following term in the fixed cycle. The year advances
// only across the Michaelmas -> Hilary transition.
func (k TermKey) Next() TermKey {
	switch k.Term {
	case Michaelmas:
		return TermKey{Term: Hilary, Year: k.Year + 1}
	case Hilary:
		return TermKey{Term: Trinity, Year: k.Year}
	default:
		return TermKey{Term: Michaelmas, Year: k.Year}
	}
}

func (k TermKey) String() string {
	return fmt.Sprintf("%s %d", k.Term, k.Year)
}

// =============================================================================
// CONVERSION OPTIONS
// =============================================================================

// Mode selects how ToAcademic treats dates outside full term.
type Mode int

const (
	// ModeNearest attributes vacation dates to the closest term by day
	// distance, extending the week count past both ends. The default.
	ModeNearest Mode = iota

	// ModeFullTerm only reports dates within weeks 1-8 of full term.
	ModeFullTerm

	// ModeExtendedTerm reports any date within the statutory term,
	// including weeks outside 1-8, but nothing in vacation.
	ModeExtendedTerm
)

// Options controls a forward conversion. The zero value is the default:
// nearest mode, provisional records included.
type Options struct {
	Mode Mode

	// ConfirmedOnly filters out terms whose start date the governing
	// body has not yet finalized.
	ConfirmedOnly bool
}

// =============================================================================
// ACADEMIC DATE - The result of a forward conversion
// =============================================================================

// Date is a calendar date expressed academically.
type Date struct {
	Weekday time.Weekday
	Week    int
	Term    Term
	Year    int
}

// Key returns the term instance this date belongs to.
func (d Date) Key() TermKey {
	return TermKey{Term: d.Term, Year: d.Year}
}
