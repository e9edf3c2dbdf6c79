/*
convert.go - Bidirectional date <-> academic date conversion

PURPOSE:
  The ToAcademic/FromAcademic pair. Forward conversion classifies the date
  against statutory terms, numbers the week relative to the prescribed
  start Sunday, and - in nearest mode - attributes vacation dates to the
  closer adjacent term. Inverse conversion is plain offset arithmetic.

WEEK ARITHMETIC:
  In term:   week = floorDiv(date - start, 7) + (0 if before start else 1).
             A date inside the statutory interval but before the start
             Sunday gets a week <= 0.
  Nearest, previous term chosen:
             week = 8 + floorDiv(date - week8Sunday, 7), continuing the
             in-term scheme past week 8.
  Nearest, next term chosen:
             truncating division toward the term start, so the week before
             the start Sunday is week 0, the one before that -1, and so on.
  The two nearest branches deliberately round differently, and exact
  distance ties go to the previous term. Both asymmetries are part of the
  published behavior and must not be "simplified".

SEE ALSO:
  - resolver.go: statutory classification
  - database.go: prescribed starts
  - format.go:   canonical rendering of the result
*/
package academic

import (
	"time"

	"github.com/warp/term-engine/datemath"
)

// Converter performs date <-> academic date conversions against a term
// database. It is stateless beyond the database reference and safe for
// concurrent use.
type Converter struct {
	db *Database
}

// NewConverter returns a converter over db.
func NewConverter(db *Database) *Converter {
	return &Converter{db: db}
}

// Database returns the term database this converter consults.
func (c *Converter) Database() *Database {
	return c.db
}

// =============================================================================
// FORWARD - calendar date to academic date
// =============================================================================

// ToAcademic converts a calendar date to its academic representation.
//
// A nil Date with a nil error means the date does not satisfy the term
// condition for the requested mode (a normal outcome). A non-nil error
// wrapping ErrOutOfRange means the database does not cover the date.
func (c *Converter) ToAcademic(date time.Time, opts Options) (*Date, error) {
	d := datemath.DayOf(date)
	weekday := d.Weekday()

	key, inTerm := ThisTerm(d)
	if !inTerm {
		if opts.Mode != ModeNearest {
			return nil, nil
		}
		return c.nearest(d, weekday, opts)
	}

	record, ok := c.db.Lookup(key.Term, key.Year)
	if !ok {
		return nil, &RangeError{Key: key}
	}

	daysFromStart := datemath.DaysBetween(record.Start, d)
	weekOffset := 1
	if daysFromStart < 0 {
		weekOffset = 0
	}
	week := datemath.FloorDiv(daysFromStart, 7) + weekOffset

	if opts.ConfirmedOnly && record.Provisional {
		return nil, nil
	}
	if opts.Mode == ModeFullTerm && (week < 1 || week > 8) {
		return nil, nil
	}
	return &Date{Weekday: weekday, Week: week, Term: key.Term, Year: key.Year}, nil
}

// nearest attributes a vacation date to the closer of the two terms
// flanking its gap.
func (c *Converter) nearest(d time.Time, weekday time.Weekday, opts Options) (*Date, error) {
	records := c.db.Records()

	// Locate the gap: prev is the last record starting on or before d,
	// next the first starting after.
	var prev, next *Record
	for i := range records {
		if d.Before(records[i].Start) {
			next = &records[i]
			if i > 0 {
				prev = &records[i-1]
			}
			break
		}
	}
	if next == nil || prev == nil {
		// The database does not extend far enough in this direction.
		return nil, &RangeError{Date: d}
	}

	prevEnd := prev.FullTermEnd()              // Sunday beginning week 8
	prevBoundary := prevEnd.AddDate(0, 0, 7)   // first day past the nominal last week
	if d.Before(prevBoundary) {
		return nil, &RangeError{Date: d}
	}

	prevGap := datemath.DaysBetween(prevBoundary, d) // >= 0
	nextGap := datemath.DaysBetween(next.Start, d)   // <= 0

	var record Record
	var week int
	if prevGap <= -nextGap {
		// Closer to the previous term; ties land here.
		record = *prev
		week = 8 + datemath.FloorDiv(datemath.DaysBetween(prevEnd, d), 7)
	} else {
		// Closer to the next term. Truncating division and the remainder
		// correction round toward the start Sunday rather than flooring,
		// so the seven days before it are week 0.
		record = *next
		week = nextGap/7 + 1
		if nextGap%7 != 0 {
			week--
		}
	}

	if opts.ConfirmedOnly && record.Provisional {
		return nil, nil
	}
	return &Date{Weekday: weekday, Week: week, Term: record.Key.Term, Year: record.Key.Year}, nil
}

// =============================================================================
// INVERSE - academic date to calendar date
// =============================================================================

// FromAcademic converts an academic date back to the calendar. Week and
// weekday are not range-checked: arbitrary week integers, including zero
// and negatives, extrapolate the week scheme exactly as the forward
// direction can produce them.
func (c *Converter) FromAcademic(year int, term Term, week int, weekday time.Weekday) (time.Time, error) {
	record, ok := c.db.Lookup(term, year)
	if !ok {
		return time.Time{}, &RangeError{Key: TermKey{Term: term, Year: year}}
	}
	offset := 7*(week-1) + int(weekday)
	return record.Start.AddDate(0, 0, offset), nil
}
