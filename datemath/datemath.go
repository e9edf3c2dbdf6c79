/*
Package datemath provides the calendar primitives consumed by the academic
engine: Easter Sunday computation, day-granularity arithmetic, and weekday
helpers.

PURPOSE:
  The academic packages never touch time.Time internals directly for anything
  non-trivial. Everything date-shaped funnels through here so the day-granularity
  convention (UTC midnight, civil Gregorian calendar) lives in one place.

CONVENTIONS:
  - All dates are UTC midnights. DayOf normalizes arbitrary times.
  - No time zones, no times of day. Callers that care about wall clocks
    must normalize before calling in.

EASTER:
  Easter Sunday is computed with the Gregorian computus (Oudin's method),
  valid for all Gregorian years. Several term boundaries are defined
  relative to it.

SEE ALSO:
  - academic/statutory.go: Easter-relative term boundaries
  - academic/convert.go: day-delta and floor-division consumers
*/
package datemath

import "time"

// Date returns the UTC midnight for a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates t to its calendar date at UTC midnight.
func DayOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// DaysBetween returns the signed number of whole days from a to b.
// Both arguments are normalized to day granularity first.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

// FloorDiv returns the mathematical floor of a/b. Unlike Go's integer
// division it rounds toward negative infinity, so FloorDiv(-6, 7) == -1.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Easter returns Easter Sunday for the given year using the Gregorian
// computus (Oudin's method).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date(year, time.Month(month), day)
}

// NextSunday returns the first Sunday strictly after d.
func NextSunday(d time.Time) time.Time {
	d = DayOf(d).AddDate(0, 0, 1)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// SundayOnOrBefore returns the latest Sunday that is on or before d.
func SundayOnOrBefore(d time.Time) time.Time {
	return DayOf(d).AddDate(0, 0, -int(d.Weekday()))
}
