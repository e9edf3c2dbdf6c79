/*
statutory.go - Regulation-defined term boundaries

PURPOSE:
  Computes, for a given calendar year, the statutory start and end of each
  term. Pure functions of the year; nothing here consults the term database.

REGULATION POINTS:
  Michaelmas: Oct 1  - Dec 17          (both fixed)
  Hilary:     Jan 7  - Easter-derived  (see below)
  Trinity:    Easter-derived - Jul 6   (see below)

EASTER-RELATIVE CORRECTIONS:
  Hilary ends on the Saturday six days before Palm Sunday (Easter - 13 days),
  unless that Saturday lands exactly one day after Mar 25, in which case the
  end collapses to Mar 25. Trinity starts on the Wednesday after Easter
  (Easter + 3 days), unless that Wednesday lands exactly one day after
  Apr 20, in which case the start collapses to Apr 20.

  The regulations phrase these as "no later than Mar 25" / "no earlier than
  Apr 20", but the rule only bites on the one-day overshoot. This must be
  reproduced exactly, not approximated with a general clamp.

SEE ALSO:
  - datemath: Easter computus
  - resolver.go: interval containment queries
*/
package academic

import (
	"time"

	"github.com/warp/term-engine/datemath"
)

// Interval is a statutory term's date range, inclusive at both ends.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the interval.
func (iv Interval) Contains(d time.Time) bool {
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// StatutoryIntervals returns the regulation-defined boundaries of each term
// for the given calendar year. Values are recomputed on every call.
func StatutoryIntervals(year int) map[Term]Interval {
	easter := datemath.Easter(year)

	hilaryEnd := easter.AddDate(0, 0, -13)
	if hilaryEnd.Equal(datemath.Date(year, time.March, 26)) {
		hilaryEnd = datemath.Date(year, time.March, 25)
	}

	trinityStart := easter.AddDate(0, 0, 3)
	if trinityStart.Equal(datemath.Date(year, time.April, 21)) {
		trinityStart = datemath.Date(year, time.April, 20)
	}

	return map[Term]Interval{
		Michaelmas: {
			Start: datemath.Date(year, time.October, 1),
			End:   datemath.Date(year, time.December, 17),
		},
		Hilary: {
			Start: datemath.Date(year, time.January, 7),
			End:   hilaryEnd,
		},
		Trinity: {
			Start: trinityStart,
			End:   datemath.Date(year, time.July, 6),
		},
	}
}
