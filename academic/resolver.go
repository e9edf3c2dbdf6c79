/*
resolver.go - Statutory term classification

PURPOSE:
  Answers "which statutory term is this date in, if any" and "which term
  comes next". Both are pure functions over the statutory intervals; the
  prescribed-start database is not involved.

NEXT-TERM SCAN:
  NextTerm advances one day at a time through vacation until a statutory
  term begins. A closed form is possible but pointless: the longest gap in
  the cycle (early July to October 1) is well under a year, so the scan is
  bounded and cheap.
*/
package academic

import (
	"time"

	"github.com/warp/term-engine/datemath"
)

// termCycle is the fixed probe order for interval containment. Intervals
// within a year are disjoint, so at most one term can match.
var termCycle = [...]Term{Michaelmas, Hilary, Trinity}

// ThisTerm reports the statutory term containing date, if any. Interval
// containment is inclusive at both ends.
func ThisTerm(date time.Time) (TermKey, bool) {
	d := datemath.DayOf(date)
	intervals := StatutoryIntervals(d.Year())
	for _, t := range termCycle {
		if intervals[t].Contains(d) {
			return TermKey{Term: t, Year: d.Year()}, true
		}
	}
	return TermKey{}, false
}

// NextTerm returns the term that follows date: the cycle successor when the
// date is in term, otherwise the first term to begin after it.
func NextTerm(date time.Time) TermKey {
	d := datemath.DayOf(date)
	if key, ok := ThisTerm(d); ok {
		return key.Next()
	}
	for {
		d = d.AddDate(0, 0, 1)
		if key, ok := ThisTerm(d); ok {
			return key
		}
	}
}
