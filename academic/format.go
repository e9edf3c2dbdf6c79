/*
format.go - Canonical textual rendering

The canonical form is "<Weekday>, <N><suffix> week, <Term> <Year>", e.g.
"Friday, 1st week, Michaelmas 2007". The ordinal suffix follows the English
rule applied to the week's absolute value, so out-of-term weeks still read
sensibly ("-2nd week", "0th week", "11th week").

Formatting is a separate operation from conversion; ToAcademic always
returns the structured value and callers render when they need text.
*/
package academic

import "fmt"

// OrdinalSuffix returns the English ordinal suffix for n, using |n|.
// 11, 12 and 13 take "th" despite ending in 1, 2, 3.
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// String renders the canonical textual form of the academic date.
func (d Date) String() string {
	return fmt.Sprintf("%s, %d%s week, %s %d",
		d.Weekday, d.Week, OrdinalSuffix(d.Week), d.Term, d.Year)
}
