package datemath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warp/term-engine/datemath"
)

func TestEaster_KnownDates(t *testing.T) {
	cases := map[int]time.Time{
		2007: datemath.Date(2007, time.April, 8),
		2008: datemath.Date(2008, time.March, 23), // earliest in recent decades
		2011: datemath.Date(2011, time.April, 24), // latest in recent decades
		2024: datemath.Date(2024, time.March, 31),
		2025: datemath.Date(2025, time.April, 20),
		2049: datemath.Date(2049, time.April, 18),
	}
	for year, want := range cases {
		assert.Equal(t, want, datemath.Easter(year), "Easter %d", year)
	}
}

func TestEaster_AlwaysSunday(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		assert.Equal(t, time.Sunday, datemath.Easter(year).Weekday(), "year %d", year)
	}
}

func TestDaysBetween(t *testing.T) {
	a := datemath.Date(2007, time.October, 7)
	assert.Equal(t, 0, datemath.DaysBetween(a, a))
	assert.Equal(t, 5, datemath.DaysBetween(a, datemath.Date(2007, time.October, 12)))
	assert.Equal(t, -6, datemath.DaysBetween(a, datemath.Date(2007, time.October, 1)))
	// Spans a DST-free UTC year boundary cleanly.
	assert.Equal(t, 86, datemath.DaysBetween(a, datemath.Date(2008, time.January, 1)))
}

func TestDaysBetween_NormalizesTimes(t *testing.T) {
	a := time.Date(2007, time.October, 7, 23, 59, 0, 0, time.UTC)
	b := time.Date(2007, time.October, 8, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, datemath.DaysBetween(a, b))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, datemath.FloorDiv(5, 7))
	assert.Equal(t, 1, datemath.FloorDiv(7, 7))
	assert.Equal(t, -1, datemath.FloorDiv(-1, 7))
	assert.Equal(t, -1, datemath.FloorDiv(-6, 7))
	assert.Equal(t, -1, datemath.FloorDiv(-7, 7))
	assert.Equal(t, -2, datemath.FloorDiv(-8, 7))
}

func TestNextSunday(t *testing.T) {
	// Oct 1 2007 is a Monday; the next Sunday is Oct 7.
	assert.Equal(t, datemath.Date(2007, time.October, 7),
		datemath.NextSunday(datemath.Date(2007, time.October, 1)))
	// Strictly after: asking from a Sunday yields the following one.
	assert.Equal(t, datemath.Date(2007, time.October, 14),
		datemath.NextSunday(datemath.Date(2007, time.October, 7)))
}

func TestSundayOnOrBefore(t *testing.T) {
	assert.Equal(t, datemath.Date(2007, time.October, 7),
		datemath.SundayOnOrBefore(datemath.Date(2007, time.October, 12)))
	assert.Equal(t, datemath.Date(2007, time.October, 7),
		datemath.SundayOnOrBefore(datemath.Date(2007, time.October, 7)))
}
