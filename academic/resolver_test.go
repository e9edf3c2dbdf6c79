package academic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/term-engine/academic"
)

// =============================================================================
// THIS-TERM CLASSIFICATION
// =============================================================================

func TestThisTerm_InAndOutOfTerm(t *testing.T) {
	key, ok := academic.ThisTerm(date(2007, time.October, 12))
	require.True(t, ok)
	assert.Equal(t, academic.TermKey{Term: academic.Michaelmas, Year: 2007}, key)

	key, ok = academic.ThisTerm(date(2008, time.February, 1))
	require.True(t, ok)
	assert.Equal(t, academic.TermKey{Term: academic.Hilary, Year: 2008}, key)

	key, ok = academic.ThisTerm(date(2008, time.May, 1))
	require.True(t, ok)
	assert.Equal(t, academic.TermKey{Term: academic.Trinity, Year: 2008}, key)

	_, ok = academic.ThisTerm(date(2007, time.August, 15))
	assert.False(t, ok, "mid-August is vacation")

	_, ok = academic.ThisTerm(date(2007, time.December, 25))
	assert.False(t, ok, "Christmas is vacation")
}

func TestThisTerm_CollapsedHilaryBoundary(t *testing.T) {
	// Hilary 2007 ends March 25 under the collapse rule; March 26 is out.
	_, ok := academic.ThisTerm(date(2007, time.March, 25))
	assert.True(t, ok)
	_, ok = academic.ThisTerm(date(2007, time.March, 26))
	assert.False(t, ok)
}

// =============================================================================
// NEXT-TERM PREDICTION
// =============================================================================

func TestNextTerm_FromWithinTerm(t *testing.T) {
	// In term: the cycle successor, even though the current term has
	// weeks left to run.
	next := academic.NextTerm(date(2007, time.October, 12))
	assert.Equal(t, academic.TermKey{Term: academic.Hilary, Year: 2008}, next)
}

func TestNextTerm_FromVacationScansForward(t *testing.T) {
	// Mid-August: the next statutory term to begin is Michaelmas.
	next := academic.NextTerm(date(2007, time.August, 15))
	assert.Equal(t, academic.TermKey{Term: academic.Michaelmas, Year: 2007}, next)

	// Christmas vacation: Hilary of the following calendar year.
	next = academic.NextTerm(date(2007, time.December, 25))
	assert.Equal(t, academic.TermKey{Term: academic.Hilary, Year: 2008}, next)
}

func TestTermCycle_ThreeStepsAdvanceOneYear(t *testing.T) {
	// GIVEN: Any Michaelmas
	// THEN:  Three cycle steps land on the next year's Michaelmas
	for year := 2000; year <= 2030; year++ {
		key := academic.TermKey{Term: academic.Michaelmas, Year: year}
		assert.Equal(t, academic.TermKey{Term: academic.Michaelmas, Year: year + 1},
			key.Next().Next().Next())
	}
}

func TestTermCycle_YearIncrementsAtMichaelmasToHilary(t *testing.T) {
	key := academic.TermKey{Term: academic.Michaelmas, Year: 2007}
	assert.Equal(t, academic.TermKey{Term: academic.Hilary, Year: 2008}, key.Next())
	assert.Equal(t, academic.TermKey{Term: academic.Trinity, Year: 2008}, key.Next().Next())
}
