package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/term-engine/academic"
	"github.com/warp/term-engine/dataset"
	"github.com/warp/term-engine/store/sqlite"
)

func testStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(term academic.Term, year int, start time.Time, provisional bool) academic.Record {
	return academic.Record{
		Key:         academic.TermKey{Term: term, Year: year},
		Start:       start,
		Provisional: provisional,
	}
}

// =============================================================================
// LOAD
// =============================================================================

func TestLoad_EmptyStore(t *testing.T) {
	store := testStore(t)

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, academic.ErrDataUnavailable)
}

func TestLoad_RoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	mich := record(academic.Michaelmas, 2007,
		time.Date(2007, time.October, 7, 0, 0, 0, 0, time.UTC), false)
	hil := record(academic.Hilary, 2008,
		time.Date(2008, time.January, 13, 0, 0, 0, 0, time.UTC), true)
	require.NoError(t, store.Put(ctx, mich))
	require.NoError(t, store.Put(ctx, hil))

	db, err := academic.Open(store)
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len())

	got, ok := db.Lookup(academic.Hilary, 2008)
	require.True(t, ok)
	assert.True(t, got.Provisional)
	assert.Equal(t, hil.Start, got.Start)
}

func TestLoad_NormalizesToMidnightUTC(t *testing.T) {
	store := testStore(t)

	// A caller that hands us a wall-clock timestamp should still get a
	// clean date back out.
	noisy := record(academic.Trinity, 2008,
		time.Date(2008, time.March, 30, 14, 25, 0, 0, time.UTC), false)
	require.NoError(t, store.Put(context.Background(), noisy))

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2008, time.March, 30, 0, 0, 0, 0, time.UTC), records[0].Start)
}

// =============================================================================
// WRITES
// =============================================================================

func TestPut_UpsertsExistingKey(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	// GIVEN a provisional start already staged
	provisional := record(academic.Michaelmas, 2031,
		time.Date(2031, time.October, 12, 0, 0, 0, 0, time.UTC), true)
	require.NoError(t, store.Put(ctx, provisional))

	// WHEN the finalized date is published a week earlier
	final := record(academic.Michaelmas, 2031,
		time.Date(2031, time.October, 5, 0, 0, 0, 0, time.UTC), false)
	require.NoError(t, store.Put(ctx, final))

	// THEN a single row remains, carrying the new start
	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, final.Start, records[0].Start)
	assert.False(t, records[0].Provisional)
}

func TestSeed_FromEmbeddedDataset(t *testing.T) {
	store := testStore(t)

	records, err := dataset.Embedded{}.Load()
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), records))

	db, err := academic.Open(store)
	require.NoError(t, err)
	assert.Equal(t, len(records), db.Len())

	rec, ok := db.Lookup(academic.Michaelmas, 2007)
	require.True(t, ok)
	assert.Equal(t, "07/10/2007", rec.Start.Format("02/01/2006"))
}
