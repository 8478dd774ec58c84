package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_BeginFetchesEmptyDay(t *testing.T) {
	cache := NewRecordCache()
	coord := NewCoordinator(cache, nil)

	win, ok := coord.Begin(dayUTC(13, 0))
	require.True(t, ok)
	assert.True(t, win.Start.Equal(dayUTC(0, 0)))
	assert.True(t, win.End.Equal(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
	assert.True(t, cache.IsLoading("2025-06-15"))

	added := coord.Complete(win, []*domain.TimeRecord{record("r1", dayUTC(9, 0))}, nil)
	assert.Equal(t, 1, added)
	assert.False(t, cache.IsLoading("2025-06-15"))
	assert.True(t, cache.Has("r1"))
}

func TestCoordinator_PresenceCheckSkipsCachedDay(t *testing.T) {
	cache := NewRecordCache()
	cache.Merge([]*domain.TimeRecord{record("r1", dayUTC(9, 0))})
	coord := NewCoordinator(cache, nil)

	_, ok := coord.Begin(dayUTC(13, 0))
	assert.False(t, ok, "a day with any cached record never re-fetches")
}

func TestCoordinator_IndependentDays(t *testing.T) {
	cache := NewRecordCache()
	cache.Merge([]*domain.TimeRecord{record("r1", dayUTC(9, 0))})
	coord := NewCoordinator(cache, nil)

	// A different day still fetches.
	_, ok := coord.Begin(time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC))
	assert.True(t, ok)
}

func TestCoordinator_DuplicateRequestsMergeHarmlessly(t *testing.T) {
	cache := NewRecordCache()
	coord := NewCoordinator(cache, nil)

	// Two triggers race past the presence check before either completes.
	win1, ok1 := coord.Begin(dayUTC(8, 0))
	win2, ok2 := coord.Begin(dayUTC(8, 0))
	require.True(t, ok1)
	require.True(t, ok2)

	recs := []*domain.TimeRecord{record("r1", dayUTC(9, 0))}
	coord.Complete(win1, recs, nil)
	added := coord.Complete(win2, recs, nil)

	assert.Equal(t, 0, added, "second merge deduplicates by id")
	assert.Equal(t, 1, cache.Len())
}

func TestCoordinator_FetchErrorKeepsCacheAndRecordsMessage(t *testing.T) {
	cache := NewRecordCache()
	cache.Merge([]*domain.TimeRecord{record("old", time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC))})
	coord := NewCoordinator(cache, nil)

	win, ok := coord.Begin(dayUTC(8, 0))
	require.True(t, ok)
	coord.Complete(win, nil, errors.New("store unreachable"))

	assert.False(t, cache.IsLoading("2025-06-15"), "loading cleared even on failure")
	assert.Equal(t, "store unreachable", cache.LastError())
	assert.Equal(t, 1, cache.Len(), "stale cache keeps serving")
}

func TestCoordinator_RefreshWindowIsYesterdayThroughTomorrow(t *testing.T) {
	cache := NewRecordCache()
	coord := NewCoordinator(cache, nil)

	now := dayUTC(13, 30)
	win := coord.BeginRefresh(now)
	assert.True(t, win.Start.Equal(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, win.End.Equal(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
}

func TestCoordinator_RefreshBypassesPresenceCheckAndReplaces(t *testing.T) {
	cache := NewRecordCache()
	cache.Merge([]*domain.TimeRecord{
		record("stale-today", dayUTC(9, 0)),
		record("stale-yesterday", time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)),
		record("ancient", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
	})
	coord := NewCoordinator(cache, nil)

	win := coord.BeginRefresh(dayUTC(13, 30))
	fresh := []*domain.TimeRecord{record("fresh", dayUTC(10, 0))}
	coord.CompleteRefresh(win, fresh, nil)

	assert.False(t, cache.Has("stale-today"))
	assert.False(t, cache.Has("stale-yesterday"))
	assert.True(t, cache.Has("ancient"), "records outside the 2-day window are untouched")
	assert.True(t, cache.Has("fresh"))
}

func TestCoordinator_RefreshErrorLeavesWindowIntact(t *testing.T) {
	cache := NewRecordCache()
	cache.Merge([]*domain.TimeRecord{record("r1", dayUTC(9, 0))})
	coord := NewCoordinator(cache, nil)

	win := coord.BeginRefresh(dayUTC(13, 30))
	coord.CompleteRefresh(win, nil, errors.New("offline"))

	assert.True(t, cache.Has("r1"), "failed refresh must not drop cached records")
	assert.Equal(t, "offline", cache.LastError())
}
