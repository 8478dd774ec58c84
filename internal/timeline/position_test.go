package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollToNow_PlacesBucketAtOneThird(t *testing.T) {
	buckets := BuildDay(dayUTC(0, 0), "owner")
	now := dayUTC(12, 15) // bucket 24

	plan, ok := ScrollToNow(buckets, now, 6, 60)
	require.True(t, ok)
	assert.Equal(t, 24, plan.Index)
	// 24*6 = 144 cells in; a third of the 60-cell viewport is 20.
	assert.Equal(t, 124, plan.Offset)
}

func TestScrollToNow_ClampsNearDayStart(t *testing.T) {
	buckets := BuildDay(dayUTC(0, 0), "owner")

	plan, ok := ScrollToNow(buckets, dayUTC(0, 10), 6, 60)
	require.True(t, ok)
	assert.Equal(t, 0, plan.Index)
	assert.Equal(t, 0, plan.Offset, "never scrolls past the left edge")
}

func TestScrollToNow_ClampsNearDayEnd(t *testing.T) {
	buckets := BuildDay(dayUTC(0, 0), "owner")

	plan, ok := ScrollToNow(buckets, dayUTC(23, 45), 6, 60)
	require.True(t, ok)
	assert.Equal(t, 47, plan.Index)
	assert.Equal(t, 48*6-60, plan.Offset, "clamped to the max scrollable offset")
}

func TestScrollToNow_GridNarrowerThanViewport(t *testing.T) {
	buckets := BuildDay(dayUTC(0, 0), "owner")

	plan, ok := ScrollToNow(buckets, dayUTC(23, 45), 1, 200)
	require.True(t, ok)
	assert.Equal(t, 0, plan.Offset)
}

func TestScrollToNow_NowOutsideSequence(t *testing.T) {
	buckets := BuildDay(dayUTC(0, 0), "owner")
	_, ok := ScrollToNow(buckets, time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC), 6, 60)
	assert.False(t, ok)
}

func TestScrollToNow_DegenerateGeometry(t *testing.T) {
	buckets := BuildDay(dayUTC(0, 0), "owner")
	_, ok := ScrollToNow(buckets, dayUTC(12, 0), 0, 60)
	assert.False(t, ok)
	_, ok = ScrollToNow(buckets, dayUTC(12, 0), 6, 0)
	assert.False(t, ok)
}

func TestAutoScrollAllowed_OnlyForToday(t *testing.T) {
	now := dayUTC(13, 0)
	assert.True(t, AutoScrollAllowed(dayUTC(8, 0), now))
	assert.False(t, AutoScrollAllowed(time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC), now))
	assert.False(t, AutoScrollAllowed(time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), now))
}
