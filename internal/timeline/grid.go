package timeline

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

const (
	// BucketMinutes is the fixed grid granularity.
	BucketMinutes = 30
	// BucketsPerDay is 24h / 30min.
	BucketsPerDay = 48
)

// BuildDay generates the complete bucket grid for the local calendar day
// containing date: exactly 48 placeholder buckets, contiguous and
// non-overlapping, covering [local midnight, next local midnight).
//
// Boundaries are derived from wall-clock half hours and then normalized to
// instants, so the same slot always maps to the same absolute time span.
// Across a DST transition the skipped wall-clock slots collapse to
// zero-width buckets and the final boundary is pinned to the next midnight;
// the 48-slot shape and contiguity hold in every timezone. Pure and
// deterministic.
func BuildDay(date time.Time, ownerID string) []domain.TimeBucket {
	y, m, d := date.Date()
	loc := date.Location()

	bounds := make([]time.Time, BucketsPerDay+1)
	for i := 0; i <= BucketsPerDay; i++ {
		b := time.Date(y, m, d, i/2, (i%2)*BucketMinutes, 0, 0, loc)
		// Keep boundaries monotonic when the wall clock jumps backwards.
		if i > 0 && b.Before(bounds[i-1]) {
			b = bounds[i-1]
		}
		bounds[i] = b
	}

	buckets := make([]domain.TimeBucket, BucketsPerDay)
	for i := range buckets {
		buckets[i] = domain.TimeBucket{
			Start:   bounds[i],
			End:     bounds[i+1],
			OwnerID: ownerID,
		}
	}
	return buckets
}

// DayStart returns local midnight of t's calendar day, in t's location.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDayStart returns local midnight of the day after t's calendar day.
func NextDayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, each
// evaluated in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
