package timeline

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// ScrollPlan is a computed scroll-to-now application: the horizontal offset
// to apply and the index of the bucket containing now.
type ScrollPlan struct {
	Offset int
	Index  int
}

// ScrollToNow finds the bucket whose span contains now and computes the
// horizontal offset that places it at roughly one third of the viewport
// width, so upcoming buckets stay visible instead of pinning "now" flush
// left. The offset is clamped to the scrollable range. Returns false when
// now falls outside the displayed sequence or the geometry is degenerate.
func ScrollToNow(buckets []domain.TimeBucket, now time.Time, bucketWidth, viewportWidth int) (ScrollPlan, bool) {
	if bucketWidth <= 0 || viewportWidth <= 0 {
		return ScrollPlan{}, false
	}

	idx := -1
	for i, b := range buckets {
		if b.Contains(now) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ScrollPlan{}, false
	}

	offset := idx*bucketWidth - viewportWidth/3
	maxOffset := len(buckets)*bucketWidth - viewportWidth
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return ScrollPlan{Offset: offset, Index: idx}, true
}

// AutoScrollAllowed guards scroll-to-now recomputation: it only applies
// when the displayed day is today. Past and future days never auto-scroll.
func AutoScrollAllowed(displayed, now time.Time) bool {
	return SameDay(displayed, now)
}
