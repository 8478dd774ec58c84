package timeline

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// FetchWindow is the half-open instant range a fetch covers, plus the day
// key whose loading flag it owns.
type FetchWindow struct {
	Start  time.Time
	End    time.Time
	dayKey string
}

// Coordinator decides whether a day's records must be fetched from the
// backing store and merges results into the shared cache without
// duplication. It is split into Begin/Complete pairs because the actual
// store call runs as an asynchronous command; both halves execute on the UI
// goroutine.
type Coordinator struct {
	cache *RecordCache
	obs   EngineObserver
}

// NewCoordinator returns a coordinator over the given cache.
func NewCoordinator(cache *RecordCache, obs EngineObserver) *Coordinator {
	return &Coordinator{cache: cache, obs: observerOrNoop(obs)}
}

// Begin runs the coarse presence check for the day containing date. If any
// cached record starts inside the day, no fetch is needed and ok is false.
// Otherwise the day is marked loading and the window to request is
// returned.
//
// Two triggers racing on the same day can both pass the check and issue
// duplicate requests; the merge step deduplicates by ID, so the second
// request is wasted work, not a correctness problem.
func (c *Coordinator) Begin(date time.Time) (win FetchWindow, ok bool) {
	start, end := DayStart(date), NextDayStart(date)
	if c.cache.AnyInRange(start, end) {
		return FetchWindow{}, false
	}

	win = FetchWindow{Start: start, End: end, dayKey: dayKey(start)}
	c.cache.SetLoading(win.dayKey, true)
	c.obs.Observe(EngineEvent{Op: "fetch_begin", Success: true, Fields: map[string]any{
		"day": win.dayKey,
	}})
	return win, true
}

// Complete merges the fetch result for win into the cache and clears the
// loading flag. Fetched records already cached by ID are skipped. On error
// the cache keeps whatever it had and records the failure message.
func (c *Coordinator) Complete(win FetchWindow, records []*domain.TimeRecord, err error) int {
	c.cache.SetLoading(win.dayKey, false)
	if err != nil {
		c.cache.SetError(err.Error())
		c.obs.Observe(EngineEvent{Op: "fetch_complete", Err: err, Fields: map[string]any{
			"day": win.dayKey,
		}})
		return 0
	}

	c.cache.SetError("")
	added := c.cache.Merge(records)
	c.obs.Observe(EngineEvent{Op: "fetch_complete", Success: true, Fields: map[string]any{
		"day":     win.dayKey,
		"fetched": len(records),
		"merged":  added,
	}})
	return added
}

// BeginRefresh starts a pull-to-refresh resync. It bypasses the presence
// check entirely and covers [start of yesterday, start of tomorrow).
func (c *Coordinator) BeginRefresh(now time.Time) FetchWindow {
	start := DayStart(now).AddDate(0, 0, -1)
	end := NextDayStart(now)
	win := FetchWindow{Start: start, End: end, dayKey: dayKey(DayStart(now))}
	c.cache.SetLoading(win.dayKey, true)
	c.obs.Observe(EngineEvent{Op: "refresh_begin", Success: true, Fields: map[string]any{
		"from": win.Start.Format(time.RFC3339),
		"to":   win.End.Format(time.RFC3339),
	}})
	return win
}

// CompleteRefresh destructively replaces every cached record inside the
// refresh window with the freshly fetched set. Unlike Complete, stale
// records disappear; refresh is the reconciliation escape hatch for a cache
// the lazy fetch will never repair.
func (c *Coordinator) CompleteRefresh(win FetchWindow, records []*domain.TimeRecord, err error) {
	c.cache.SetLoading(win.dayKey, false)
	if err != nil {
		c.cache.SetError(err.Error())
		c.obs.Observe(EngineEvent{Op: "refresh_complete", Err: err})
		return
	}

	c.cache.SetError("")
	c.cache.ReplaceRange(win.Start, win.End, records)
	c.obs.Observe(EngineEvent{Op: "refresh_complete", Success: true, Fields: map[string]any{
		"fetched": len(records),
	}})
}

func dayKey(dayStart time.Time) string {
	return dayStart.Format("2006-01-02")
}
