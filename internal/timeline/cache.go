package timeline

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// RecordCache is the shared in-memory copy of persisted records. All
// mutations are synchronous value replacements on the UI goroutine; the one
// invariant the cache enforces itself is that no two entries ever share an
// ID.
type RecordCache struct {
	records []*domain.TimeRecord
	byID    map[string]int // id -> index into records
	loading map[string]bool
	lastErr string
}

// NewRecordCache returns an empty cache.
func NewRecordCache() *RecordCache {
	return &RecordCache{
		byID:    make(map[string]int),
		loading: make(map[string]bool),
	}
}

// Len returns the number of cached records.
func (c *RecordCache) Len() int { return len(c.records) }

// Has reports whether a record with the given ID is cached.
func (c *RecordCache) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Get returns the cached record with the given ID, or nil.
func (c *RecordCache) Get(id string) *domain.TimeRecord {
	if i, ok := c.byID[id]; ok {
		return c.records[i]
	}
	return nil
}

// InRange returns the cached records whose Start falls in [start, end),
// in cache order.
func (c *RecordCache) InRange(start, end time.Time) []*domain.TimeRecord {
	var out []*domain.TimeRecord
	for _, rec := range c.records {
		if !rec.Start.Before(start) && rec.Start.Before(end) {
			out = append(out, rec)
		}
	}
	return out
}

// AnyInRange is the coarse presence check used by the fetch coordinator.
func (c *RecordCache) AnyInRange(start, end time.Time) bool {
	for _, rec := range c.records {
		if !rec.Start.Before(start) && rec.Start.Before(end) {
			return true
		}
	}
	return false
}

// Merge appends every record whose ID is not already cached and returns the
// number added. Records are cloned on the way in so callers keep no aliases.
func (c *RecordCache) Merge(records []*domain.TimeRecord) int {
	added := 0
	for _, rec := range records {
		if rec == nil || c.Has(rec.ID) {
			continue
		}
		c.byID[rec.ID] = len(c.records)
		c.records = append(c.records, rec.Clone())
		added++
	}
	return added
}

// Upsert replaces the cached record with the same ID, or appends it.
func (c *RecordCache) Upsert(rec *domain.TimeRecord) {
	if rec == nil {
		return
	}
	if i, ok := c.byID[rec.ID]; ok {
		c.records[i] = rec.Clone()
		return
	}
	c.byID[rec.ID] = len(c.records)
	c.records = append(c.records, rec.Clone())
}

// Remove drops the record with the given ID and reports whether it existed.
func (c *RecordCache) Remove(id string) bool {
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.reindex()
	return true
}

// ReplaceRange is the destructive resync used by refresh: every cached
// record with Start in [start, end) is dropped, then the fresh set is merged
// in (still deduplicating against records outside the window).
func (c *RecordCache) ReplaceRange(start, end time.Time, records []*domain.TimeRecord) {
	kept := c.records[:0]
	for _, rec := range c.records {
		if !rec.Start.Before(start) && rec.Start.Before(end) {
			continue
		}
		kept = append(kept, rec)
	}
	c.records = kept
	c.reindex()
	c.Merge(records)
}

func (c *RecordCache) reindex() {
	c.byID = make(map[string]int, len(c.records))
	for i, rec := range c.records {
		c.byID[rec.ID] = i
	}
}

// SetLoading marks or clears the in-flight flag for a day key.
func (c *RecordCache) SetLoading(dayKey string, loading bool) {
	if loading {
		c.loading[dayKey] = true
		return
	}
	delete(c.loading, dayKey)
}

// IsLoading reports whether a fetch for the day key is in flight.
func (c *RecordCache) IsLoading(dayKey string) bool { return c.loading[dayKey] }

// SetError records the last store-level failure message; empty clears it.
func (c *RecordCache) SetError(msg string) { c.lastErr = msg }

// LastError returns the last store-level failure message, if any.
func (c *RecordCache) LastError() string { return c.lastErr }
