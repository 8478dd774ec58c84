package domain

import "time"

// TimeBucket is the derived, render-time view of one 30-minute slot.
// Identity is nil until a persisted record backs the slot; buckets are
// regenerated on every render pass and never stored.
type TimeBucket struct {
	Identity   *string
	Start      time.Time
	End        time.Time
	CategoryID *string
	StateID    *string
	OwnerID    string
	NoteIDs    []string
}

// Empty reports whether the bucket is a placeholder with no backing record.
func (b TimeBucket) Empty() bool { return b.Identity == nil }

// Contains reports whether instant t falls inside [Start, End).
func (b TimeBucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// HasAttachments mirrors TimeRecord.HasAttachments for filled buckets.
func (b TimeBucket) HasAttachments() bool {
	return len(b.NoteIDs) > 0 || b.StateID != nil
}

// BucketFromRecord projects a persisted record into its bucket form.
func BucketFromRecord(r *TimeRecord) TimeBucket {
	id := r.ID
	return TimeBucket{
		Identity:   &id,
		Start:      r.Start,
		End:        r.End,
		CategoryID: r.CategoryID,
		StateID:    r.StateID,
		OwnerID:    r.OwnerID,
		NoteIDs:    append([]string(nil), r.NoteIDs...),
	}
}

// Record converts the bucket back into a record snapshot. For empty buckets
// the ID is left blank for the store to assign.
func (b TimeBucket) Record() *TimeRecord {
	r := &TimeRecord{
		Start:      b.Start,
		End:        b.End,
		CategoryID: b.CategoryID,
		StateID:    b.StateID,
		OwnerID:    b.OwnerID,
		NoteIDs:    append([]string(nil), b.NoteIDs...),
	}
	if b.Identity != nil {
		r.ID = *b.Identity
	}
	return r
}
