package domain

import "time"

// TimeRecord is a persisted time-tracking entry covering one 30-minute slot
// of an owner's day. The backing store owns the canonical copy; everything
// held in memory is a local mutable snapshot.
type TimeRecord struct {
	ID         string
	Start      time.Time
	End        time.Time
	CategoryID *string
	StateID    *string
	OwnerID    string
	NoteIDs    []string
}

// HasAttachments reports whether deleting this record would discard more
// than the time slot itself (notes or a logged mood).
func (r *TimeRecord) HasAttachments() bool {
	return len(r.NoteIDs) > 0 || r.StateID != nil
}

// Clone returns a deep copy, so queue snapshots and cache entries never
// alias the caller's pointers.
func (r *TimeRecord) Clone() *TimeRecord {
	out := *r
	if r.CategoryID != nil {
		v := *r.CategoryID
		out.CategoryID = &v
	}
	if r.StateID != nil {
		v := *r.StateID
		out.StateID = &v
	}
	if r.NoteIDs != nil {
		out.NoteIDs = append([]string(nil), r.NoteIDs...)
	}
	return &out
}
