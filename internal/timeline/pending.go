package timeline

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// PendingCreation is a tapped empty bucket waiting for a category before it
// can become a record. Identity key is the bucket's Start instant.
type PendingCreation struct {
	Bucket domain.TimeBucket
}

// Key returns the queue identity for this entry.
func (p PendingCreation) Key() string {
	return p.Bucket.Start.UTC().Format(time.RFC3339)
}

// PendingUpdate is a tapped existing record waiting for a category change.
// Identity key is the record ID.
type PendingUpdate struct {
	Record domain.TimeRecord
}

// Key returns the queue identity for this entry.
func (p PendingUpdate) Key() string { return p.Record.ID }

type keyed interface {
	Key() string
}

// pendingQueue is an ordered collection with idempotent enqueue: a second
// entry with an already-queued key is ignored.
type pendingQueue[T keyed] struct {
	items []T
	seen  map[string]bool
}

// Enqueue appends item unless its key is already queued. Reports whether
// the item was added.
func (q *pendingQueue[T]) Enqueue(item T) bool {
	if q.seen == nil {
		q.seen = make(map[string]bool)
	}
	key := item.Key()
	if q.seen[key] {
		return false
	}
	q.seen[key] = true
	q.items = append(q.items, item)
	return true
}

// Items returns the queued entries in enqueue order.
func (q *pendingQueue[T]) Items() []T { return q.items }

// Len returns the queue length.
func (q *pendingQueue[T]) Len() int { return len(q.items) }

// Clear empties the queue.
func (q *pendingQueue[T]) Clear() {
	q.items = nil
	q.seen = nil
}
