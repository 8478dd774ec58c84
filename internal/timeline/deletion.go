package timeline

import (
	"github.com/gridlog/gridlog/internal/domain"
)

// DeleteDecision classifies a long-press on a bucket.
type DeleteDecision int

const (
	// DeleteNoop: the bucket has no backing record; nothing to delete.
	DeleteNoop DeleteDecision = iota
	// DeleteNeedsConfirm: the record carries notes or a mood and must be
	// confirmed before the delete call fires.
	DeleteNeedsConfirm
	// DeleteImmediate: a bare record deletes on the first long-press.
	DeleteImmediate
)

// Deleter is the deletion confirmation state machine. It only decides;
// the caller issues the store delete and applies removal after the call
// succeeds, so no optimistic rollback is ever needed.
type Deleter struct {
	obs EngineObserver
}

// NewDeleter returns a deleter reporting to obs.
func NewDeleter(obs EngineObserver) *Deleter {
	return &Deleter{obs: observerOrNoop(obs)}
}

// Decide returns what a long-press on bucket should do.
func (d *Deleter) Decide(bucket domain.TimeBucket) DeleteDecision {
	if bucket.Empty() {
		d.obs.Observe(EngineEvent{Op: "delete_decide", Success: true, Fields: map[string]any{
			"result": "noop_empty_bucket",
			"start":  bucket.Start,
		}})
		return DeleteNoop
	}
	if bucket.HasAttachments() {
		return DeleteNeedsConfirm
	}
	return DeleteImmediate
}
