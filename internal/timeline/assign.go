package timeline

import (
	"fmt"

	"github.com/gridlog/gridlog/internal/domain"
)

// Mode is the selection state machine's current state.
type Mode int

const (
	// ModeIdle: no deferred intent outstanding.
	ModeIdle Mode = iota
	// ModePicking: the category legend is open waiting for a selection;
	// taps are being queued.
	ModePicking
	// ModeCommitting: a flush batch is in flight.
	ModeCommitting
)

// TapOutcome tells the caller what store effect, if any, a tap produced.
// Exactly one of the three shapes applies: the tap was deferred into a
// queue, or Create/Update carries a draft for the corresponding store call.
type TapOutcome struct {
	Deferred bool
	Create   *domain.TimeRecord
	Update   *domain.TimeRecord
}

// Flush carries the batched drafts produced by a category selection.
// Creates go to the store's batch-create, Updates to batch-update; the two
// flushes complete independently.
type Flush struct {
	Creates []*domain.TimeRecord
	Updates []*domain.TimeRecord
}

// Empty reports whether there is nothing to flush.
func (f Flush) Empty() bool { return len(f.Creates) == 0 && len(f.Updates) == 0 }

// Assigner is the selection & pending-assignment state machine. A tap with
// a category already selected commits directly; a tap without one is
// queued (idempotently, keyed by start instant or record ID) until a
// category is chosen, at which point the queues flush as batches.
//
// All methods run synchronously on the UI goroutine, so enqueue and flush
// can never interleave mid-operation.
type Assigner struct {
	selection   *string
	mode        Mode
	creations   pendingQueue[PendingCreation]
	updates     pendingQueue[PendingUpdate]
	outstanding int

	dialogs *DialogSet
	toasts  Toasts
	obs     EngineObserver
}

// NewAssigner returns an idle assigner with an empty selection.
func NewAssigner(dialogs *DialogSet, toasts Toasts, obs EngineObserver) *Assigner {
	if toasts == nil {
		toasts = NoopToasts{}
	}
	return &Assigner{dialogs: dialogs, toasts: toasts, obs: observerOrNoop(obs)}
}

// Selection returns the currently chosen category ID, or nil.
func (a *Assigner) Selection() *string { return domain.ClonePtr(a.selection) }

// Mode returns the machine's current state.
func (a *Assigner) Mode() Mode { return a.mode }

// PendingCreations returns the number of queued empty-bucket taps.
func (a *Assigner) PendingCreations() int { return a.creations.Len() }

// PendingUpdates returns the number of queued record taps.
func (a *Assigner) PendingUpdates() int { return a.updates.Len() }

// Tap handles a bucket tap. With no category selected the intent is queued,
// the legend is forced open in picking mode (all other dialogs collapsed),
// and a warning notice is emitted; no record is created or mutated. With a
// category selected the outcome carries a draft for the direct-commit path,
// which bypasses the queues entirely.
func (a *Assigner) Tap(bucket domain.TimeBucket) TapOutcome {
	if a.selection == nil {
		a.defer_(bucket)
		return TapOutcome{Deferred: true}
	}

	draft := bucket.Record()
	draft.CategoryID = domain.ClonePtr(a.selection)
	if bucket.Empty() {
		a.obs.Observe(EngineEvent{Op: "direct_create", Success: true, Fields: map[string]any{
			"start": draft.Start,
		}})
		return TapOutcome{Create: draft}
	}
	a.obs.Observe(EngineEvent{Op: "direct_update", Success: true, Fields: map[string]any{
		"record": draft.ID,
	}})
	return TapOutcome{Update: draft}
}

func (a *Assigner) defer_(bucket domain.TimeBucket) {
	if bucket.Empty() {
		added := a.creations.Enqueue(PendingCreation{Bucket: bucket})
		a.obs.Observe(EngineEvent{Op: "enqueue_creation", Success: added, Fields: map[string]any{
			"start":  bucket.Start,
			"queued": a.creations.Len(),
		}})
	} else {
		added := a.updates.Enqueue(PendingUpdate{Record: *bucket.Record()})
		a.obs.Observe(EngineEvent{Op: "enqueue_update", Success: added, Fields: map[string]any{
			"record": *bucket.Identity,
			"queued": a.updates.Len(),
		}})
	}

	a.dialogs.OpenPicking(DialogLegend)
	a.toasts.Warning("Pick a category to log this slot")
	a.mode = ModePicking
}

// Select records the chosen category (nil clears the selection) and returns
// the batch drafts to flush for any queued intents. The caller submits the
// batches to the store and reports back through CompleteCreates /
// CompleteUpdates.
func (a *Assigner) Select(categoryID *string) Flush {
	a.selection = domain.ClonePtr(categoryID)
	a.dialogs.ExitPicking(DialogLegend)

	if a.selection == nil {
		a.mode = ModeIdle
		return Flush{}
	}

	var flush Flush
	for _, p := range a.creations.Items() {
		draft := p.Bucket.Record()
		draft.CategoryID = domain.ClonePtr(a.selection)
		flush.Creates = append(flush.Creates, draft)
	}
	for _, p := range a.updates.Items() {
		rec := p.Record.Clone()
		rec.CategoryID = domain.ClonePtr(a.selection)
		flush.Updates = append(flush.Updates, rec)
	}

	if flush.Empty() {
		a.mode = ModeIdle
		return flush
	}

	if len(flush.Creates) > 0 {
		a.outstanding++
	}
	if len(flush.Updates) > 0 {
		a.outstanding++
	}
	a.mode = ModeCommitting
	return flush
}

// CompleteCreates handles the batch-create result. A batch that produced at
// least one record clears the creation queue and emits a success notice; an
// empty or failed batch leaves the queue intact for the user to retry or
// clear — there is no automatic retry and no rollback of partial successes.
func (a *Assigner) CompleteCreates(created []*domain.TimeRecord, err error) {
	a.settle()
	if err != nil || len(created) == 0 {
		a.obs.Observe(EngineEvent{Op: "flush_creations", Err: err, Fields: map[string]any{
			"queued": a.creations.Len(),
		}})
		a.toasts.Error("Could not log the queued slots")
		return
	}

	a.creations.Clear()
	a.obs.Observe(EngineEvent{Op: "flush_creations", Success: true, Fields: map[string]any{
		"created": len(created),
	}})
	a.toasts.Success(fmt.Sprintf("Logged %d slot(s)", len(created)))
}

// CompleteUpdates is the batch-update counterpart of CompleteCreates.
func (a *Assigner) CompleteUpdates(updated []*domain.TimeRecord, err error) {
	a.settle()
	if err != nil || len(updated) == 0 {
		a.obs.Observe(EngineEvent{Op: "flush_updates", Err: err, Fields: map[string]any{
			"queued": a.updates.Len(),
		}})
		a.toasts.Error("Could not recategorize the queued slots")
		return
	}

	a.updates.Clear()
	a.obs.Observe(EngineEvent{Op: "flush_updates", Success: true, Fields: map[string]any{
		"updated": len(updated),
	}})
	a.toasts.Success(fmt.Sprintf("Recategorized %d slot(s)", len(updated)))
}

// ClearPending drops both queues without committing anything.
func (a *Assigner) ClearPending() {
	a.creations.Clear()
	a.updates.Clear()
	if a.mode == ModePicking {
		a.mode = ModeIdle
	}
}

func (a *Assigner) settle() {
	if a.outstanding > 0 {
		a.outstanding--
	}
	if a.outstanding == 0 {
		a.mode = ModeIdle
	}
}
