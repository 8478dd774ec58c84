package timeline

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// Engine bundles the grid generator, cache, fetch coordinator, assignment
// machine and deleter behind one handle for the UI layer. It holds no
// store reference itself: methods either mutate in-memory state or hand the
// caller drafts to run against the store asynchronously.
type Engine struct {
	Owner   string
	Cache   *RecordCache
	Coord   *Coordinator
	Assign  *Assigner
	Deleter *Deleter
	Dialogs *DialogSet
}

// NewEngine wires an engine for the given owner.
func NewEngine(owner string, toasts Toasts, obs EngineObserver) *Engine {
	obs = observerOrNoop(obs)
	cache := NewRecordCache()
	dialogs := NewDialogSet(DialogLegend, DialogMood, DialogNotes, DialogOptions)
	return &Engine{
		Owner:   owner,
		Cache:   cache,
		Coord:   NewCoordinator(cache, obs),
		Assign:  NewAssigner(dialogs, toasts, obs),
		Deleter: NewDeleter(obs),
		Dialogs: dialogs,
	}
}

// Day returns the reconciled 48-bucket grid for the calendar day containing
// date: freshly generated placeholders with every cached record for that
// day merged in. Cheap enough to run on every render pass.
func (e *Engine) Day(date time.Time) []domain.TimeBucket {
	buckets := BuildDay(date, e.Owner)
	records := e.Cache.InRange(buckets[0].Start, buckets[len(buckets)-1].End)
	return Reconcile(buckets, records)
}
