package cli

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/timeline"
)

// Store round-trip results. Each mutation runs as an asynchronous tea.Cmd;
// the matching message feeds the outcome back into the engine on the UI
// goroutine.

// fetchDoneMsg carries a lazy day-fetch result.
type fetchDoneMsg struct {
	win     timeline.FetchWindow
	records []*domain.TimeRecord
	err     error
}

// refreshDoneMsg carries a pull-to-refresh result.
type refreshDoneMsg struct {
	win     timeline.FetchWindow
	records []*domain.TimeRecord
	err     error
}

// createDoneMsg carries a direct-commit create result.
type createDoneMsg struct {
	rec *domain.TimeRecord
	err error
}

// updateDoneMsg carries a direct-commit or single-record update result.
type updateDoneMsg struct {
	rec *domain.TimeRecord
	err error
}

// flushCreatesDoneMsg carries the batch-create half of a pending flush.
type flushCreatesDoneMsg struct {
	created []*domain.TimeRecord
	err     error
}

// flushUpdatesDoneMsg carries the batch-update half of a pending flush.
type flushUpdatesDoneMsg struct {
	updated []*domain.TimeRecord
	err     error
}

// deleteDoneMsg carries a record deletion result.
type deleteDoneMsg struct {
	id  string
	err error
}

// categoriesLoadedMsg delivers the legend contents.
type categoriesLoadedMsg struct {
	categories []*domain.Category
	err        error
}

// categoryPickedMsg is broadcast when the legend view commits a selection.
// A nil id clears the selection.
type categoryPickedMsg struct {
	id *string
}

// recordReloadedMsg refreshes a single cached record after a note or mood
// edit.
type recordReloadedMsg struct {
	rec *domain.TimeRecord
	err error
}

// nowTickMsg drives the once-a-minute auto-scroll recheck.
type nowTickMsg struct {
	now time.Time
}

// hapticPulseMsg is sent by the haptic sink when the momentum simulator
// fires a pulse. It may originate on a timer goroutine; bubbletea's Send
// marshals it onto the UI goroutine.
type hapticPulseMsg struct {
	strength timeline.ImpactStrength
}

// toastTickMsg expires the visible toast; stale seqs are ignored.
type toastTickMsg struct{ seq int }

// flashTickMsg expires the haptic flash indicator; stale seqs are ignored.
type flashTickMsg struct{ seq int }
