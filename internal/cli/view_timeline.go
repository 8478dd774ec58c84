package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlog/gridlog/internal/cli/formatter"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/timeline"
)

// cellWidth is the screen width of one 30-minute cell, marker included.
const cellWidth = 6

// timelineView is the home view: the horizontal 48-cell strip for one
// calendar day, with a cursor, lazy fetching, deferred category assignment
// and scroll-to-now.
type timelineView struct {
	state  *SharedState
	cursor int
	// first is the leftmost visible cell index.
	first        int
	userScrolled bool
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{state: state}
}

func (v *timelineView) ID() ViewID { return ViewTimeline }

func (v *timelineView) Title() string { return "" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log slot")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "legend")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mood")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "note")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resync")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "day")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return tea.Batch(
		v.fetchDisplayedDay(),
		v.loadCategories(),
		v.scheduleNowTick(),
	)
}

// ── commands ────────────────────────────────────────────────────────────────

// fetchDisplayedDay runs the coarse presence check synchronously and, when
// a fetch is needed, returns the command that performs the store call.
func (v *timelineView) fetchDisplayedDay() tea.Cmd {
	win, ok := v.state.Engine.Coord.Begin(v.state.Displayed)
	if !ok {
		return nil
	}
	records := v.state.App.Records
	return func() tea.Msg {
		recs, err := records.FetchRange(context.Background(), win.Start, win.End)
		return fetchDoneMsg{win: win, records: recs, err: err}
	}
}

func (v *timelineView) refresh() tea.Cmd {
	win := v.state.Engine.Coord.BeginRefresh(v.state.now())
	records := v.state.App.Records
	return func() tea.Msg {
		recs, err := records.FetchRange(context.Background(), win.Start, win.End)
		return refreshDoneMsg{win: win, records: recs, err: err}
	}
}

func (v *timelineView) loadCategories() tea.Cmd {
	categories := v.state.App.Categories
	return func() tea.Msg {
		cats, err := categories.List(context.Background())
		return categoriesLoadedMsg{categories: cats, err: err}
	}
}

func (v *timelineView) runFlush(flush timeline.Flush) tea.Cmd {
	records := v.state.App.Records
	var cmds []tea.Cmd
	if len(flush.Creates) > 0 {
		drafts := flush.Creates
		cmds = append(cmds, func() tea.Msg {
			created, err := records.CreateBatch(context.Background(), drafts)
			return flushCreatesDoneMsg{created: created, err: err}
		})
	}
	if len(flush.Updates) > 0 {
		recs := flush.Updates
		cmds = append(cmds, func() tea.Msg {
			updated, err := records.UpdateBatch(context.Background(), recs)
			return flushUpdatesDoneMsg{updated: updated, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (v *timelineView) createRecord(draft *domain.TimeRecord) tea.Cmd {
	records := v.state.App.Records
	return func() tea.Msg {
		rec, err := records.Create(context.Background(), draft)
		return createDoneMsg{rec: rec, err: err}
	}
}

func (v *timelineView) updateRecord(rec *domain.TimeRecord) tea.Cmd {
	records := v.state.App.Records
	return func() tea.Msg {
		out, err := records.Update(context.Background(), rec)
		return updateDoneMsg{rec: out, err: err}
	}
}

func (v *timelineView) deleteRecord(id string) tea.Cmd {
	records := v.state.App.Records
	return func() tea.Msg {
		err := records.Delete(context.Background(), id)
		return deleteDoneMsg{id: id, err: err}
	}
}

func (v *timelineView) reloadRecord(id string) tea.Cmd {
	records := v.state.App.Records
	return func() tea.Msg {
		rec, err := records.GetByID(context.Background(), id)
		return recordReloadedMsg{rec: rec, err: err}
	}
}

func (v *timelineView) scheduleNowTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return nowTickMsg{now: t}
	})
}

// ── update ──────────────────────────────────────────────────────────────────

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		v.applyScrollToNow(false)
		return v, nil

	case fetchDoneMsg:
		v.state.Engine.Coord.Complete(msg.win, msg.records, msg.err)
		return v, nil

	case refreshDoneMsg:
		v.state.Engine.Coord.CompleteRefresh(msg.win, msg.records, msg.err)
		if msg.err == nil {
			v.state.Toasts.Success("Timeline resynced")
		}
		return v, nil

	case categoriesLoadedMsg:
		if msg.err == nil {
			v.state.Categories = msg.categories
		}
		return v, nil

	case categoryPickedMsg:
		flush := v.state.Engine.Assign.Select(msg.id)
		if flush.Empty() {
			return v, nil
		}
		return v, v.runFlush(flush)

	case flushCreatesDoneMsg:
		v.state.Engine.Assign.CompleteCreates(msg.created, msg.err)
		if msg.err == nil {
			v.state.Engine.Cache.Merge(msg.created)
		}
		return v, nil

	case flushUpdatesDoneMsg:
		v.state.Engine.Assign.CompleteUpdates(msg.updated, msg.err)
		for _, rec := range msg.updated {
			v.state.Engine.Cache.Upsert(rec)
		}
		return v, nil

	case createDoneMsg:
		if msg.err != nil {
			v.state.Toasts.Error("Could not log the slot")
			return v, nil
		}
		v.state.Engine.Cache.Upsert(msg.rec)
		v.state.Toasts.Success("Slot logged")
		return v, nil

	case updateDoneMsg:
		if msg.err != nil {
			v.state.Toasts.Error("Could not update the slot")
			return v, nil
		}
		v.state.Engine.Cache.Upsert(msg.rec)
		v.state.Toasts.Success("Slot updated")
		return v, nil

	case deleteDoneMsg:
		if msg.err != nil {
			v.state.Toasts.Error("Could not delete the slot")
			return v, nil
		}
		v.state.Engine.Cache.Remove(msg.id)
		v.state.Toasts.Success("Slot deleted")
		return v, nil

	case recordReloadedMsg:
		if msg.err == nil {
			v.state.Engine.Cache.Upsert(msg.rec)
		}
		return v, nil

	case nowTickMsg:
		v.applyScrollToNow(false)
		return v, v.scheduleNowTick()

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

// handleMouse maps wheel events onto cursor movement so scrolling feeds the
// momentum simulator the same way key navigation does.
func (v *timelineView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	buckets := v.state.Engine.Day(v.state.Displayed)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		v.moveCursor(buckets, -1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		v.moveCursor(buckets, +1)
	}
	return v, nil
}

func (v *timelineView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buckets := v.state.Engine.Day(v.state.Displayed)

	switch msg.String() {
	case "left", "h":
		v.moveCursor(buckets, -1)
	case "right", "l":
		v.moveCursor(buckets, +1)
	case "H", "pgup":
		v.flingCursor(buckets, -v.visibleCells())
	case "L", "pgdown":
		v.flingCursor(buckets, +v.visibleCells())

	case "[":
		return v, v.showDay(v.state.Displayed.AddDate(0, 0, -1))
	case "]":
		return v, v.showDay(v.state.Displayed.AddDate(0, 0, 1))
	case "t":
		cmd := v.showDay(v.state.now())
		v.userScrolled = false
		v.applyScrollToNow(true)
		return v, cmd

	case "enter", " ":
		outcome := v.state.Engine.Assign.Tap(buckets[v.cursor])
		switch {
		case outcome.Deferred:
			return v, pushView(newLegendView(v.state))
		case outcome.Create != nil:
			return v, v.createRecord(outcome.Create)
		case outcome.Update != nil:
			return v, v.updateRecord(outcome.Update)
		}

	case "x":
		bucket := buckets[v.cursor]
		switch v.state.Engine.Deleter.Decide(bucket) {
		case timeline.DeleteImmediate:
			return v, v.deleteRecord(*bucket.Identity)
		case timeline.DeleteNeedsConfirm:
			return v, pushView(newDeleteConfirmView(v.state, bucket, v.deleteRecord(*bucket.Identity)))
		}

	case "c":
		v.state.Engine.Dialogs.Open(timeline.DialogLegend)
		return v, pushView(newLegendView(v.state))

	case "m":
		if bucket := buckets[v.cursor]; !bucket.Empty() {
			v.state.Engine.Dialogs.Open(timeline.DialogMood)
			return v, pushView(newMoodFormView(v.state, bucket))
		}
	case "n":
		if bucket := buckets[v.cursor]; !bucket.Empty() {
			v.state.Engine.Dialogs.Open(timeline.DialogNotes)
			return v, pushView(newNoteFormView(v.state, bucket))
		}

	case "r":
		return v, v.refresh()

	case "esc":
		// Drop any queued intents and clear the selection.
		v.state.Engine.Assign.ClearPending()
		v.state.Engine.Assign.Select(nil)
		v.state.Engine.Dialogs.CollapseAll()
		v.state.Momentum.End()
	}

	return v, nil
}

// showDay switches the displayed day and kicks off its lazy fetch.
func (v *timelineView) showDay(date time.Time) tea.Cmd {
	v.state.Displayed = date
	v.cursor = 0
	v.first = 0
	v.userScrolled = false
	v.state.Momentum.End()
	return v.fetchDisplayedDay()
}

// moveCursor shifts the cursor, keeps it visible and feeds the momentum
// simulator one position sample.
func (v *timelineView) moveCursor(buckets []domain.TimeBucket, delta int) {
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor >= len(buckets) {
		v.cursor = len(buckets) - 1
	}
	v.userScrolled = true
	v.ensureCursorVisible(len(buckets))
	v.state.Momentum.Sample(float64(v.cursor), v.state.now())
}

// flingCursor is the page-jump gesture: it moves by a screenful and hands
// the implied velocity to the momentum decay loop.
func (v *timelineView) flingCursor(buckets []domain.TimeBucket, delta int) {
	v.moveCursor(buckets, delta)
	// A screenful over a nominal 40ms frame, in cells per millisecond.
	velocity := float64(delta) / 40
	v.state.Momentum.Release(velocity)
}

func (v *timelineView) visibleCells() int {
	if v.state.Width <= 0 {
		return timeline.BucketsPerDay
	}
	n := v.state.Width / cellWidth
	if n < 1 {
		n = 1
	}
	return n
}

func (v *timelineView) ensureCursorVisible(total int) {
	visible := v.visibleCells()
	if v.cursor < v.first {
		v.first = v.cursor
	}
	if v.cursor >= v.first+visible {
		v.first = v.cursor - visible + 1
	}
	if v.first > total-visible {
		v.first = total - visible
	}
	if v.first < 0 {
		v.first = 0
	}
}

// applyScrollToNow recenters on the current slot. It only applies on
// today's grid and never fights a manual scroll unless forced.
func (v *timelineView) applyScrollToNow(force bool) {
	now := v.state.now()
	if !timeline.AutoScrollAllowed(v.state.Displayed, now) {
		return
	}
	if v.userScrolled && !force {
		return
	}

	buckets := v.state.Engine.Day(v.state.Displayed)
	plan, ok := timeline.ScrollToNow(buckets, now, cellWidth, v.visibleCells()*cellWidth)
	if !ok {
		return
	}
	v.first = plan.Offset / cellWidth
	v.cursor = plan.Index
}

// ── view ────────────────────────────────────────────────────────────────────

func (v *timelineView) View() string {
	buckets := v.state.Engine.Day(v.state.Displayed)
	resolve := v.state.CategoryByID
	cache := v.state.Engine.Cache

	dayStart := timeline.DayStart(v.state.Displayed)
	loading := cache.IsLoading(dayStart.Format("2006-01-02"))

	sections := []string{
		formatter.DayHeader(dayStart, loading, cache.LastError()),
		"",
		formatter.GridRow(buckets, resolve, v.cursor, cellWidth, v.first, v.visibleCells()),
		formatter.HourAxis(buckets, cellWidth, v.first, v.visibleCells()),
		"",
		formatter.BucketDetail(buckets[v.cursor], resolve),
	}

	if pending := v.state.Engine.Assign.PendingCreations() + v.state.Engine.Assign.PendingUpdates(); pending > 0 {
		sections = append(sections, formatter.StyleYellow.Render(
			formatter.PendingLine(pending)))
	}
	if sel := v.state.Engine.Assign.Selection(); sel != nil {
		if cat := v.state.CategoryByID(sel); cat != nil {
			sections = append(sections, formatter.Dim("painting: ")+formatter.CategoryStyle(cat).Render(cat.Name))
		}
	}

	out := ""
	for i, s := range sections {
		if i > 0 {
			out += "\n"
		}
		out += s
	}
	return out
}
