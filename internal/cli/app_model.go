package cli

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlog/gridlog/internal/cli/formatter"
	"github.com/gridlog/gridlog/internal/timeline"
)

// toastDuration is how long a notice stays in the status bar.
const toastDuration = 3 * time.Second

// flashDuration is how long a haptic pulse flash stays visible.
const flashDuration = 250 * time.Millisecond

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, the toast tray and the haptic flash indicator.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Haptic flash indicator state.
	flashSeq      int
	flashStrength timeline.ImpactStrength
	flashVisible  bool
}

func newAppModel(app *App, haptics timeline.Haptics) appModel {
	tray := &toastTray{}
	obs := app.Observer
	state := &SharedState{
		App:       app,
		Engine:    timeline.NewEngine(app.Owner, tray, obs),
		Toasts:    tray,
		Displayed: time.Now(),
	}

	if haptics == nil || !app.HapticsEnabled {
		haptics = timeline.NoopHaptics{}
	}
	state.Momentum = timeline.NewMomentum(timeline.DefaultMomentumConfig(), haptics, nil, obs)

	m := appModel{state: state}
	m.viewStack = []View{newTimelineView(state)}
	return m
}

// top returns the view currently in control, or nil.
func (m *appModel) top() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setTop swaps the view in control after its Update returned a new model.
func (m *appModel) setTop(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.top(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.top(); v != nil {
			updated, cmd := v.Update(msg)
			m.setTop(updated.(View))
			return m.trackToast(cmd)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m.trackToast(msg.view.Init())

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case wizardCompleteMsg:
		// Pop the form and run its follow-up in the same Update so the
		// timeline never renders under a dead form.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m.trackToast(msg.nextCmd)

	case categoryPickedMsg:
		// Pop the legend if it is on top, then let the timeline view run
		// the flush.
		if v := m.top(); v != nil && v.ID() == ViewLegend && len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m.broadcast(msg)

	case hapticPulseMsg:
		m.flashSeq++
		m.flashStrength = msg.strength
		m.flashVisible = true
		seq := m.flashSeq
		return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
			return flashTickMsg{seq: seq}
		})

	case flashTickMsg:
		if msg.seq == m.flashSeq {
			m.flashVisible = false
		}
		return m, nil

	case toastTickMsg:
		m.state.Toasts.Dismiss(msg.seq)
		return m, nil
	}

	// Forward everything else to the active view.
	if v := m.top(); v != nil {
		updated, cmd := v.Update(msg)
		m.setTop(updated.(View))
		return m.trackToast(cmd)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.state.Momentum.End()
		m.quitting = true
		return m, tea.Quit
	}

	// Views with their own text input receive every key, including 'q'.
	if v := m.top(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setTop(updated.(View))
		return m.trackToast(cmd)
	}

	switch {
	case msg.String() == "q" && len(m.viewStack) == 1:
		m.state.Momentum.End()
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc && len(m.viewStack) > 1:
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
		return m, nil
	}

	if v := m.top(); v != nil {
		updated, cmd := v.Update(msg)
		m.setTop(updated.(View))
		return m.trackToast(cmd)
	}
	return m, nil
}

// trackToast schedules expiry for any notice the engine posted during the
// Update call that produced cmd.
func (m appModel) trackToast(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if _, msg := m.state.Toasts.Current(); msg == "" {
		return m, cmd
	}
	seq := m.state.Toasts.Seq()
	expire := tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTickMsg{seq: seq}
	})
	return m, tea.Batch(cmd, expire)
}

// broadcast forwards msg to every view on the stack.
func (m appModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m.trackToast(tea.Batch(cmds...))
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.headerLine())
	if v := m.top(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.statusLine())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen line differ repaints
	// everything below the status bar.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) headerLine() string {
	title := formatter.StylePurple.Render("gridlog")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb
	if m.flashVisible {
		header += "  " + formatter.ImpactLabel(m.flashStrength)
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) statusLine() string {
	var hints []string

	if level, msg := m.state.Toasts.Current(); msg != "" {
		switch level {
		case toastSuccess:
			hints = append(hints, formatter.StyleGreen.Render(msg))
		case toastWarning:
			hints = append(hints, formatter.StyleYellow.Render(msg))
		default:
			hints = append(hints, formatter.StyleRed.Render(msg))
		}
	} else if v := m.top(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
