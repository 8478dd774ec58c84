package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is one layer of the TUI's view stack: the timeline grid at the
// bottom, with the legend and huh-backed forms pushed on top of it.
// Beyond tea.Model, a view declares its identity for stack decisions,
// the key hints for the status bar and a breadcrumb title.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}

// ViewID distinguishes view kinds on the stack. The app model uses it to
// route keystrokes (forms receive every key) and to pop the legend after
// a category pick.
type ViewID int

const (
	ViewTimeline ViewID = iota
	ViewLegend
	ViewForm
)
