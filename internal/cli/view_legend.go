package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlog/gridlog/internal/cli/formatter"
	"github.com/gridlog/gridlog/internal/timeline"
)

// legendView lists the category legend. In picking mode (opened by a
// deferred tap) choosing an entry flushes the pending queues; opened
// manually it just sets the active painting category.
type legendView struct {
	state  *SharedState
	cursor int
}

func newLegendView(state *SharedState) *legendView {
	return &legendView{state: state}
}

func (v *legendView) ID() ViewID { return ViewLegend }

func (v *legendView) Title() string {
	if v.state.Engine.Dialogs.State(timeline.DialogLegend).PickingMode {
		return "Pick a category"
	}
	return "Legend"
}

func (v *legendView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "clear selection")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add category")),
	}
}

func (v *legendView) Init() tea.Cmd { return nil }

func (v *legendView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.err == nil {
			v.state.Categories = msg.categories
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.state.Categories)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.state.Categories) {
				id := v.state.Categories[v.cursor].ID
				return v, func() tea.Msg { return categoryPickedMsg{id: &id} }
			}
		case "0":
			return v, func() tea.Msg { return categoryPickedMsg{id: nil} }
		case "a":
			return v, pushView(newCategoryFormView(v.state))
		}
	}
	return v, nil
}

func (v *legendView) View() string {
	if len(v.state.Categories) == 0 {
		return "\n  " + formatter.Dim("No categories yet. Press 'a' to add one.")
	}

	out := "\n"
	for i, cat := range v.state.Categories {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("> ")
		}
		line := formatter.CategoryStyle(cat).Render("■ ") + cat.Name
		if sel := v.state.Engine.Assign.Selection(); sel != nil && *sel == cat.ID {
			line += " " + formatter.Dim("(painting)")
		}
		out += "  " + marker + line + "\n"
	}
	return out
}
