package cli

import tea "github.com/charmbracelet/bubbletea"

// View-stack navigation messages. Views emit these as commands; only the
// app model mutates the stack.

// pushViewMsg stacks a view on top of the current one.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the view below the current one.
type popViewMsg struct{}

// wizardCompleteMsg closes a form view. Popping and running nextCmd happen
// in one Update so the underlying view never renders with a half-finished
// form on top.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}
