package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the timeline interface. The haptic sink is bound to the
// program handle so momentum pulses fired on timer goroutines are
// marshalled onto the UI loop.
func runTUI(app *App) error {
	sink := &hapticSink{}
	m := newAppModel(app, sink)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	sink.Bind(p.Send)

	_, err := p.Run()
	return err
}
