package cli

import (
	"github.com/gridlog/gridlog/internal/service"
	"github.com/gridlog/gridlog/internal/timeline"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Records    service.RecordService
	Categories service.CategoryService
	Notes      service.NoteService

	// Owner stamps every record created from this terminal.
	Owner string

	// HapticsEnabled toggles the momentum pulse simulation; the status
	// bar flash is the terminal stand-in for a vibration motor.
	HapticsEnabled bool

	Observer timeline.EngineObserver

	// IsInteractive reports whether stdin is a terminal; the bare
	// "gridlog" invocation only starts the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "gridlog" command and registers all
// subcommands against the provided App. Running it with no subcommand
// launches the timeline TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gridlog",
		Short: "Half-hour timeline logger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newDayCmd(app),
		newReportCmd(app),
		newCategoryCmd(app),
	)

	return root
}
