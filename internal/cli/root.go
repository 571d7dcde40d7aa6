package cli

import (
	"github.com/branxiety/gameplan-ai/internal/catalog"
	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the wired services and settings used by CLI commands.
type App struct {
	Planner  coach.Service
	Catalog  *catalog.Catalog
	Detector *catalog.Detector
	Logger   zerolog.Logger
	Addr     string
	Version  string

	// IsTerminal reports whether stdin is an interactive terminal. When it
	// returns true the bare "gameplan" invocation starts the TUI; otherwise
	// it prints help. Nil means non-interactive.
	IsTerminal func() bool
}

// NewRootCmd creates the top-level "gameplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:     "gameplan",
		Short:   "AI training companion that turns your preferences into a workout plan",
		Version: app.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsTerminal != nil && app.IsTerminal() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGenerateCmd(app),
		newShellCmd(app),
		newCatalogCmd(app),
		newDetectCmd(app),
		newServeCmd(app),
	)

	return root
}
