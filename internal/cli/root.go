package cli

import (
	"github.com/alexanderramin/explore/internal/catalog"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/alexanderramin/explore/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds everything the commands and the TUI need.
type App struct {
	Catalog *catalog.Store

	// Sessions is nil when session persistence is off; the tour is then
	// session scoped and forgets its state on exit.
	Sessions service.SessionService

	// Observer receives navigation transitions. Nil means no logging.
	Observer nav.Observer

	// Start is the screen the tour opens on. The zero value means Home,
	// or the restored screen when Sessions is set.
	Start domain.Screen

	AltScreen bool

	// IsInteractive reports whether stdin is a terminal. The bare
	// "explore" command opens the tour only when it returns true.
	IsInteractive func() bool

	// RunProgram runs a Bubble Tea model to completion. Tests replace it.
	RunProgram func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

	// Chooser backs the pick command. Nil means huh prompts.
	Chooser Chooser
}

// NewRootCmd creates the top-level "explore" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "explore",
		Short:         "A pocket tour of Boston",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTour(cmd, app, domain.Screen{})
			}
			return runCategories(cmd, app)
		},
	}

	root.AddCommand(
		newTourCmd(app),
		newCategoriesCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newWalkCmd(app),
		newPickCmd(app),
		newSessionCmd(app),
	)

	return root
}

func (app *App) observer() nav.Observer {
	if app.Observer == nil {
		return nav.NoopObserver{}
	}
	return app.Observer
}
