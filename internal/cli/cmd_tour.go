package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTourCmd(app *App) *cobra.Command {
	var start routeFlag

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Open the interactive tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, app, start.screen)
		},
	}

	cmd.Flags().Var(&start, "start", "Open on a route such as list/Parks or detail/Museums/2")

	return cmd
}

func runTour(cmd *cobra.Command, app *App, start domain.Screen) error {
	initial, err := initialState(app, start)
	if err != nil {
		return err
	}

	run := app.RunProgram
	if run == nil {
		run = runProgram
	}
	var opts []tea.ProgramOption
	if app.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithOutput(cmd.OutOrStdout()))

	final, err := run(newAppModel(app, initial), opts...)
	if err != nil {
		return fmt.Errorf("running tour: %w", err)
	}
	if m, ok := final.(appModel); ok && m.saveErr != nil {
		return fmt.Errorf("saving session: %w", m.saveErr)
	}
	return nil
}

func runProgram(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// initialState picks where the tour opens. A restored session supplies
// the screen and the home cycle flag; an explicit start screen (flag, then
// App.Start) overrides the screen but keeps the flag.
func initialState(app *App, start domain.Screen) (nav.State, error) {
	state := nav.NewState()
	if app.Sessions != nil {
		restored, _, err := app.Sessions.Restore(context.Background())
		if err != nil {
			return state, fmt.Errorf("restoring session: %w", err)
		}
		state = restored
	}

	screen := app.Start
	if start.Kind != "" {
		screen = start
	}
	if screen.Kind != "" {
		homeCycle := state.HomeCycleCompleted
		state = nav.StateAt(screen)
		state.HomeCycleCompleted = homeCycle
	}
	return state, nil
}
