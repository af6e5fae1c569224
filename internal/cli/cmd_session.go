package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errSessionsDisabled = errors.New("session persistence is off (set session.persist = true or EXPLORE_SESSION_PERSIST=true)")

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear the saved tour session",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved navigation state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Sessions == nil {
					return errSessionsDisabled
				}
				state, ok, err := app.Sessions.Restore(context.Background())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No saved session."))
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScreenStack(
					state.Screen, state.Stack, state.HomeCycleCompleted, state.BackSuppressed()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Forget the saved session, including the home cycle flag",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Sessions == nil {
					return errSessionsDisabled
				}
				if err := app.Sessions.Reset(context.Background()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Session cleared."))
				return nil
			},
		},
	)

	return cmd
}
