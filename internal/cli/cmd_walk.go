package cli

import (
	"fmt"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/spf13/cobra"
)

func newWalkCmd(app *App) *cobra.Command {
	var (
		trace bool
		from  routeFlag
	)

	cmd := &cobra.Command{
		Use:   "walk <intent>...",
		Short: "Replay navigation intents and print the resulting state",
		Long: `Replay navigation intents without a terminal UI.

Intents: categories, select:<category>, item:<id>, back, home, system-back.`,
		Example: "  explore walk categories select:Museums item:2 back",
		RunE: func(cmd *cobra.Command, args []string) error {
			intents := make([]nav.Intent, 0, len(args))
			for _, a := range args {
				in, err := nav.ParseIntent(a)
				if err != nil {
					return err
				}
				intents = append(intents, in)
			}

			out := cmd.OutOrStdout()
			opts := []nav.Option{nav.WithObserver(app.observer())}
			if from.screen.Kind != "" {
				opts = append(opts, nav.WithState(nav.StateAt(from.screen)))
			}
			m := nav.NewMachine(app.Catalog, opts...)
			for _, in := range intents {
				result := m.Apply(in)
				if trace {
					fmt.Fprintf(out, "%-18s → %s%s\n", in, m.Screen(), outcomeNote(result))
				}
				if result.Propagate {
					fmt.Fprintln(out, formatter.Dim("system back left the tour"))
					return nil
				}
			}

			s := m.State()
			fmt.Fprint(out, formatter.FormatScreenStack(s.Screen, s.Stack, s.HomeCycleCompleted, s.BackSuppressed()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print the screen after every intent")
	cmd.Flags().Var(&from, "from", "Start from a route instead of home")

	return cmd
}

func outcomeNote(o nav.Outcome) string {
	switch {
	case o.Fallback:
		return formatter.Dim(" (invalid, went back)")
	case o.Ignored:
		return formatter.Dim(" (ignored)")
	case o.Suppressed:
		return formatter.Dim(" (back suppressed)")
	case o.Propagate:
		return formatter.Dim(" (exit)")
	default:
		return ""
	}
}
