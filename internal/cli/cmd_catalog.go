package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var (
	errUnknownCategory = errors.New("unknown category")
	errUnknownLocation = errors.New("unknown location")
)

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List tour categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd, app)
		},
	}
}

func runCategories(cmd *cobra.Command, app *App) error {
	cats := app.Catalog.Categories()
	counts := make(map[string]int, len(cats))
	for _, c := range cats {
		counts[c] = len(app.Catalog.LocationsFor(c))
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategories(cats, counts))
	return nil
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list <category>",
		Short:   "List the places in a category",
		Args:    cobra.ExactArgs(1),
		Example: "  explore list Museums",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := resolveCategory(app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLocationList(category, app.Catalog.LocationsFor(category)))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show <category> <id>",
		Short:   "Show one place",
		Args:    cobra.ExactArgs(2),
		Example: "  explore show Museums 2",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := resolveCategory(app, args[0])
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: id %q is not a number", errUnknownLocation, args[1])
			}
			loc, ok := app.Catalog.GetLocation(category, id)
			if !ok {
				return fmt.Errorf("%w: no place %d in %s", errUnknownLocation, id, category)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLocation(loc))
			return nil
		},
	}
}

// resolveCategory accepts any casing of a known category and suggests the
// closest one otherwise.
func resolveCategory(app *App, input string) (string, error) {
	if c, ok := app.Catalog.MatchCategory(input); ok {
		return c, nil
	}
	if hint, ok := app.Catalog.Suggest(input); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", errUnknownCategory, input, hint)
	}
	return "", fmt.Errorf("%w %q", errUnknownCategory, input)
}
