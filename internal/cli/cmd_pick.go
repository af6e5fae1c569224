package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// Chooser asks the user for one category and then one location.
type Chooser interface {
	ChooseCategory(categories []string) (string, error)
	ChooseLocation(category string, locs []domain.Location) (int, error)
}

func newPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a place with simple prompts instead of the full tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chooser := app.Chooser
			if chooser == nil {
				chooser = huhChooser{}
			}
			loc, err := pick(app, chooser)
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLocation(loc))
			return nil
		},
	}
}

// pick walks the state machine Home → Categories → List → Detail using the
// chooser's answers, so prompt answers get the same validation as the TUI.
func pick(app *App, chooser Chooser) (domain.Location, error) {
	m := nav.NewMachine(app.Catalog, nav.WithObserver(app.observer()))
	m.Apply(nav.GoToCategories())

	category, err := chooser.ChooseCategory(app.Catalog.Categories())
	if err != nil {
		return domain.Location{}, err
	}
	if out := m.Apply(nav.SelectCategory(category)); out.Fallback {
		return domain.Location{}, fmt.Errorf("%w %q", errUnknownCategory, category)
	}

	id, err := chooser.ChooseLocation(category, app.Catalog.LocationsFor(category))
	if err != nil {
		return domain.Location{}, err
	}
	if out := m.Apply(nav.SelectItem(id)); out.Fallback {
		return domain.Location{}, fmt.Errorf("%w: no place %d in %s", errUnknownLocation, id, category)
	}

	screen := m.Screen()
	loc, _ := app.Catalog.GetLocation(screen.Category, screen.LocationID)
	return loc, nil
}

type huhChooser struct{}

func (huhChooser) ChooseCategory(categories []string) (string, error) {
	var choice string
	if err := categoryForm(categories, &choice).Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func (huhChooser) ChooseLocation(category string, locs []domain.Location) (int, error) {
	var choice int
	if err := locationForm(category, locs, &choice).Run(); err != nil {
		return 0, err
	}
	return choice, nil
}

func categoryForm(categories []string, value *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Categories").
			Options(huh.NewOptions(categories...)...).
			Value(value),
	))
}

func locationForm(category string, locs []domain.Location, value *int) *huh.Form {
	opts := make([]huh.Option[int], 0, len(locs))
	for _, l := range locs {
		opts = append(opts, huh.NewOption(formatChoice(l), l.ID))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("All " + category).
			Options(opts...).
			Value(value),
	))
}

// formatChoice labels a location in the pick prompt.
func formatChoice(l domain.Location) string {
	return l.Name + " (#" + strconv.Itoa(l.ID) + ")"
}
