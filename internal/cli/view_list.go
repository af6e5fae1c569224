package cli

import (
	"strings"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type listView struct {
	state     *SharedState
	category  string
	locations []domain.Location
	cursor    cursor
}

func newListView(state *SharedState, category string, locations []domain.Location) *listView {
	return &listView{
		state:     state,
		category:  category,
		locations: locations,
		cursor:    cursor{n: len(locations)},
	}
}

func (v *listView) Init() tea.Cmd { return nil }

func (v *listView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(km, keys.Up):
		v.cursor.up()
	case key.Matches(km, keys.Down):
		v.cursor.down()
	case key.Matches(km, keys.Select):
		if v.cursor.valid() {
			return v, sendIntent(nav.SelectItem(v.locations[v.cursor.pos].ID))
		}
	}
	return v, nil
}

func (v *listView) View() string {
	if len(v.locations) == 0 {
		return "  " + formatter.Dim("Nothing to see here yet.")
	}
	width := v.state.ContentWidth()
	cards := make([]string, 0, len(v.locations))
	for i, loc := range v.locations {
		style := formatter.StyleCard
		if i == v.cursor.pos {
			style = formatter.StyleCardActive
		}
		body := formatter.Bold(loc.Name) + "\n" + formatter.Dim(loc.Description)
		cards = append(cards, style.Width(width).Render(body))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(cards, "\n"))
}

func (v *listView) Screen() domain.Screen { return domain.ListScreen(v.category) }

func (v *listView) Title() string { return "All " + v.category }

func (v *listView) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select}
}
