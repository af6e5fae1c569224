package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type categoriesView struct {
	state      *SharedState
	categories []string
	cursor     cursor
}

func newCategoriesView(state *SharedState, categories []string) *categoriesView {
	return &categoriesView{
		state:      state,
		categories: categories,
		cursor:     cursor{n: len(categories)},
	}
}

func (v *categoriesView) Init() tea.Cmd { return nil }

func (v *categoriesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return v, sendIntent(nav.SelectCategory(v.categories[v.cursor.pos]))
		}
	}
	return v, nil
}

func (v *categoriesView) View() string {
	var cards []string
	width := v.state.ContentWidth()
	for i, c := range v.categories {
		style := formatter.StyleCard
		if i == v.cursor.pos {
			style = formatter.StyleCardActive
		}
		body := formatter.Bold(c) + "\n" + formatter.Dim(fmt.Sprintf("Tap to view all %s", c))
		cards = append(cards, style.Width(width).Render(body))
	}
	if len(cards) == 0 {
		return "  " + formatter.Dim("No categories.")
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(cards, "\n"))
}

func (v *categoriesView) Screen() domain.Screen { return domain.CategoriesScreen() }

func (v *categoriesView) Title() string { return "Categories" }

func (v *categoriesView) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select}
}
