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

type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Select) {
		return v, sendIntent(nav.GoToCategories())
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render("Welcome!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(v.state.ContentWidth()).Render(
		"Take a quick tour through Boston’s highlights."))
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleButton.Render("Start Tour"))
	b.WriteString("\n")
	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

func (v *homeView) Screen() domain.Screen { return domain.HomeScreen() }

func (v *homeView) Title() string { return "Explore Boston" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start tour"))}
}
