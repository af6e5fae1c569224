package cli

import (
	"strings"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailView shows one location. The description scrolls in a viewport
// on small terminals.
type detailView struct {
	state    *SharedState
	screen   domain.Screen
	location domain.Location
	viewport viewport.Model
	ready    bool
}

func newDetailView(state *SharedState, screen domain.Screen, loc domain.Location) *detailView {
	v := &detailView{state: state, screen: screen, location: loc}
	if state.Width > 0 && state.Height > 0 {
		v.resize()
	}
	return v
}

func (v *detailView) resize() {
	if !v.ready {
		v.viewport = viewport.New(v.state.ContentWidth(), v.state.ContentHeight())
		v.ready = true
	} else {
		v.viewport.Width = v.state.ContentWidth()
		v.viewport.Height = v.state.ContentHeight()
	}
	v.viewport.SetContent(v.body())
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		v.resize()
		return v, nil
	}
	if !v.ready {
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *detailView) body() string {
	var b strings.Builder
	b.WriteString(formatter.StyleBlue.Render(v.location.Category))
	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render(v.location.Name))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(v.state.ContentWidth()).Render(v.location.Description))
	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

func (v *detailView) View() string {
	if !v.ready {
		return v.body()
	}
	return v.viewport.View()
}

func (v *detailView) Screen() domain.Screen { return v.screen }

func (v *detailView) Title() string { return v.location.Name }

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
	}
}
