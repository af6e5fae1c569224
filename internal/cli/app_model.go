package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/explore/internal/cli/formatter"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the tour. The nav.Machine owns
// the screen stack; viewStack mirrors it with one View per screen so that
// cursor positions survive a round trip through Back.
type appModel struct {
	state     *SharedState
	machine   *nav.Machine
	viewStack []View
	quitting  bool

	// exitedByBack is set when a system back on Home propagated to the
	// host, which for a terminal app means leaving the tour.
	exitedByBack bool

	// flash is a one-shot note shown in the status bar until the next key.
	flash   string
	saveErr error
}

func newAppModel(app *App, initial nav.State) appModel {
	state := &SharedState{App: app}
	m := appModel{
		state: state,
		machine: nav.NewMachine(app.Catalog,
			nav.WithObserver(app.observer()),
			nav.WithState(initial),
		),
	}
	m.syncViews()
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// syncViews rebuilds viewStack from the machine's state, reusing existing
// views bottom-up while their screens still match. It returns the Init
// command of a newly created top view, if any.
func (m *appModel) syncViews() tea.Cmd {
	s := m.machine.State()
	screens := append(s.Stack, s.Screen)

	next := make([]View, 0, len(screens))
	var initCmd tea.Cmd
	reuse := true
	for i, sc := range screens {
		reuse = reuse && i < len(m.viewStack) && m.viewStack[i].Screen() == sc
		if reuse {
			next = append(next, m.viewStack[i])
			continue
		}
		v := newViewFor(m.state, sc)
		if i == len(screens)-1 {
			initCmd = v.Init()
		}
		next = append(next, v)
	}
	m.viewStack = next
	return initCmd
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Forward to active view
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case intentMsg:
		return m.apply(msg.intent)
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.SystemBack):
		return m.apply(nav.SystemBack())

	case key.Matches(msg, keys.Back):
		return m.apply(nav.Back())

	case key.Matches(msg, keys.Home):
		// The Home screen's home icon starts the tour instead.
		if m.machine.Screen().Kind == domain.ScreenHome {
			return m.apply(nav.GoToCategories())
		}
		return m.apply(nav.GoHome())
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// apply runs intent through the machine, resyncs the views and saves the
// new state.
func (m appModel) apply(intent nav.Intent) (tea.Model, tea.Cmd) {
	out := m.machine.Apply(intent)

	switch {
	case out.Propagate:
		m.quitting = true
		m.exitedByBack = true
		return m, tea.Quit
	case out.Suppressed:
		m.flash = "Back is disabled on Home after a trip. Press q to quit."
		return m, nil
	case out.Ignored:
		return m, nil
	}

	initCmd := m.syncViews()
	m.save()
	return m, initCmd
}

// save persists the current state when a session store is configured.
// It runs inside Update so saves land in transition order.
func (m *appModel) save() {
	sessions := m.state.App.Sessions
	if sessions == nil {
		return
	}
	m.saveErr = sessions.Save(context.Background(), m.machine.State())
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	var title string
	if v := m.activeView(); v != nil {
		title = formatter.StyleHeader.Render(v.Title())
	}

	left := formatter.Dim("  ")
	if len(m.viewStack) > 1 {
		left = formatter.StyleBlue.Render("← ")
	}

	// Breadcrumb from the screens below the current one.
	var crumbs []string
	for _, v := range m.viewStack[:max(len(m.viewStack)-1, 0)] {
		crumbs = append(crumbs, v.Title())
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = "  " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := left + title + breadcrumb + "  " + formatter.StyleBrick.Render("⌂")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if m.machine.Screen().Kind == domain.ScreenHome {
		hints = append(hints, formatter.Dim("h: start tour"))
	} else {
		hints = append(hints, formatter.Dim("b: back"), formatter.Dim("h: home"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")
	if m.flash != "" {
		bar = formatter.StyleYellow.Render(m.flash) + "  " + bar
	}
	if m.saveErr != nil {
		bar = formatter.StyleRed.Render("session not saved: "+m.saveErr.Error()) + "  " + bar
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
