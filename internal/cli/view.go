package cli

import (
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all tour screens implement.
// It extends tea.Model with the screen it renders and help metadata.
type View interface {
	tea.Model
	Screen() domain.Screen
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // top bar title and breadcrumb segment
}

// newViewFor builds the view for screen. nav.Resolve prunes stale screens
// from a restored stack and every pop skips them, so a missing location
// should not reach here; it still renders an empty detail rather than
// panicking.
func newViewFor(state *SharedState, screen domain.Screen) View {
	cat := state.App.Catalog
	switch screen.Kind {
	case domain.ScreenHome:
		return newHomeView(state)
	case domain.ScreenCategories:
		return newCategoriesView(state, cat.Categories())
	case domain.ScreenList:
		return newListView(state, screen.Category, cat.LocationsFor(screen.Category))
	case domain.ScreenDetail:
		loc, _ := cat.GetLocation(screen.Category, screen.LocationID)
		return newDetailView(state, screen, loc)
	}
	return newHomeView(state)
}
