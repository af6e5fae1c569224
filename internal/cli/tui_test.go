package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnHome(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, domain.HomeScreen(), d.Screen())
	assert.Equal(t, "Explore Boston", d.ActiveViewTitle())
	view := d.View()
	assert.Contains(t, view, "Welcome!")
	assert.Contains(t, view, "Take a quick tour through Boston’s highlights.")
	assert.Contains(t, view, "Start Tour")
}

func TestTUI_DrillDownAndBackOut(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressEnter()
	assert.Equal(t, domain.CategoriesScreen(), d.Screen())
	assert.Contains(t, d.View(), "Tap to view all Museums")

	d.PressEnter()
	assert.Equal(t, domain.ListScreen("Museums"), d.Screen())
	assert.Equal(t, "All Museums", d.ActiveViewTitle())
	assert.Contains(t, d.View(), "Museum of Fine Arts")

	d.PressDown()
	d.PressEnter()
	assert.Equal(t, domain.DetailScreen("Museums", 2), d.Screen())
	assert.Equal(t, "MIT Museum", d.ActiveViewTitle())
	assert.Contains(t, d.View(), "Inventive exhibits on science and technology.")
	assert.Equal(t, []domain.Screen{
		domain.HomeScreen(), domain.CategoriesScreen(), domain.ListScreen("Museums"), domain.DetailScreen("Museums", 2),
	}, d.ViewScreens())

	d.PressBackspace()
	assert.Equal(t, domain.ListScreen("Museums"), d.Screen())
	d.PressKey('b')
	assert.Equal(t, domain.CategoriesScreen(), d.Screen())
	d.PressBackspace()
	assert.Equal(t, domain.HomeScreen(), d.Screen())
	assert.False(t, d.State().HomeCycleCompleted)

	// A fresh Home hands the system back to the host.
	d.PressEsc()
	assert.True(t, d.Quitting)
	assert.True(t, d.ExitedByBack())
}

func TestTUI_BackKeepsListCursor(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.OpenCategory(1)
	require.Equal(t, domain.ListScreen("Parks"), d.Screen())
	d.PressDown()
	d.PressEnter()
	require.Equal(t, domain.DetailScreen("Parks", 4), d.Screen())

	d.PressBackspace()
	d.PressEnter()
	assert.Equal(t, domain.DetailScreen("Parks", 4), d.Screen(), "list view survives the round trip")
}

func TestTUI_HomeSuppressesSystemBack(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.OpenCategory(2)
	d.PressEnter()
	require.Equal(t, domain.DetailScreen("Restaurants", 5), d.Screen())

	d.PressKey('h')
	assert.Equal(t, domain.HomeScreen(), d.Screen())
	assert.Empty(t, d.State().Stack)
	assert.True(t, d.State().HomeCycleCompleted)
	assert.Len(t, d.ViewScreens(), 1)

	d.PressEsc()
	assert.False(t, d.Quitting)
	assert.Equal(t, domain.HomeScreen(), d.Screen())
	assert.NotEmpty(t, d.Flash())
	assert.Contains(t, d.View(), "Back is disabled on Home")

	// The note clears on the next key.
	d.PressDown()
	assert.Empty(t, d.Flash())

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.False(t, d.ExitedByBack())
}

func TestTUI_HomeIconOnHomeStartsTour(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('h')
	assert.Equal(t, domain.CategoriesScreen(), d.Screen())
	assert.False(t, d.State().HomeCycleCompleted)
}

func TestTUI_SystemBackOffHomePops(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.OpenCategory(0)
	d.PressEsc()
	assert.Equal(t, domain.CategoriesScreen(), d.Screen())
	assert.False(t, d.Quitting)
}

func TestTUI_BackOnHomeIgnored(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('b')
	assert.Equal(t, domain.HomeScreen(), d.Screen())
	assert.False(t, d.Quitting)
}

func TestTUI_StaleDeepLinkRendersList(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), nav.StateAt(domain.DetailScreen("Parks", 1)))

	assert.Equal(t, domain.ListScreen("Parks"), d.Screen())
	assert.Equal(t, "All Parks", d.ActiveViewTitle())
}

func TestTUI_SavesSessionAfterEachTransition(t *testing.T) {
	app := testAppWithSessions(t)
	d := NewTestDriver(t, app)

	d.OpenCategory(0)
	require.NoError(t, d.SaveErr())

	restored, ok, err := app.Sessions.Restore(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.ListScreen("Museums"), restored.Screen)

	d.PressKey('h')
	restored, _, err = app.Sessions.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HomeScreen(), restored.Screen)
	assert.True(t, restored.HomeCycleCompleted)
}

func TestTUI_HeaderShowsBreadcrumb(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.OpenCategory(0)
	view := d.View()
	assert.Contains(t, view, "All Museums")
	assert.Contains(t, view, "Explore Boston › Categories")
}

func TestTUI_ViewPadsToHeight(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	lines := len(splitLines(d.View()))
	assert.Equal(t, 40, lines)
}
