package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/stretchr/testify/assert"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestSyncViews_ReusesMatchingPrefix(t *testing.T) {
	m := newAppModel(testApp(t), nav.StateAt(domain.ListScreen("Parks")))
	list := m.viewStack[2]

	m.machine.Apply(nav.SelectItem(3))
	m.syncViews()
	assert.Len(t, m.viewStack, 4)
	assert.Same(t, list, m.viewStack[2])

	m.machine.Apply(nav.Back())
	m.syncViews()
	assert.Len(t, m.viewStack, 3)
	assert.Same(t, list, m.viewStack[2])
}

func TestSyncViews_GoHomeDropsStack(t *testing.T) {
	m := newAppModel(testApp(t), nav.StateAt(domain.DetailScreen("Museums", 1)))
	assert.Len(t, m.viewStack, 4)

	m.machine.Apply(nav.GoHome())
	m.syncViews()
	assert.Len(t, m.viewStack, 1)
	assert.Equal(t, domain.HomeScreen(), m.activeView().Screen())
}

func TestNewViewFor_EveryScreenKind(t *testing.T) {
	state := &SharedState{App: testApp(t)}
	for _, sc := range []domain.Screen{
		domain.HomeScreen(),
		domain.CategoriesScreen(),
		domain.ListScreen("Museums"),
		domain.DetailScreen("Museums", 1),
	} {
		v := newViewFor(state, sc)
		assert.Equal(t, sc, v.Screen(), sc.String())
	}
}

func TestAppModel_IgnoredIntentHasNoCmd(t *testing.T) {
	m := newAppModel(testApp(t), nav.NewState())

	_, cmd := m.apply(nav.SelectItem(1))
	assert.Nil(t, cmd)
}

func TestAppModel_QuitRendersEmpty(t *testing.T) {
	m := newAppModel(testApp(t), nav.NewState())

	updated, _ := m.apply(nav.SystemBack())
	assert.Empty(t, updated.View())
}

func TestDetailView_ResizesViewport(t *testing.T) {
	d := NewTestDriverAt(t, testApp(t), nav.StateAt(domain.DetailScreen("Museums", 1)))

	d.Resize(60, 20)
	am := d.appModel()
	v := am.activeView().(*detailView)
	assert.Equal(t, 56, v.viewport.Width)
	assert.Equal(t, 16, v.viewport.Height)
	assert.Contains(t, d.View(), "Museum of Fine Arts")
}
