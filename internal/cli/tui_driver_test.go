package cli

import (
	"testing"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/alexanderramin/explore/internal/teatest"
)

// TestDriver wraps teatest.Driver with tour-specific inspection methods.
// It can see appModel internals (machine state, view stack) that the
// generic driver can't.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel on a fresh state, sets the terminal
// size and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return NewTestDriverAt(t, app, nav.NewState())
}

// NewTestDriverAt is NewTestDriver starting from initial.
func NewTestDriverAt(t *testing.T, app *App, initial nav.State) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app, initial), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// OpenCategory goes from Home to the list of the category at index i.
func (d *TestDriver) OpenCategory(i int) {
	d.T.Helper()
	d.PressEnter()
	for range i {
		d.PressDown()
	}
	d.PressEnter()
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Screen returns the machine's current screen.
func (d *TestDriver) Screen() domain.Screen {
	return d.appModel().machine.Screen()
}

// State returns a copy of the machine's state.
func (d *TestDriver) State() nav.State {
	return d.appModel().machine.State()
}

// ViewScreens returns the screens of the view stack, bottom to top.
func (d *TestDriver) ViewScreens() []domain.Screen {
	m := d.appModel()
	out := make([]domain.Screen, len(m.viewStack))
	for i, v := range m.viewStack {
		out[i] = v.Screen()
	}
	return out
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ExitedByBack reports whether the tour ended from a system back on Home.
func (d *TestDriver) ExitedByBack() bool {
	return d.appModel().exitedByBack
}

// Flash returns the one-shot status message.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// SaveErr returns the last session save error.
func (d *TestDriver) SaveErr() error {
	return d.appModel().saveErr
}
