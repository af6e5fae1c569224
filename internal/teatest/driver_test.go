package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// counter counts key presses and pings, quits on 'q', and answers 'p'
// with a ping Cmd and 's' with a Cmd that never returns in time.
type counter struct {
	keys, pings int
	width       int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return pingMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case pingMsg:
		c.pings++
	case tea.KeyMsg:
		c.keys++
		switch msg.String() {
		case "q":
			return c, tea.Quit
		case "p":
			return c, tea.Batch(
				func() tea.Msg { return pingMsg{} },
				func() tea.Msg { return pingMsg{} },
			)
		case "s":
			return c, func() tea.Msg {
				time.Sleep(time.Second)
				return pingMsg{}
			}
		}
	}
	return c, nil
}

func (c counter) View() string { return "keys" }

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, 80, d.Model.(counter).width)
	assert.Equal(t, 1, d.Model.(counter).pings)

	d.PressKey('p')
	assert.Equal(t, 3, d.Model.(counter).pings)
	assert.True(t, d.Contains("keys"))
}

func TestDriver_DropsSlowCmds(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('s')
	assert.Equal(t, 1, d.Dropped)
	assert.Equal(t, 0, d.Model.(counter).pings)
}

func TestDriver_StopsAfterQuit(t *testing.T) {
	d := New(t, counter{})
	d.Keys("aq")
	assert.True(t, d.Quitting)

	d.PressEnter()
	assert.Equal(t, 2, d.Model.(counter).keys)
}
