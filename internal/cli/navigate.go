package cli

import (
	"github.com/alexanderramin/explore/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages views use to talk to the appModel. Views never touch the
// navigation stack; they submit intents and the appModel applies them.

// intentMsg asks the appModel to run an intent through the state machine.
type intentMsg struct {
	intent nav.Intent
}

// sendIntent returns a tea.Cmd that submits an intent.
func sendIntent(i nav.Intent) tea.Cmd {
	return func() tea.Msg { return intentMsg{intent: i} }
}
