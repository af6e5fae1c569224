package nav

import (
	"slices"

	"github.com/alexanderramin/explore/internal/domain"
)

// State is a navigation snapshot: the visible screen, the screens below
// it (bottom first), and whether a Home cycle has completed.
type State struct {
	Screen             domain.Screen
	Stack              []domain.Screen
	HomeCycleCompleted bool
}

// NewState returns the start-of-session state: Home, empty stack.
func NewState() State {
	return State{Screen: domain.HomeScreen()}
}

// StateAt returns a state showing screen with the back stack a user would
// have built reaching it by hand. Used for deep-link starts.
func StateAt(screen domain.Screen) State {
	s := State{Screen: screen}
	switch screen.Kind {
	case domain.ScreenHome:
	case domain.ScreenCategories:
		s.Stack = []domain.Screen{domain.HomeScreen()}
	case domain.ScreenList:
		s.Stack = []domain.Screen{domain.HomeScreen(), domain.CategoriesScreen()}
	case domain.ScreenDetail:
		s.Stack = []domain.Screen{
			domain.HomeScreen(),
			domain.CategoriesScreen(),
			domain.ListScreen(screen.Category),
		}
	}
	return s
}

// Clone returns a copy that shares no stack storage with s.
func (s State) Clone() State {
	s.Stack = slices.Clone(s.Stack)
	return s
}

// Depth returns the number of screens below the current one.
func (s State) Depth() int { return len(s.Stack) }

// BackSuppressed reports whether a system back gesture is consumed
// rather than handed to the host: true only on Home after a Home cycle.
func (s State) BackSuppressed() bool {
	return s.Screen.Kind == domain.ScreenHome && s.HomeCycleCompleted
}

func (s *State) push(next domain.Screen) {
	s.Stack = append(s.Stack, s.Screen)
	s.Screen = next
}

// pop moves the top of the stack into Screen. An empty stack lands on
// Home so a fallback can never strand the user on an invalid screen.
func (s *State) pop() {
	if len(s.Stack) == 0 {
		s.Screen = domain.HomeScreen()
		return
	}
	s.Screen = s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	if len(s.Stack) == 0 {
		s.Stack = nil
	}
}
