package nav

import (
	"slices"

	"github.com/alexanderramin/explore/internal/domain"
)

// Catalog is the read-only lookup surface the machine validates against.
// *catalog.Store satisfies it.
type Catalog interface {
	HasCategory(category string) bool
	GetLocation(category string, id int) (domain.Location, bool)
}

// Outcome describes what a transition did besides changing the state.
type Outcome struct {
	// Ignored is set when the intent does not apply to the current screen
	// (for example SelectItem on Home, or Back with nothing to pop).
	Ignored bool

	// Fallback is set when invalid arguments were handled as Back.
	Fallback bool

	// Suppressed is set when a system back on Home was consumed.
	Suppressed bool

	// Propagate is set when a system back on Home must be handed to the
	// host's default behavior, which for this app means exiting.
	Propagate bool
}

// Transition applies intent to state and returns the next state. It never
// mutates state or its stack.
func Transition(state State, intent Intent, cat Catalog) (State, Outcome) {
	next := state.Clone()
	cur := next.Screen

	switch intent.Kind {
	case IntentGoToCategories:
		if cur.Kind != domain.ScreenHome {
			return state, Outcome{Ignored: true}
		}
		next.push(domain.CategoriesScreen())
		return next, Outcome{}

	case IntentSelectCategory:
		if cur.Kind != domain.ScreenCategories {
			return state, Outcome{Ignored: true}
		}
		if !cat.HasCategory(intent.Category) {
			popValid(&next, cat)
			return next, Outcome{Fallback: true}
		}
		next.push(domain.ListScreen(intent.Category))
		return next, Outcome{}

	case IntentSelectItem:
		if cur.Kind != domain.ScreenList {
			return state, Outcome{Ignored: true}
		}
		loc, ok := cat.GetLocation(cur.Category, intent.LocationID)
		if !ok {
			popValid(&next, cat)
			return next, Outcome{Fallback: true}
		}
		next.push(domain.DetailScreen(loc.Category, loc.ID))
		return next, Outcome{}

	case IntentBack:
		return back(state, next, cat)

	case IntentGoHome:
		next.Stack = nil
		next.Screen = domain.HomeScreen()
		next.HomeCycleCompleted = true
		return next, Outcome{}

	case IntentSystemBack:
		if cur.Kind == domain.ScreenHome {
			if state.HomeCycleCompleted {
				return state, Outcome{Suppressed: true}
			}
			return state, Outcome{Propagate: true}
		}
		return back(state, next, cat)
	}

	return state, Outcome{Ignored: true}
}

func back(state, next State, cat Catalog) (State, Outcome) {
	if next.Screen.Kind == domain.ScreenHome || len(next.Stack) == 0 {
		return state, Outcome{Ignored: true}
	}
	skipped := popValid(&next, cat)
	return next, Outcome{Fallback: skipped}
}

// popValid pops s until its screen is valid in cat and reports whether a
// stale screen was skipped. Home is always valid, so it terminates.
func popValid(s *State, cat Catalog) (skipped bool) {
	s.pop()
	for !valid(s.Screen, cat) {
		s.pop()
		skipped = true
	}
	return skipped
}

// valid reports whether screen can be rendered from cat.
func valid(screen domain.Screen, cat Catalog) bool {
	switch screen.Kind {
	case domain.ScreenList:
		return cat.HasCategory(screen.Category)
	case domain.ScreenDetail:
		_, ok := cat.GetLocation(screen.Category, screen.LocationID)
		return ok
	}
	return true
}

// Resolve validates state against cat before it is rendered. Stale
// screens are dropped from the stack, and a stale current screen is
// popped as if the user pressed Back. Valid states are returned unchanged.
func Resolve(state State, cat Catalog) (State, Outcome) {
	stale := !valid(state.Screen, cat)
	for _, sc := range state.Stack {
		if !valid(sc, cat) {
			stale = true
		}
	}
	if !stale {
		return state, Outcome{}
	}

	next := state.Clone()
	next.Stack = slices.DeleteFunc(next.Stack, func(sc domain.Screen) bool { return !valid(sc, cat) })
	if len(next.Stack) == 0 {
		next.Stack = nil
	}
	if !valid(next.Screen, cat) {
		next.pop()
	}
	return next, Outcome{Fallback: true}
}
