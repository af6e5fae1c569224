package nav

import (
	"context"

	"github.com/alexanderramin/explore/internal/domain"
)

// Machine owns the navigation state of one running UI. It is not safe for
// concurrent use; the UI loop serializes intents.
type Machine struct {
	state    State
	catalog  Catalog
	observer Observer
}

// Option configures a Machine.
type Option func(*Machine)

// WithObserver reports every applied intent to o.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithState starts the machine from a restored or deep-linked state
// instead of NewState. The state is resolved against the catalog so a
// stale screen never renders.
func WithState(s State) Option {
	return func(m *Machine) {
		m.state = s.Clone()
	}
}

// NewMachine returns a Machine on the Home screen unless WithState says
// otherwise.
func NewMachine(cat Catalog, opts ...Option) *Machine {
	m := &Machine{
		state:    NewState(),
		catalog:  cat,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Resolve()
	return m
}

// Apply runs intent through Transition and stores the result.
func (m *Machine) Apply(intent Intent) Outcome {
	from := m.state.Screen
	next, out := Transition(m.state, intent, m.catalog)
	m.state = next
	m.observer.ObserveTransition(context.Background(), TransitionEvent{
		Intent:  intent,
		From:    from,
		To:      next.Screen,
		Depth:   next.Depth(),
		Outcome: out,
	})
	return out
}

// Resolve runs the render-time validity check on the current screen.
func (m *Machine) Resolve() Outcome {
	from := m.state.Screen
	next, out := Resolve(m.state, m.catalog)
	if !out.Fallback {
		return out
	}
	m.state = next
	m.observer.ObserveTransition(context.Background(), TransitionEvent{
		Intent:  Back(),
		From:    from,
		To:      next.Screen,
		Depth:   next.Depth(),
		Outcome: out,
	})
	return out
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state.Clone() }

// Screen returns the current screen.
func (m *Machine) Screen() domain.Screen { return m.state.Screen }

// BackSuppressed reports whether a system back gesture is consumed now.
func (m *Machine) BackSuppressed() bool { return m.state.BackSuppressed() }
