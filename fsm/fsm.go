// Package fsm is a small named-state machine for application screens.
//
// Each state receives the per-tick phases (input, update, render) with a
// context value C chosen by the application, and names the state to
// switch to from Next.
package fsm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	// ErrDuplicateState is returned when two states share a name.
	ErrDuplicateState = errors.New("fsm: duplicate state")
	// ErrUnknownState is returned when a transition names no state.
	ErrUnknownState = errors.New("fsm: unknown state")
)

// State is one node of a Machine.
type State[C any] interface {
	Name() string

	OnEnter()
	OnExit()

	OnInput(ctx C)
	OnUpdate(ctx C)
	OnRender(ctx C)

	// Next returns the state to switch to, or "" to stay.
	Next() string
}

// Nop implements every State hook as a no-op. Embed it and override
// what the state needs.
type Nop[C any] struct {
	ID string
}

func (n Nop[C]) Name() string { return n.ID }
func (Nop[C]) OnEnter()       {}
func (Nop[C]) OnExit()        {}
func (Nop[C]) OnInput(C)      {}
func (Nop[C]) OnUpdate(C)     {}
func (Nop[C]) OnRender(C)     {}
func (Nop[C]) Next() string   { return "" }

// Machine runs one active state at a time.
type Machine[C any] struct {
	log     *slog.Logger
	states  map[string]State[C]
	initial string
	current State[C]
	last    State[C]
}

// New builds a machine from its states and enters initial.
func New[C any](initial State[C], others ...State[C]) (*Machine[C], error) {
	m := &Machine[C]{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		states:  make(map[string]State[C]),
		initial: initial.Name(),
	}
	if err := m.Add(initial); err != nil {
		return nil, err
	}
	if err := m.Add(others...); err != nil {
		return nil, err
	}
	m.current, m.last = initial, initial
	initial.OnEnter()
	return m, nil
}

// SetLogger routes transition logs to l.
func (m *Machine[C]) SetLogger(l *slog.Logger) { m.log = l }

// Add registers more states.
func (m *Machine[C]) Add(states ...State[C]) error {
	for _, s := range states {
		if _, ok := m.states[s.Name()]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateState, s.Name())
		}
		m.states[s.Name()] = s
	}
	return nil
}

// Initial returns the name of the first state.
func (m *Machine[C]) Initial() string { return m.initial }

// Current returns the name of the active state.
func (m *Machine[C]) Current() string { return m.current.Name() }

// Last returns the name of the state active before the latest switch.
func (m *Machine[C]) Last() string { return m.last.Name() }

// Update asks the active state for its successor and switches to it.
func (m *Machine[C]) Update() error {
	next := m.current.Next()
	if next == "" {
		return nil
	}
	return m.Set(next)
}

// Set switches to the named state: the old state exits, the new one
// enters. On ErrUnknownState nothing changes.
func (m *Machine[C]) Set(name string) error {
	s, ok := m.states[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	m.log.Debug("state change", "from", m.current.Name(), "to", name)
	m.current.OnExit()
	m.last = m.current
	m.current = s
	s.OnEnter()
	return nil
}

// Input forwards the input phase to the active state.
func (m *Machine[C]) Input(ctx C) { m.current.OnInput(ctx) }

// Tick forwards the update phase to the active state.
func (m *Machine[C]) Tick(ctx C) { m.current.OnUpdate(ctx) }

// Render forwards the render phase to the active state.
func (m *Machine[C]) Render(ctx C) { m.current.OnRender(ctx) }
