package undofsm

import (
	"log/slog"
	"maps"
	"slices"
)

// Machine is the runtime FSM instance.
//
// A Machine is not safe for concurrent use. Hosts that share one across
// goroutines must serialize every call, for example with a single mutex
// around the instance.
type Machine struct {
	states  map[StateID]*State
	order   []StateID
	current StateID
	base    StateID

	undo stack
	redo stack

	logger              *slog.Logger
	stateChangeCallback func(Change)
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithStateChangeCallback sets a callback invoked after each state change
func WithStateChangeCallback(fn func(Change)) MachineOption {
	return func(m *Machine) {
		m.stateChangeCallback = fn
	}
}

// OnStateChange sets a callback invoked after each state change.
func (m *Machine) OnStateChange(fn func(Change)) {
	m.stateChangeCallback = fn
}

// State returns the current state
func (m *Machine) State() StateID {
	return m.current
}

// Base returns the state the machine was built with, which Reset returns to
func (m *Machine) Base() StateID {
	return m.base
}

// ChangeState jumps directly to state. The previous state is recorded for
// undo and any redo history is discarded.
func (m *Machine) ChangeState(state StateID) error {
	if _, ok := m.states[state]; !ok {
		m.logger.Debug("rejected change to unknown state", "state", state, "current", m.current)
		return &UnknownStateError{State: state}
	}

	m.advance(Change{Kind: ChangeState, From: m.current, To: state})
	return nil
}

// Trigger looks event up in the current state's transitions and moves to the
// destination, with the same history bookkeeping as ChangeState.
func (m *Machine) Trigger(event EventID) error {
	to, ok := m.states[m.current].Transitions[event]
	if !ok {
		m.logger.Debug("no transition found", "event", event, "state", m.current)
		return &InvalidTransitionError{State: m.current, Event: event}
	}

	m.advance(Change{Kind: ChangeTrigger, From: m.current, To: to, Event: event})
	return nil
}

// advance records the current state for undo, drops redo history and moves
// to the change target.
func (m *Machine) advance(c Change) {
	m.undo.push(m.current)
	m.redo.clear()
	m.current = c.To

	m.logger.Debug("state changed", "kind", c.Kind, "from", c.From, "to", c.To, "event", c.Event, "undo", m.undo.len())
	m.notify(c)
}

// Reset returns to the base state. History is left as it is and the jump is
// not recorded for undo.
func (m *Machine) Reset() StateID {
	from := m.current
	m.current = m.base

	m.logger.Debug("reset", "from", from, "to", m.base)
	m.notify(Change{Kind: ChangeReset, From: from, To: m.base})
	return m.current
}

// Undo goes back to the most recently recorded state.
// Returns false if there is nothing to undo.
func (m *Machine) Undo() bool {
	prev, ok := m.undo.pop()
	if !ok {
		return false
	}

	from := m.current
	m.redo.push(from)
	m.current = prev

	m.logger.Debug("undo", "from", from, "to", prev, "undo", m.undo.len(), "redo", m.redo.len())
	m.notify(Change{Kind: ChangeUndo, From: from, To: prev})
	return true
}

// Redo re-applies the most recently undone state.
// Returns false if there is nothing to redo.
func (m *Machine) Redo() bool {
	next, ok := m.redo.pop()
	if !ok {
		return false
	}

	from := m.current
	m.undo.push(from)
	m.current = next

	m.logger.Debug("redo", "from", from, "to", next, "undo", m.undo.len(), "redo", m.redo.len())
	m.notify(Change{Kind: ChangeRedo, From: from, To: next})
	return true
}

// CanUndo reports whether Undo would succeed
func (m *Machine) CanUndo() bool {
	return m.undo.len() > 0
}

// CanRedo reports whether Redo would succeed
func (m *Machine) CanRedo() bool {
	return m.redo.len() > 0
}

// ClearHistory empties both the undo and redo stacks. The current state is kept.
func (m *Machine) ClearHistory() {
	m.undo.clear()
	m.redo.clear()
	m.logger.Debug("history cleared", "state", m.current)
}

// History returns a copy of the undo and redo stacks
func (m *Machine) History() History {
	return History{
		Undo: m.undo.snapshot(),
		Redo: m.redo.snapshot(),
	}
}

// States returns every state ID in declaration order
func (m *Machine) States() []StateID {
	return slices.Clone(m.order)
}

// StatesFor returns the states from which event is a valid trigger, in
// declaration order. The result is empty, not nil, when nothing matches.
func (m *Machine) StatesFor(event EventID) []StateID {
	out := make([]StateID, 0, len(m.order))
	for _, id := range m.order {
		if m.states[id].HasEvent(event) {
			out = append(out, id)
		}
	}
	return out
}

// Events returns the events accepted by the current state, sorted by name
func (m *Machine) Events() []EventID {
	return slices.Sorted(maps.Keys(m.states[m.current].Transitions))
}

// Transitions returns a copy of the transition table for state, or nil if
// the state is unknown
func (m *Machine) Transitions(state StateID) map[EventID]StateID {
	s, ok := m.states[state]
	if !ok {
		return nil
	}
	return maps.Clone(s.Transitions)
}

func (m *Machine) notify(c Change) {
	if m.stateChangeCallback != nil {
		m.stateChangeCallback(c)
	}
}
