package undofsm

import (
	"fmt"
	"maps"
	"slices"
)

// Definition holds the FSM structure before building a Machine
type Definition struct {
	states      map[StateID]*State
	order       []StateID // Declaration order, used for enumeration
	transitions []Transition
	initial     StateID
}

// NewDefinition creates a new FSM definition builder
func NewDefinition() *Definition {
	return &Definition{
		states:      make(map[StateID]*State),
		transitions: make([]Transition, 0),
	}
}

// State adds a state to the definition. Declaring the same ID again keeps its
// original position and merges the new options into it; an event that ends up
// with two different destinations fails validation.
func (d *Definition) State(id StateID, opts ...StateOption) *Definition {
	s, ok := d.states[id]
	if !ok {
		s = &State{
			ID:          id,
			Transitions: make(map[EventID]StateID),
		}
		d.states[id] = s
		d.order = append(d.order, id)
	}
	for _, opt := range opts {
		opt(s)
	}
	return d
}

// Transition adds a transition rule
func (d *Definition) Transition(from StateID, event EventID, to StateID) *Definition {
	d.transitions = append(d.transitions, Transition{
		From:  from,
		Event: event,
		To:    to,
	})
	return d
}

// Initial sets the initial state
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	return d
}

// Validate checks the definition for errors
func (d *Definition) Validate() error {
	_, err := d.compile()
	return err
}

// compile validates the definition and folds state options and transition
// rules into a freshly allocated state table.
func (d *Definition) compile() (map[StateID]*State, error) {
	if d.initial == "" {
		return nil, fmt.Errorf("no initial state defined")
	}

	if _, ok := d.states[d.initial]; !ok {
		return nil, fmt.Errorf("initial state %q not defined", d.initial)
	}

	table := make(map[StateID]*State, len(d.states))
	for _, id := range d.order {
		if conflicts := d.states[id].conflicts; len(conflicts) > 0 {
			return nil, conflicts[0]
		}
		state := d.states[id].clone()
		if state.Transitions == nil {
			state.Transitions = make(map[EventID]StateID)
		}
		for _, event := range slices.Sorted(maps.Keys(state.Transitions)) {
			to := state.Transitions[event]
			if _, ok := d.states[to]; !ok {
				return nil, fmt.Errorf("state %q transition %q targets undefined state %q", id, event, to)
			}
		}
		table[id] = state
	}

	for _, t := range d.transitions {
		from, ok := table[t.From]
		if !ok {
			return nil, fmt.Errorf("transition from undefined state %q", t.From)
		}
		if _, ok := table[t.To]; !ok {
			return nil, fmt.Errorf("transition to undefined state %q", t.To)
		}
		if existing, ok := from.Transitions[t.Event]; ok && existing != t.To {
			return nil, fmt.Errorf("conflicting transitions from %q on %q: %q and %q", t.From, t.Event, existing, t.To)
		}
		from.Transitions[t.Event] = t.To
	}

	return table, nil
}

// Build creates a Machine from the definition. The machine owns a private copy
// of the state table, so later changes to the definition do not affect it.
func (d *Definition) Build(opts ...MachineOption) (*Machine, error) {
	table, err := d.compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	m := &Machine{
		states:  table,
		order:   slices.Clone(d.order),
		current: d.initial,
		base:    d.initial,
		logger:  Logger,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = Logger
	}

	return m, nil
}
