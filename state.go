package undofsm

import (
	"fmt"
	"maps"
	"slices"
)

// State defines a state in the machine and the events it reacts to
type State struct {
	ID          StateID
	Transitions map[EventID]StateID // Event -> destination

	conflicts []error
}

// StateOption is a functional option for configuring a State
type StateOption func(*State)

// WithTransition registers an event that moves the machine from this state to
// another. Registering the same event again with a different destination is
// reported when the definition is validated.
func WithTransition(event EventID, to StateID) StateOption {
	return func(s *State) {
		s.addTransition(event, to)
	}
}

// WithTransitions registers several event -> destination pairs at once
func WithTransitions(table map[EventID]StateID) StateOption {
	return func(s *State) {
		for _, event := range slices.Sorted(maps.Keys(table)) {
			s.addTransition(event, table[event])
		}
	}
}

// addTransition keeps the first destination for an event and records any
// later, different one as a conflict.
func (s *State) addTransition(event EventID, to StateID) {
	if s.Transitions == nil {
		s.Transitions = make(map[EventID]StateID)
	}
	if existing, ok := s.Transitions[event]; ok && existing != to {
		s.conflicts = append(s.conflicts,
			fmt.Errorf("conflicting transitions from %q on %q: %q and %q", s.ID, event, existing, to))
		return
	}
	s.Transitions[event] = to
}

// HasEvent reports whether the state has a transition for event
func (s *State) HasEvent(event EventID) bool {
	_, ok := s.Transitions[event]
	return ok
}

func (s *State) clone() *State {
	return &State{
		ID:          s.ID,
		Transitions: maps.Clone(s.Transitions),
	}
}
