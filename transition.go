package undofsm

import "fmt"

// Transition is a single from/event/to rule declared on a Definition
type Transition struct {
	From  StateID // Source state
	Event EventID // Triggering event
	To    StateID // Target state
}

// Change describes a completed state change, delivered to the state change callback
type Change struct {
	Kind  ChangeKind
	From  StateID
	To    StateID
	Event EventID // Only set for ChangeTrigger
}

func (c Change) String() string {
	if c.Kind == ChangeTrigger {
		return fmt.Sprintf("%s %s: %s -> %s", c.Kind, c.Event, c.From, c.To)
	}
	return fmt.Sprintf("%s: %s -> %s", c.Kind, c.From, c.To)
}
