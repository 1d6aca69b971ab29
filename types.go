package undofsm

import "log/slog"

// StateID is a unique identifier for a state
type StateID string

// EventID is a unique identifier for an event type
type EventID string

// ChangeKind classifies which operation moved the machine
type ChangeKind int

const (
	// ChangeState is an explicit jump via ChangeState
	ChangeState ChangeKind = iota
	// ChangeTrigger is an event-driven transition via Trigger
	ChangeTrigger
	// ChangeUndo steps back through the undo stack
	ChangeUndo
	// ChangeRedo steps forward through the redo stack
	ChangeRedo
	// ChangeReset jumps to the base state without recording history
	ChangeReset
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeState:
		return "change"
	case ChangeTrigger:
		return "trigger"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
