package undofsm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState      = errors.New("unknown state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidDefinition = errors.New("invalid definition")
)

// UnknownStateError is returned by ChangeState when the target is not part of the machine.
type UnknownStateError struct {
	State StateID
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.State)
}

// Is lets errors.Is match against ErrUnknownState.
func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// InvalidTransitionError is returned by Trigger when the current state has no
// transition registered for the event.
type InvalidTransitionError struct {
	State StateID
	Event EventID
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.State, e.Event)
}

// Is lets errors.Is match against ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func IsUnknownState(err error) bool {
	var e *UnknownStateError
	return errors.As(err, &e)
}

func IsInvalidTransition(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}
