// Package undofsm is a small finite state machine that tracks one active
// state out of a fixed set of named states and keeps a linear undo/redo
// history of how it got there.
//
// A machine is declared with a Definition (or a plain Config) and built once:
//
//	m, err := undofsm.NewDefinition().
//	    State("draft", undofsm.WithTransition("submit", "review")).
//	    State("review", undofsm.WithTransition("approve", "published")).
//	    State("published").
//	    Initial("draft").
//	    Build()
//
// States change either explicitly with ChangeState or through events with
// Trigger. Every successful change pushes the previous state on the undo stack
// and discards the redo stack, so Undo and Redo walk a single linear branch:
//
//	_ = m.Trigger("submit") // review
//	m.Undo()                // draft
//	m.Redo()                // review
//
// Reset jumps back to the initial state without touching history.
//
// Failed calls return *UnknownStateError or *InvalidTransitionError and leave
// the machine exactly as it was. Undo and Redo report an empty history with
// false instead of an error.
//
// A Machine performs no locking; callers sharing one between goroutines must
// serialize access.
package undofsm
