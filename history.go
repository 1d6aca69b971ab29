package undofsm

import "slices"

// History is a snapshot of the undo and redo stacks, most recent entry last.
type History struct {
	Undo []StateID
	Redo []StateID
}

// stack is a LIFO of state IDs
type stack []StateID

func (s *stack) push(id StateID) {
	*s = append(*s, id)
}

func (s *stack) pop() (StateID, bool) {
	n := len(*s)
	if n == 0 {
		return "", false
	}
	id := (*s)[n-1]
	*s = (*s)[:n-1]
	return id, true
}

func (s *stack) clear() {
	*s = nil
}

func (s stack) len() int {
	return len(s)
}

func (s stack) snapshot() []StateID {
	if len(s) == 0 {
		return []StateID{}
	}
	return slices.Clone([]StateID(s))
}
