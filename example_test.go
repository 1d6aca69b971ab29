package undofsm_test

import (
	"errors"
	"fmt"

	"github.com/librescoot/undofsm"
)

// Example: document workflow with undo/redo
func Example_documentWorkflow() {
	const (
		stateDraft     undofsm.StateID = "draft"
		stateReview    undofsm.StateID = "review"
		statePublished undofsm.StateID = "published"

		evSubmit  undofsm.EventID = "submit"
		evApprove undofsm.EventID = "approve"
		evReject  undofsm.EventID = "reject"
	)

	m, err := undofsm.NewDefinition().
		State(stateDraft, undofsm.WithTransition(evSubmit, stateReview)).
		State(stateReview,
			undofsm.WithTransition(evApprove, statePublished),
			undofsm.WithTransition(evReject, stateDraft),
		).
		State(statePublished).
		Initial(stateDraft).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = m.Trigger(evSubmit)
	_ = m.Trigger(evApprove)
	fmt.Println(m.State())

	m.Undo()
	fmt.Println(m.State())

	m.Redo()
	fmt.Println(m.State())

	fmt.Println(m.StatesFor(evReject))

	// Output:
	// published
	// review
	// published
	// [review]
}

// Example: the typed errors carry the offending state and event
func Example_errors() {
	m, _ := undofsm.New(undofsm.Config{
		Initial: "A",
		States: []undofsm.StateConfig{
			{ID: "A", Transitions: map[undofsm.EventID]undofsm.StateID{"go": "B"}},
			{ID: "B", Transitions: map[undofsm.EventID]undofsm.StateID{"back": "A"}},
		},
	})

	err := m.Trigger("back")
	var ite *undofsm.InvalidTransitionError
	if errors.As(err, &ite) {
		fmt.Println(ite.State, ite.Event)
	}

	err = m.ChangeState("C")
	fmt.Println(errors.Is(err, undofsm.ErrUnknownState))
	fmt.Println(m.State())

	// Output:
	// A back
	// true
	// A
}

// Example: reset jumps to the initial state without recording history
func Example_reset() {
	m, _ := undofsm.New(undofsm.Config{
		Initial: "idle",
		States: []undofsm.StateConfig{
			{ID: "idle", Transitions: map[undofsm.EventID]undofsm.StateID{"start": "running"}},
			{ID: "running", Transitions: map[undofsm.EventID]undofsm.StateID{"pause": "paused"}},
			{ID: "paused"},
		},
	})

	_ = m.Trigger("start")
	_ = m.Trigger("pause")
	fmt.Println(m.Reset(), m.History().Undo)

	m.ClearHistory()
	fmt.Println(m.Undo())

	// Output:
	// idle [idle running]
	// false
}
