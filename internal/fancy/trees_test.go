package fancy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/undofsm"
	"github.com/librescoot/undofsm/internal/fancy"
)

func newMachine(t *testing.T) *undofsm.Machine {
	t.Helper()
	m, err := undofsm.NewDefinition().
		State("idle", undofsm.WithTransition("start", "running")).
		State("running",
			undofsm.WithTransition("pause", "paused"),
			undofsm.WithTransition("stop", "idle"),
		).
		State("paused", undofsm.WithTransition("resume", "running")).
		Initial("idle").
		Build()
	require.NoError(t, err)
	return m
}

func TestBranchNode(t *testing.T) {
	out := fancy.BranchNode("Undo", 5).String()
	assert.Contains(t, out, "Undo")
	assert.Contains(t, out, "(5)")
}

func TestMachineTree(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Trigger("start"))

	out := fancy.MachineTree(m).String()
	assert.Contains(t, out, "States")
	assert.Contains(t, out, "(3)")
	assert.Contains(t, out, "idle")
	assert.Contains(t, out, "(initial)")
	assert.Contains(t, out, "(current)")
	assert.Contains(t, out, "pause")
	assert.Contains(t, out, "→")

	// States keep declaration order.
	assert.Less(t, strings.Index(out, "idle"), strings.Index(out, "running"))
	assert.Less(t, strings.Index(out, "running"), strings.Index(out, "resume"))
}

func TestHistoryTree(t *testing.T) {
	m := newMachine(t)
	require.NoError(t, m.Trigger("start"))
	require.NoError(t, m.Trigger("pause"))
	require.True(t, m.Undo())

	out := fancy.HistoryTree(m.History()).String()
	assert.Contains(t, out, "History")
	assert.Contains(t, out, "Undo")
	assert.Contains(t, out, "Redo")
	assert.Contains(t, out, "paused")
}

func TestRenderMachine(t *testing.T) {
	m := newMachine(t)
	out := fancy.RenderMachine(m)
	assert.Contains(t, out, "States")
	assert.Contains(t, out, "History")
}

func TestStyleHelpers(t *testing.T) {
	assert.Contains(t, fancy.StateText("idle"), "idle")
	assert.Contains(t, fancy.EventText("start"), "start")
	assert.Contains(t, fancy.ErrorText("boom"), "boom")
	assert.NotPanics(t, func() {
		fancy.RootStyle.Render("x")
		fancy.CurrentStyle.Render("x")
	})
}
