package fancy

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/librescoot/undofsm"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, count int) *tree.Tree {
	return Tree().Root(fmt.Sprintf("%s %s", RootStyle.Render(title), InfoStyle.Render(fmt.Sprintf("(%d)", count))))
}

// MachineTree renders every state with its outgoing transitions. The current
// and initial states are marked.
func MachineTree(m *undofsm.Machine) *tree.Tree {
	states := m.States()
	root := BranchNode("States", len(states))

	for _, id := range states {
		label := StateText(string(id))
		if id == m.State() {
			label = CurrentStyle.Render(string(id)) + InfoStyle.Render(" (current)")
		}
		if id == m.Base() {
			label += InfoStyle.Render(" (initial)")
		}

		node := Tree().Root(label)
		table := m.Transitions(id)
		for _, event := range slices.Sorted(maps.Keys(table)) {
			node.Child(fmt.Sprintf("%s → %s", EventText(string(event)), StateText(string(table[event]))))
		}
		root.Child(node)
	}
	return root
}

// HistoryTree renders the undo and redo stacks, most recent entry last
func HistoryTree(h undofsm.History) *tree.Tree {
	root := Tree().Root(RootStyle.Render("History"))
	root.Child(stackNode("Undo", h.Undo))
	root.Child(stackNode("Redo", h.Redo))
	return root
}

func stackNode(title string, ids []undofsm.StateID) *tree.Tree {
	node := BranchNode(title, len(ids))
	for _, id := range ids {
		node.Child(StateText(string(id)))
	}
	return node
}

// RenderMachine returns the state tree followed by the history tree
func RenderMachine(m *undofsm.Machine) string {
	return MachineTree(m).String() + "\n" + HistoryTree(m.History()).String()
}
