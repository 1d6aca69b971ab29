package script

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/librescoot/undofsm"
)

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(m *undofsm.Machine, args []string) (string, error)
}

var commands = map[string]command{
	"state": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			return string(m.State()), nil
		},
	},
	"change": {
		usage:   "<state>",
		minArgs: 1,
		maxArgs: 1,
		run: func(m *undofsm.Machine, args []string) (string, error) {
			if err := m.ChangeState(undofsm.StateID(args[0])); err != nil {
				return "", err
			}
			return string(m.State()), nil
		},
	},
	"trigger": {
		usage:   "<event>",
		minArgs: 1,
		maxArgs: 1,
		run: func(m *undofsm.Machine, args []string) (string, error) {
			if err := m.Trigger(undofsm.EventID(args[0])); err != nil {
				return "", err
			}
			return string(m.State()), nil
		},
	},
	"reset": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			return string(m.Reset()), nil
		},
	},
	"undo": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			ok := m.Undo()
			return strconv.FormatBool(ok) + " " + string(m.State()), nil
		},
	},
	"redo": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			ok := m.Redo()
			return strconv.FormatBool(ok) + " " + string(m.State()), nil
		},
	},
	"clear": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			m.ClearHistory()
			return "ok", nil
		},
	},
	"states": {
		usage:   "[event]",
		maxArgs: 1,
		run: func(m *undofsm.Machine, args []string) (string, error) {
			if len(args) == 0 {
				return joinIDs(m.States()), nil
			}
			return joinIDs(m.StatesFor(undofsm.EventID(args[0]))), nil
		},
	},
	"events": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			return joinIDs(m.Events()), nil
		},
	},
	"history": {
		run: func(m *undofsm.Machine, _ []string) (string, error) {
			h := m.History()
			return fmt.Sprintf("undo=[%s] redo=[%s]", joinIDs(h.Undo), joinIDs(h.Redo)), nil
		},
	},
}

// Commands returns the supported command names with their argument usage, sorted
func Commands() []string {
	out := make([]string, 0, len(commands))
	for name, cmd := range commands {
		out = append(out, strings.TrimSpace(name+" "+cmd.usage))
	}
	sort.Strings(out)
	return out
}

func joinIDs[T ~string](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " ")
}
