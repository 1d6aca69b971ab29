package loader

import (
	"fmt"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/librescoot/undofsm"
)

// tomlDocument mirrors the TOML layout:
//
//	initial = "idle"
//
//	[[states]]
//	id = "idle"
//	[states.transitions]
//	start = "running"
type tomlDocument struct {
	Initial string      `toml:"initial"`
	States  []tomlState `toml:"states"`
}

type tomlState struct {
	ID          string            `toml:"id"`
	Transitions map[string]string `toml:"transitions"`
}

func parseTOML(data []byte) (undofsm.Config, error) {
	var doc tomlDocument
	if err := gotoml.Unmarshal(data, &doc); err != nil {
		return undofsm.Config{}, fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	cfg := undofsm.Config{
		Initial: undofsm.StateID(doc.Initial),
		States:  make([]undofsm.StateConfig, 0, len(doc.States)),
	}
	seen := make(map[string]int, len(doc.States))
	for i, s := range doc.States {
		if s.ID == "" {
			return undofsm.Config{}, fmt.Errorf("%w: states[%d] has no id", ErrInvalidStates, i)
		}
		if first, ok := seen[s.ID]; ok {
			return undofsm.Config{}, fmt.Errorf("%w: duplicate state %q in states[%d] (first defined in states[%d])", ErrInvalidStates, s.ID, i, first)
		}
		seen[s.ID] = i
		cfg.States = append(cfg.States, undofsm.StateConfig{
			ID:          undofsm.StateID(s.ID),
			Transitions: convertTransitions(s.Transitions),
		})
	}
	return cfg, nil
}

func convertTransitions(in map[string]string) map[undofsm.EventID]undofsm.StateID {
	out := make(map[undofsm.EventID]undofsm.StateID, len(in))
	for event, to := range in {
		out[undofsm.EventID(event)] = undofsm.StateID(to)
	}
	return out
}
