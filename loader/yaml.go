package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/librescoot/undofsm"
)

// yamlDocument mirrors the YAML (and JSON) layout:
//
//	initial: idle
//	states:
//	  idle:
//	    transitions:
//	      start: running
//
// States is kept as a raw node so the mapping order survives decoding.
type yamlDocument struct {
	Initial string    `yaml:"initial"`
	States  yaml.Node `yaml:"states"`
}

type yamlState struct {
	Transitions map[string]string `yaml:"transitions"`
}

func parseYAML(data []byte) (undofsm.Config, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return undofsm.Config{}, fmt.Errorf("%w: %w", ErrParseYaml, err)
	}

	cfg := undofsm.Config{Initial: undofsm.StateID(doc.Initial)}

	states := &doc.States
	switch states.Kind {
	case 0:
		return cfg, nil
	case yaml.MappingNode:
	case yaml.ScalarNode:
		if states.ShortTag() == "!!null" {
			return cfg, nil
		}
		fallthrough
	default:
		return undofsm.Config{}, fmt.Errorf("%w: expected a mapping of state IDs at line %d", ErrInvalidStates, states.Line)
	}

	cfg.States = make([]undofsm.StateConfig, 0, len(states.Content)/2)
	seen := make(map[string]int, len(states.Content)/2)
	for i := 0; i+1 < len(states.Content); i += 2 {
		key, value := states.Content[i], states.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return undofsm.Config{}, fmt.Errorf("%w: state ID at line %d must be a non-empty string", ErrInvalidStates, key.Line)
		}
		// Decoding into a yaml.Node skips the decoder's own duplicate key check.
		if first, ok := seen[key.Value]; ok {
			return undofsm.Config{}, fmt.Errorf("%w: duplicate state %q at line %d (first defined at line %d)", ErrInvalidStates, key.Value, key.Line, first)
		}
		seen[key.Value] = key.Line

		var st yamlState
		if err := value.Decode(&st); err != nil {
			return undofsm.Config{}, fmt.Errorf("%w: state %q: %w", ErrInvalidStates, key.Value, err)
		}

		cfg.States = append(cfg.States, undofsm.StateConfig{
			ID:          undofsm.StateID(key.Value),
			Transitions: convertTransitions(st.Transitions),
		})
	}
	return cfg, nil
}
