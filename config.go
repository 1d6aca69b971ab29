package undofsm

// Config is a plain-data machine configuration: an initial state and the
// state table in declaration order.
type Config struct {
	Initial StateID
	States  []StateConfig
}

// StateConfig is one entry of a Config state table
type StateConfig struct {
	ID          StateID
	Transitions map[EventID]StateID
}

// Definition converts the configuration into a Definition builder
func (c Config) Definition() *Definition {
	d := NewDefinition().Initial(c.Initial)
	for _, s := range c.States {
		d.State(s.ID, WithTransitions(s.Transitions))
	}
	return d
}

// New builds a Machine directly from a Config
func New(cfg Config, opts ...MachineOption) (*Machine, error) {
	return cfg.Definition().Build(opts...)
}
