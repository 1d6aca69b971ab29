package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/librescoot/undofsm"
)

func newStatesCmd() *cli.Command {
	return &cli.Command{
		Name:      "states",
		Usage:     "List the states of a definition, optionally only those accepting an event",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "event",
				Aliases: []string{"e"},
				Usage:   "Only list states with a transition for this event",
			},
		},
		Action: statesAction,
	}
}

func statesAction(ctx context.Context, cmd *cli.Command) error {
	m, err := loadMachine(cmd)
	if err != nil {
		return exit(err)
	}

	states := m.States()
	if event := cmd.String("event"); event != "" {
		states = m.StatesFor(undofsm.EventID(event))
	}

	out := stdout(cmd)
	for _, id := range states {
		if _, err := fmt.Fprintln(out, id); err != nil {
			return err
		}
	}
	return nil
}
