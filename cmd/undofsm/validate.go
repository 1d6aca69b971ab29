package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/librescoot/undofsm/internal/fancy"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Validate a definition file and print its states",
		ArgsUsage: "<file>",
		Action:    validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	m, err := loadMachine(cmd)
	if err != nil {
		return exit(err)
	}

	out := stdout(cmd)
	if _, err := fmt.Fprintf(out, "Definition %s is valid\n\n", cmd.Args().First()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, fancy.MachineTree(m))
	return err
}
