package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/librescoot/undofsm/internal/fancy"
	"github.com/librescoot/undofsm/internal/script"
)

func newRunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run commands against a machine, from arguments or stdin",
		ArgsUsage: "<file> [command ...]",
		Description: "Each command argument is one line, e.g. 'trigger start'. Available commands:\n   " +
			strings.Join(script.Commands(), "\n   "),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "keep-going",
				Aliases: []string{"k"},
				Usage:   "Report failing commands and continue",
			},
			&cli.BoolFlag{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Print the machine and its history when done",
			},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	m, err := loadMachine(cmd)
	if err != nil {
		return exit(err)
	}

	out := stdout(cmd)
	runner := script.New(m, out, slog.Default().With("component", "script"))
	runner.KeepGoing = cmd.Bool("keep-going")
	runner.FormatError = func(err error) string {
		return fancy.ErrorText("error: " + err.Error())
	}

	lines := cmd.Args().Tail()
	if len(lines) > 0 {
		err = runner.RunLines(ctx, lines)
	} else {
		err = runner.Run(ctx, stdin(cmd))
	}
	if err != nil {
		return exit(err)
	}

	if cmd.Bool("show") {
		_, err = fmt.Fprintf(out, "\n%s\n", fancy.RenderMachine(m))
	}
	return err
}
