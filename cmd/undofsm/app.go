package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/librescoot/undofsm"
	"github.com/librescoot/undofsm/internal/logging"
	"github.com/librescoot/undofsm/loader"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "undofsm",
		Version: Version,
		Usage:   "Inspect and drive state machine definitions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("UNDOFSM_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("UNDOFSM_LOG_FORMAT"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetupLogger(cmd.String("log-level"), cmd.String("log-format"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			newVersionCmd(),
			newValidateCmd(),
			newStatesCmd(),
			newRunCmd(),
		},
	}
}

// loadMachine reads the definition file named by the first positional argument
func loadMachine(cmd *cli.Command) (*undofsm.Machine, error) {
	if cmd.Args().Len() < 1 {
		return nil, fmt.Errorf("definition file path required")
	}
	path := cmd.Args().First()

	def, err := loader.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}

	logger := slog.Default().With("component", "machine", "definition", path)
	m, err := def.Build(undofsm.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// exitError ends the process with the wrapped ExitCoder's status while keeping
// the cause reachable for errors.Is and errors.As.
type exitError struct {
	cli.ExitCoder
	cause error
}

func (e exitError) Unwrap() error { return e.cause }

// exit reports err to the user and exits with status 1
func exit(err error) error {
	return exitError{ExitCoder: cli.Exit(err, 1), cause: err}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
