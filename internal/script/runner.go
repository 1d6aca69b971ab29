// Package script drives a state machine from line-oriented commands such as
// "trigger start", "undo" or "states pause".
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/librescoot/undofsm"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrTooManyArguments = errors.New("too many arguments")
)

// Runner executes commands against a machine and writes one result line per command
type Runner struct {
	machine *undofsm.Machine
	out     io.Writer
	logger  *slog.Logger

	// KeepGoing reports command errors on the output instead of stopping Run.
	KeepGoing bool

	// FormatError renders a command error reported under KeepGoing.
	// Defaults to "error: <message>".
	FormatError func(error) string
}

// New creates a Runner. A nil logger falls back to slog.Default().
func New(machine *undofsm.Machine, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		machine:     machine,
		out:         out,
		logger:      logger,
		FormatError: plainError,
	}
}

func plainError(err error) string {
	return "error: " + err.Error()
}

// Run reads commands from r until EOF. The context is checked between lines.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		err := r.Exec(scanner.Text())
		if err == nil {
			continue
		}
		if !r.KeepGoing {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		r.logger.Warn("command failed", "line", lineNo, "error", err)
		if _, werr := fmt.Fprintln(r.out, r.FormatError(err)); werr != nil {
			return werr
		}
	}
	return scanner.Err()
}

// RunLines executes each element of lines as one command
func (r *Runner) RunLines(ctx context.Context, lines []string) error {
	return r.Run(ctx, strings.NewReader(strings.Join(lines, "\n")))
}

// Exec runs a single command. Blank lines and lines starting with '#' are ignored.
func (r *Runner) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: %s %s", ErrMissingArgument, name, cmd.usage)
	}
	if len(args) > cmd.maxArgs {
		return fmt.Errorf("%w: %s %s", ErrTooManyArguments, name, cmd.usage)
	}

	r.logger.Debug("executing command", "command", name, "args", args)
	result, err := cmd.run(r.machine, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, result)
	return err
}
