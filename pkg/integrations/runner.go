package integrations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// CommandRunner executes programs with os/exec, echoing their output.
type CommandRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewCommandRunner creates a runner that forwards child output to stdout and
// stderr. Nil writers discard the output.
func NewCommandRunner(stdout, stderr io.Writer, logger *slog.Logger) *CommandRunner {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandRunner{stdout: stdout, stderr: stderr, logger: logger}
}

// NewConsoleRunner forwards child output to the process' own stdout/stderr.
func NewConsoleRunner(logger *slog.Logger) *CommandRunner {
	return NewCommandRunner(os.Stdout, os.Stderr, logger)
}

func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	r.logger.Info("running command", "command", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, goerr.Wrap(ctxErr, "command interrupted", goerr.V("command", name))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, goerr.Wrap(err, "failed to start command", goerr.V("command", name))
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
