package integrations

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultArchiverCommand adds files to an archive with 7-Zip.
var DefaultArchiverCommand = []string{"7z", "a"}

// Archiver compresses a folder into an archive with an external tool.
type Archiver struct {
	runner  Runner
	command []string
	logger  *slog.Logger
}

// NewArchiver creates an archiver. The command is the program and its leading
// arguments; the archive and source paths are appended to it.
func NewArchiver(runner Runner, command []string, logger *slog.Logger) *Archiver {
	if len(command) == 0 {
		command = DefaultArchiverCommand
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Archiver{runner: runner, command: command, logger: logger}
}

// Archive creates archivePath from the folder at source and returns the tool's
// exit code.
func (a *Archiver) Archive(ctx context.Context, archivePath, source string) (int, error) {
	args := append(append([]string{}, a.command[1:]...), archivePath, source)
	code, err := a.runner.Run(ctx, a.command[0], args...)
	if err != nil {
		return code, goerr.Wrap(err, "archiver failed", goerr.V("archive", archivePath), goerr.V("source", source))
	}
	if code != 0 {
		a.logger.Warn("archiver exited with non-zero status", "code", code, "archive", archivePath)
	}
	return code, nil
}
