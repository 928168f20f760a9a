package integrations

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultConverterCommand runs kcc-c2e from its flatpak.
var DefaultConverterCommand = []string{"flatpak", "run", "--command=kcc-c2e", "io.github.ciromattia.kcc"}

// ConverterOptions are the fixed flags passed to kcc-c2e on every run.
type ConverterOptions struct {
	Command    []string
	Profile    string
	Format     OutputFormat
	MangaStyle bool
}

// DefaultConverterOptions targets a Kindle Paperwhite with right-to-left MOBI output.
func DefaultConverterOptions() ConverterOptions {
	return ConverterOptions{
		Command:    DefaultConverterCommand,
		Profile:    "KPW",
		Format:     FormatMOBI,
		MangaStyle: true,
	}
}

// KCCConverter turns comic archives into e-reader files with kcc-c2e.
type KCCConverter struct {
	runner  Runner
	options ConverterOptions
	logger  *slog.Logger
}

func NewKCCConverter(runner Runner, options ConverterOptions, logger *slog.Logger) *KCCConverter {
	if len(options.Command) == 0 {
		options.Command = DefaultConverterCommand
	}
	if options.Format == "" {
		options.Format = FormatMOBI
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &KCCConverter{runner: runner, options: options, logger: logger}
}

// Args returns the arguments following the converter program for input.
func (c *KCCConverter) Args(input string) []string {
	args := append([]string{}, c.options.Command[1:]...)
	if c.options.Profile != "" {
		args = append(args, "--profile="+c.options.Profile)
	}
	if c.options.MangaStyle {
		args = append(args, "--manga-style")
	}
	args = append(args, "--format="+string(c.options.Format), input)
	return args
}

// Convert runs kcc-c2e on the archive and returns its exit code.
func (c *KCCConverter) Convert(ctx context.Context, input string) (int, error) {
	code, err := c.runner.Run(ctx, c.options.Command[0], c.Args(input)...)
	if err != nil {
		return code, goerr.Wrap(err, "converter failed", goerr.V("input", input))
	}
	if code != 0 {
		c.logger.Warn("converter exited with non-zero status", "code", code, "input", input)
	}
	return code, nil
}

// OutputPath is where kcc-c2e writes the converted file: next to the input,
// same base name, format extension.
func (c *KCCConverter) OutputPath(input string) string {
	ext := c.options.Format.Extension()
	if ext == "" {
		ext = ".mobi"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
