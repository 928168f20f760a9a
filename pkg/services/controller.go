package services

import (
	"io"
	"log/slog"

	"github.com/kerbaras/mangamobi/pkg/integrations"
	"github.com/spf13/afero"
)

// ControllerConfig wires the pipeline to a filesystem and a process runner.
type ControllerConfig struct {
	FS              afero.Fs
	Runner          integrations.Runner
	Logger          *slog.Logger
	ArchiverCommand []string
	Converter       integrations.ConverterOptions
	Builder         BuilderOptions
}

// Controller bundles the components a command needs.
type Controller struct {
	Builder   *Builder
	Batch     *Batch
	Relocator *Relocator
	Inspector *Inspector
}

func NewController(config ControllerConfig) *Controller {
	if config.FS == nil {
		config.FS = afero.NewOsFs()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Runner == nil {
		config.Runner = integrations.NewConsoleRunner(config.Logger)
	}

	archiver := integrations.NewArchiver(config.Runner, config.ArchiverCommand, config.Logger)
	converter := integrations.NewKCCConverter(config.Runner, config.Converter, config.Logger)
	builder := NewBuilder(config.FS, archiver, converter, config.Builder, config.Logger)

	return &Controller{
		Builder:   builder,
		Batch:     NewBatch(builder),
		Relocator: NewRelocator(config.FS, config.Logger),
		Inspector: NewInspector(config.FS, config.Builder.PageExtension),
	}
}
