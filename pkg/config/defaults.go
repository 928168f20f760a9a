package config

import (
	"log/slog"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/integrations"
	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/spf13/afero"
)

// Default returns the configuration used when no file is present: 7-Zip and
// the kcc flatpak, Kindle Paperwhite MOBI output, no series.
func Default() Config {
	converter := integrations.DefaultConverterOptions()
	return Config{
		LibraryDir:    ".",
		PageExtension: services.DefaultPageExtension,
		Archiver: Archiver{
			Command: append([]string{}, integrations.DefaultArchiverCommand...),
		},
		Converter: Converter{
			Command:    append([]string{}, converter.Command...),
			Profile:    converter.Profile,
			Format:     string(converter.Format),
			MangaStyle: converter.MangaStyle,
		},
	}
}

func (c *Config) normalize() {
	c.LibraryDir = strings.TrimSpace(c.LibraryDir)
	if c.LibraryDir == "" {
		c.LibraryDir = "."
	}
	if c.PageExtension == "" {
		c.PageExtension = services.DefaultPageExtension
	}
	if format, ok := integrations.ParseFormat(c.Converter.Format); ok {
		c.Converter.Format = string(format)
	}
	c.Converter.Profile = strings.TrimSpace(c.Converter.Profile)
	for i := range c.Series {
		c.Series[i].Name = strings.TrimSpace(c.Series[i].Name)
		c.Series[i].Directory = strings.TrimSpace(c.Series[i].Directory)
	}
}

// BuilderOptions maps the configuration onto the folder builder.
func (c *Config) BuilderOptions() services.BuilderOptions {
	return services.BuilderOptions{
		PageExtension:        c.PageExtension,
		KeepArchiveOnFailure: c.Converter.KeepArchiveOnFailure,
	}
}

// ConverterOptions maps the configuration onto the kcc-c2e client.
func (c *Config) ConverterOptions() integrations.ConverterOptions {
	format, _ := integrations.ParseFormat(c.Converter.Format)
	return integrations.ConverterOptions{
		Command:    c.Converter.Command,
		Profile:    c.Converter.Profile,
		Format:     format,
		MangaStyle: c.Converter.MangaStyle,
	}
}

// Requirements lists the external programs the configuration relies on.
func (c *Config) Requirements() []services.Requirement {
	reqs := []services.Requirement{
		{Name: "Archiver", Description: "packs chapter folders into .cbz archives"},
		{Name: "Converter", Description: "converts archives with kcc-c2e"},
	}
	if len(c.Archiver.Command) > 0 {
		reqs[0].Command = c.Archiver.Command[0]
	}
	if len(c.Converter.Command) > 0 {
		reqs[1].Command = c.Converter.Command[0]
	}
	return reqs
}

// ControllerConfig maps the configuration onto the service wiring.
func (c *Config) ControllerConfig(fs afero.Fs, runner integrations.Runner, logger *slog.Logger) services.ControllerConfig {
	return services.ControllerConfig{
		FS:              fs,
		Runner:          runner,
		Logger:          logger,
		ArchiverCommand: c.Archiver.Command,
		Converter:       c.ConverterOptions(),
		Builder:         c.BuilderOptions(),
	}
}
