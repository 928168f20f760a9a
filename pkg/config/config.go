package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "MANGAMOBI_CONFIG"

// Archiver configures the external archiving tool.
type Archiver struct {
	Command []string `toml:"command"`
}

// Converter configures the external kcc-c2e invocation.
type Converter struct {
	Command              []string `toml:"command"`
	Profile              string   `toml:"profile"`
	Format               string   `toml:"format"`
	MangaStyle           bool     `toml:"manga_style"`
	KeepArchiveOnFailure bool     `toml:"keep_archive_on_failure"`
}

// Config is the whole mangamobi configuration file.
type Config struct {
	LibraryDir    string        `toml:"library_dir"`
	PageExtension string        `toml:"page_extension"`
	Archiver      Archiver      `toml:"archiver"`
	Converter     Converter     `toml:"converter"`
	Series        []data.Series `toml:"series"`
}

// Load locates, parses and validates a configuration file. A missing file
// yields the defaults. The resolved path and whether it existed are returned
// alongside.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// DefaultConfigPath is the per-user configuration location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mangamobi", "config.toml"), nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		_, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return path, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return path, true, nil
	}

	projectPath, err := filepath.Abs("mangamobi.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return projectPath, false, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// FindSeries looks a series up by name, ignoring case.
func (c *Config) FindSeries(name string) (data.Series, bool) {
	for _, s := range c.Series {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return data.Series{}, false
}

// SeriesPath resolves the series directory against the library root.
func (c *Config) SeriesPath(s data.Series) string {
	return s.Path(c.LibraryDir)
}

// Marshal renders the effective configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path, refusing to
// overwrite an existing file.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
