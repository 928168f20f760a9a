package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kerbaras/mangamobi/pkg/config"
	"github.com/kerbaras/mangamobi/pkg/integrations"
	"github.com/kerbaras/mangamobi/pkg/logging"
	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/kerbaras/mangamobi/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Environment fallbacks for the logging flags.
const (
	EnvLogLevel  = "MANGAMOBI_LOG_LEVEL"
	EnvLogFormat = "MANGAMOBI_LOG_FORMAT"
)

// skipConfig marks commands that must work without a valid configuration.
const skipConfig = "skip-config"

var (
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	noColor    bool
)

// session is the state shared by all commands of one invocation.
type session struct {
	cfg       *config.Config
	cfgPath   string
	cfgFound  bool
	logger    *slog.Logger
	logOutput io.Writer // log file, nil when logging to stderr
	runID     string
	closers   []func() error
}

var current session

var rootCmd = &cobra.Command{
	Use:   "mangamobi",
	Short: "Turn folders of manga pages into e-reader files",
	Long: `Turn folders of manga page images into Kindle/Kobo e-reader files.

Every chapter folder gets a ComicInfo.xml, is packed into a .cbz with 7z and
converted with Kindle Comic Converter (kcc-c2e). Series can be described once
in a TOML configuration file and converted by name.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		for _, closer := range current.closers {
			_ = closer()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: $"+config.EnvConfigPath+", ./mangamobi.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error); also $"+EnvLogLevel)
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "Log format (text, json); also $"+EnvLogFormat)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
}

func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	opts := logging.Options{
		Level:  flagOrEnv(cmd, "log-level", logLevel, EnvLogLevel),
		Format: flagOrEnv(cmd, "log-format", logFormat, EnvLogFormat),
		Color:  !noColor && utils.IsTerminal(os.Stderr),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		current.closers = append(current.closers, f.Close)
		current.logOutput = f
		opts.Writer = f
		opts.Color = false
	}

	logger, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	current.runID = uuid.NewString()
	current.logger = logger.With("run_id", current.runID)

	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}
	cfg, path, found, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	current.cfg, current.cfgPath, current.cfgFound = cfg, path, found
	current.logger.Debug("configuration loaded", "path", path, "found", found, "series", len(cfg.Series))
	return nil
}

// flagOrEnv returns value unless the flag was left unset and env is.
func flagOrEnv(cmd *cobra.Command, flag, value, env string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return value
}

// newController wires the pipeline for a command. In quiet mode tool output
// goes to the log file or nowhere, leaving the terminal to the TUI.
func newController(quiet bool) *services.Controller {
	logger := current.logger
	var runner integrations.Runner
	if quiet {
		if current.logOutput == nil {
			logger = logging.Discard()
		}
		runner = integrations.NewCommandRunner(current.logOutput, current.logOutput, logger)
	} else {
		runner = integrations.NewConsoleRunner(logger)
	}
	return services.NewController(current.cfg.ControllerConfig(afero.NewOsFs(), runner, logger))
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
