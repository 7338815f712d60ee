// Package config parses the fanwait command line and environment into an
// AppConfig. Priority: CLI flags > FANWAIT_* environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/fanwait/internal/errors"
)

// EnvPrefix prefixes every environment variable read by ParseConfig.
const EnvPrefix = "FANWAIT_"

const (
	// DefaultUnits is the number of concurrent work units launched.
	DefaultUnits = 80
	// DefaultPause is how long each unit sleeps before reporting.
	DefaultPause = 2 * time.Second
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Units is the number of work units to launch. Values <= 0 launch none.
	Units int
	// Pause is the per-unit sleep. Negative values behave as zero.
	Pause time.Duration
	// Limit bounds the number of in-flight units; <= 0 means unbounded.
	Limit int
	// LogLevel is a zerolog level name.
	LogLevel string
	// Progress enables the stderr spinner when stderr is a terminal.
	Progress bool
	// Summary prints a run report to stderr after the contract output.
	Summary bool
	// NoColor disables ANSI colors on stderr.
	NoColor bool
	// MetricsFile, when set, receives the run metrics in Prometheus text format.
	MetricsFile string
	// Completion, when set, prints a shell completion script and exits.
	Completion string
}

// Default returns the configuration used when no flag or variable is set.
func Default() AppConfig {
	return AppConfig{
		Units:    DefaultUnits,
		Pause:    DefaultPause,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the fields that can be wrong. Units, Pause and Limit are
// deliberately accepted as-is.
func (c AppConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed zerolog level, falling back to warn.
func (c AppConfig) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// ParseConfig parses args (without the program name) into an AppConfig.
// It returns flag.ErrHelp when -h or --help was given.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Launches N concurrent units that each pause for a fixed duration,\n")
		fmt.Fprintf(errWriter, "waits for all of them and prints the elapsed time.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	cfg := Default()
	fs.IntVar(&cfg.Units, "n", cfg.Units, "Number of units to launch.")
	fs.IntVar(&cfg.Units, "units", cfg.Units, "Number of units to launch (alias of -n).")
	fs.DurationVar(&cfg.Pause, "p", cfg.Pause, "Pause of each unit.")
	fs.DurationVar(&cfg.Pause, "pause", cfg.Pause, "Pause of each unit (alias of -p).")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "Maximum number of units in flight (0 = unbounded).")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level on stderr (debug, info, warn, error).")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress spinner on stderr.")
	fs.BoolVar(&cfg.Summary, "summary", cfg.Summary, "Print a run summary on stderr.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colors (also honoured via NO_COLOR).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write run metrics in Prometheus text format to this file.")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "Print a completion script (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
		fmt.Fprintf(errWriter, "%v\n", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "%v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}
