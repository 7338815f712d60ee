package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/fanwait/internal/cli"
	"github.com/agbru/fanwait/internal/config"
	apperrors "github.com/agbru/fanwait/internal/errors"
	"github.com/agbru/fanwait/internal/sysmon"
	"github.com/agbru/fanwait/internal/ui"
)

// Application represents the fanwait application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	primeHost  func()
	sampleHost func() sysmon.Stats
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithHostSampler replaces the gopsutil-backed host sampling used by the
// summary.
func WithHostSampler(prime func(), sample func() sysmon.Stats) AppOption {
	return func(a *Application) {
		a.primeHost = prime
		a.sampleHost = sample
	}
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter:  errWriter,
		primeHost:  sysmon.Prime,
		sampleHost: sysmon.Sample,
	}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fanwait"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code. Only the unit lines and the elapsed line go to out.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(a.Config.Level())
	ui.InitTheme(a.Config.NoColor)

	return a.runFanOut(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
