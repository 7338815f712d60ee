package app

import (
	"context"
	"io"

	"github.com/agbru/fanwait/internal/cli"
	apperrors "github.com/agbru/fanwait/internal/errors"
	"github.com/agbru/fanwait/internal/fanout"
	"github.com/agbru/fanwait/internal/logging"
	"github.com/agbru/fanwait/internal/metrics"
)

// runFanOut launches the configured units, prints the elapsed line and the
// optional diagnostics.
func (a *Application) runFanOut(ctx context.Context, out io.Writer) int {
	logger := logging.NewLogger(a.ErrWriter, "fanwait")
	recorder := metrics.NewRecorder()
	memCollector := metrics.NewMemoryCollector()
	before := memCollector.Snapshot()
	if a.Config.Summary {
		a.primeHost()
	}

	opts := fanout.Options{
		Limit:    a.Config.Limit,
		Logger:   logger,
		Observer: recorder,
	}
	if a.Config.Progress {
		opts.Progress = cli.CLIProgressReporter{}
		opts.ProgressOut = a.ErrWriter
	}

	res, runErr := fanout.Run(ctx, a.Config.Units, a.Config.Pause, cli.NewLineReporter(out), opts)
	if err := cli.DisplayElapsed(out, res.Elapsed); err != nil && runErr == nil {
		runErr = apperrors.WrapError(err, "writing elapsed time")
	}

	if a.Config.Summary {
		after := memCollector.Snapshot()
		cli.DisplaySummary(a.ErrWriter, cli.Summary{
			Result:    res,
			Limit:     a.Config.Limit,
			Memory:    after,
			Allocated: after.AllocatedSince(before),
			Host:      a.sampleHost(),
			Err:       runErr,
		})
	}

	if a.Config.MetricsFile != "" {
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			logger.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
			if runErr == nil {
				runErr = apperrors.WrapError(err, "writing metrics to %s", a.Config.MetricsFile)
			}
		}
	}

	return apperrors.HandleRunError(runErr, a.ErrWriter, cli.CLIColorProvider{})
}

