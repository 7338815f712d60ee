package fanout

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fanwait/internal/logging"
)

// Options tunes a Run. The zero value launches every unit at once and
// reports nothing besides the Reporter's lines.
type Options struct {
	// Limit bounds the number of units in flight; <= 0 means unbounded.
	Limit int
	// Logger receives debug and summary entries. Defaults to a nop logger.
	Logger logging.Logger
	// Observer receives unit and run lifecycle events.
	Observer Observer
	// Progress displays progress from a dedicated goroutine.
	Progress ProgressReporter
	// ProgressOut is the writer handed to Progress. Defaults to io.Discard.
	ProgressOut io.Writer
	// Middleware wraps the unit body, outermost first, inside the built-in
	// logging and tracing layers.
	Middleware []Middleware
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.Progress == nil {
		o.Progress = NullProgressReporter{}
	}
	if o.ProgressOut == nil {
		o.ProgressOut = io.Discard
	}
	return o
}

// Result describes a finished run.
type Result struct {
	// Units is the number of units launched (0 when n <= 0).
	Units int
	// Pause is the per-unit pause the run was started with.
	Pause time.Duration
	// Elapsed is the wall-clock time from just before the first launch to
	// just after the last completion.
	Elapsed time.Duration
	// Completed lists the ordinals whose report succeeded, in completion order.
	Completed []int
}

// Run launches n units that each pause for pause and then report through
// reporter, and blocks until all of them have completed.
//
// All n units are launched before the caller starts waiting, so their pauses
// overlap and Elapsed approximates pause regardless of n. n <= 0 launches
// nothing. The first unit error, if any, is returned as *apperrors.UnitError
// once every unit has finished; the Result is valid in both cases.
func Run(ctx context.Context, n int, pause time.Duration, reporter Reporter, opts Options) (Result, error) {
	opts = opts.withDefaults()
	total := max(n, 0)

	ctx, span := tracer.Start(ctx, "fanout.Run", trace.WithAttributes(
		attribute.Int("fanout.units", total),
		attribute.String("fanout.pause", pause.String()),
		attribute.Int("fanout.limit", opts.Limit),
	))
	defer span.End()

	// Buffered to total so a unit never blocks on a slow display.
	progressChan := make(chan ProgressUpdate, total)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go opts.Progress.DisplayProgress(&displayWg, progressChan, total, opts.ProgressOut)

	var (
		mu        sync.Mutex
		completed = make([]int, 0, total)
		finished  atomic.Int64
	)
	instrument := func(next Work) Work {
		return func(ctx context.Context, u Unit) error {
			opts.Observer.UnitStarted(u.Ordinal)
			began := time.Now()
			err := next(ctx, u)
			opts.Observer.UnitFinished(u.Ordinal, time.Since(began))

			if err == nil {
				mu.Lock()
				completed = append(completed, u.Ordinal)
				mu.Unlock()
			}
			progressChan <- ProgressUpdate{
				Ordinal:   u.Ordinal,
				Completed: int(finished.Add(1)),
				Total:     total,
			}
			return err
		}
	}

	mws := append([]Middleware{instrument, Traced(), LogArgs(opts.Logger)}, opts.Middleware...)
	work := Chain(PauseThenReport(reporter), mws...)

	opts.Logger.Debug("launching units", logging.Int("units", total), logging.Duration("pause", pause), logging.Int("limit", opts.Limit))

	group := NewGroup(opts.Limit)
	start := time.Now()
	for i := 0; i < total; i++ {
		group.Launch(ctx, Unit{Ordinal: i, Pause: pause}, work)
	}
	err := group.Wait()
	elapsed := time.Since(start)

	close(progressChan)
	displayWg.Wait()

	opts.Observer.RunFinished(total, elapsed)
	span.SetAttributes(attribute.Float64("fanout.elapsed_seconds", elapsed.Seconds()))

	res := Result{Units: total, Pause: pause, Elapsed: elapsed, Completed: completed}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		opts.Logger.Error("run finished with a failed unit", err, logging.Int("reported", len(completed)))
		return res, err
	}
	opts.Logger.Info("run finished", logging.Int("units", total), logging.Duration("elapsed", elapsed))
	return res, nil
}
