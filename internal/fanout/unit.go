package fanout

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fanwait/internal/logging"
)

var tracer = otel.Tracer("github.com/agbru/fanwait/internal/fanout")

// Unit is one concurrently scheduled piece of work.
type Unit struct {
	// Ordinal identifies the unit in [0, N).
	Ordinal int
	// Pause is how long the unit sleeps before reporting.
	Pause time.Duration
}

// Work is the body executed for a unit.
type Work func(ctx context.Context, u Unit) error

// Middleware wraps a Work with behaviour that runs around it.
type Middleware func(Work) Work

// Chain wraps w with mws so that mws[0] is the outermost layer.
func Chain(w Work, mws ...Middleware) Work {
	for i := len(mws) - 1; i >= 0; i-- {
		w = mws[i](w)
	}
	return w
}

// PauseThenReport returns the standard unit body: sleep for the unit's pause,
// then hand the ordinal to reporter.
func PauseThenReport(reporter Reporter) Work {
	return func(_ context.Context, u Unit) error {
		time.Sleep(u.Pause)
		return reporter.ReportDone(u.Ordinal)
	}
}

// LogArgs logs the unit it is about to run, then delegates.
func LogArgs(logger logging.Logger) Middleware {
	return func(next Work) Work {
		return func(ctx context.Context, u Unit) error {
			logger.Debug("unit starting", logging.Int("ordinal", u.Ordinal), logging.Duration("pause", u.Pause))
			return next(ctx, u)
		}
	}
}

// Traced opens a span per unit.
func Traced() Middleware {
	return func(next Work) Work {
		return func(ctx context.Context, u Unit) error {
			ctx, span := tracer.Start(ctx, "fanout.unit",
				trace.WithAttributes(attribute.Int("fanout.ordinal", u.Ordinal)))
			defer span.End()

			err := next(ctx, u)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}
