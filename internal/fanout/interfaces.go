//go:generate mockgen -source=interfaces.go -destination=mocks/mock_fanout.go -package=mocks

package fanout

import (
	"io"
	"sync"
	"time"
)

// Reporter emits the completion message of a unit. Implementations must be
// safe for concurrent use.
type Reporter interface {
	ReportDone(ordinal int) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ordinal int) error

// ReportDone calls f.
func (f ReporterFunc) ReportDone(ordinal int) error { return f(ordinal) }

// Observer receives lifecycle events of a run. Implementations must be safe
// for concurrent use; UnitStarted and UnitFinished are called from the unit
// goroutines.
type Observer interface {
	UnitStarted(ordinal int)
	UnitFinished(ordinal int, d time.Duration)
	RunFinished(units int, elapsed time.Duration)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) UnitStarted(int)                 {}
func (NopObserver) UnitFinished(int, time.Duration) {}
func (NopObserver) RunFinished(int, time.Duration)  {}

// ProgressUpdate is sent once per finished unit.
type ProgressUpdate struct {
	// Ordinal of the unit that just finished.
	Ordinal int
	// Completed is the number of units finished so far, this one included.
	Completed int
	// Total is the number of units launched by the run.
	Total int
}

// Fraction returns Completed/Total, or 1 when Total is zero.
func (p ProgressUpdate) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Completed) / float64(p.Total)
}

// ProgressReporter displays progress while a run is in flight.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed and then calls
	// wg.Done. It runs in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numUnits int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numUnits int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numUnits int, out io.Writer) {
	f(wg, progressChan, numUnits, out)
}

// NullProgressReporter drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}
