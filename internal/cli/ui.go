//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/agbru/fanwait/internal/fanout"
	"github.com/agbru/fanwait/internal/ui"
)

const (
	// ProgressRefreshRate is the spinner animation interval.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix takes the spinner lock since the animation goroutine reads
// Suffix on every frame.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// isTerminal reports whether w is a terminal. Only terminals get a spinner.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// CLIProgressReporter displays a spinner and a progress bar on a terminal.
type CLIProgressReporter struct{}

var _ fanout.ProgressReporter = CLIProgressReporter{}

// DisplayProgress implements fanout.ProgressReporter.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fanout.ProgressUpdate, numUnits int, out io.Writer) {
	DisplayProgress(wg, progressChan, numUnits, out)
}

// DisplayProgress consumes progressChan until it is closed. When out is a
// terminal it animates a spinner followed by a bar and a "done/total"
// counter; otherwise the updates are drained silently.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fanout.ProgressUpdate, numUnits int, out io.Writer) {
	defer wg.Done()
	if numUnits <= 0 || !isTerminal(out) {
		for range progressChan {
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(fanout.ProgressUpdate{Total: numUnits}))
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		s.UpdateSuffix(progressSuffix(update))
	}
}

func progressSuffix(p fanout.ProgressUpdate) string {
	return fmt.Sprintf(" %s%s%s %d/%d units done",
		ui.ColorGreen(), progressBar(p.Fraction(), ProgressBarWidth), ui.ColorReset(),
		p.Completed, p.Total)
}

// progressBar renders progress (clamped to [0, 1]) as a bar of length runes.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
