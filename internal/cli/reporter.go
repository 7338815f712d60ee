package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/fanwait/internal/fanout"
	"github.com/agbru/fanwait/internal/format"
)

// LineReporter writes one "<ordinal> is done" line per finished unit.
// Writes are serialised so concurrent units never interleave their lines.
type LineReporter struct {
	mu  sync.Mutex
	out io.Writer
}

var _ fanout.Reporter = (*LineReporter)(nil)

// NewLineReporter returns a LineReporter writing to out.
func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

// ReportDone writes the completion line for ordinal.
func (r *LineReporter) ReportDone(ordinal int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.out, "%d is done\n", ordinal)
	return err
}

// DisplayElapsed writes the final "Took: <seconds>" line.
func DisplayElapsed(out io.Writer, elapsed time.Duration) error {
	_, err := fmt.Fprintf(out, "Took: %s\n", format.FormatSeconds(elapsed))
	return err
}
