// Package format holds the pure string formatters shared by the CLI output
// and the run summary.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders d as decimal seconds with the shortest representation
// that round-trips, never in exponent notation (e.g. "2.003181", "0.000012").
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// FormatSpeedup renders how many times faster actual was than sequential,
// e.g. "79.4x". Returns "n/a" when actual is zero.
func FormatSpeedup(sequential, actual time.Duration) string {
	if actual <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1fx", float64(sequential)/float64(actual))
}
