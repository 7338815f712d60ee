// Package ui provides theme and color support for fanwait's stderr output.
// It defines the ANSI color schemes used by error messages and the spinner,
// and the lipgloss palette used by the run summary.
//
// Nothing written to standard output is ever colored.
package ui
