package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/fanwait/internal/errors"
	"github.com/agbru/fanwait/internal/fanout"
	"github.com/agbru/fanwait/internal/format"
	"github.com/agbru/fanwait/internal/metrics"
	"github.com/agbru/fanwait/internal/sysmon"
	"github.com/agbru/fanwait/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// Summary gathers everything shown by DisplaySummary.
type Summary struct {
	Result    fanout.Result
	Limit     int
	Memory    metrics.MemorySnapshot
	Allocated uint64
	Host      sysmon.Stats
	Err       error
}

// SequentialEstimate is how long the run would have taken with one unit at
// a time.
func (s Summary) SequentialEstimate() time.Duration {
	if s.Result.Pause <= 0 {
		return 0
	}
	return time.Duration(s.Result.Units) * s.Result.Pause
}

// DisplaySummary renders the run report as a bordered lipgloss box.
func DisplaySummary(out io.Writer, s Summary) {
	p := ui.GetCurrentPalette()
	label := lipgloss.NewStyle().Foreground(p.Label).Width(14)
	value := lipgloss.NewStyle().Foreground(p.Value)

	row := func(name, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(name), value.Render(v))
	}

	limit := "unbounded"
	if s.Limit > 0 {
		limit = fmt.Sprintf("%d", s.Limit)
	}
	status := lipgloss.NewStyle().Foreground(p.Success).Render("ok")
	if s.Err != nil {
		status = lipgloss.NewStyle().Foreground(p.Error).Render("failed: " + s.Err.Error())
	}

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(p.Title).Render("Run summary"),
		row("Units", fmt.Sprintf("%d", s.Result.Units)),
		row("Pause", format.FormatExecutionDuration(s.Result.Pause)),
		row("Limit", limit),
		row("Elapsed", format.FormatExecutionDuration(s.Result.Elapsed)),
		row("Sequential", format.FormatExecutionDuration(s.SequentialEstimate())),
		row("Speedup", format.FormatSpeedup(s.SequentialEstimate(), s.Result.Elapsed)),
		row("Heap", format.FormatBytes(s.Memory.HeapAlloc)),
		row("Allocated", format.FormatBytes(s.Allocated)),
		row("GC cycles", fmt.Sprintf("%d", s.Memory.NumGC)),
		row("Host CPU", fmt.Sprintf("%.1f%% of %d cores", s.Host.CPUPercent, s.Host.LogicalCPU)),
		row("Host memory", fmt.Sprintf("%.1f%%", s.Host.MemPercent)),
		row("Status", status),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	fmt.Fprintln(out, box)
}
