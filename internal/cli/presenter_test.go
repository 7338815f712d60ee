package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fanwait/internal/errors"
	"github.com/agbru/fanwait/internal/fanout"
	"github.com/agbru/fanwait/internal/metrics"
	"github.com/agbru/fanwait/internal/sysmon"
	"github.com/agbru/fanwait/internal/ui"
)

func TestDisplaySummary(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.InitTheme(false)

	tests := []struct {
		name     string
		summary  Summary
		contains []string
	}{
		{
			name: "successful run",
			summary: Summary{
				Result: fanout.Result{Units: 80, Pause: 2 * time.Second, Elapsed: 2 * time.Second},
				Memory: metrics.MemorySnapshot{HeapAlloc: 3 << 20, NumGC: 2},
				Host:   sysmon.Stats{CPUPercent: 12.5, LogicalCPU: 8, MemPercent: 40},
			},
			contains: []string{"Run summary", "80", "2m40s", "80.0x", "unbounded", "3.0 MiB", "12.5% of 8 cores", "ok"},
		},
		{
			name: "limited and failed",
			summary: Summary{
				Result: fanout.Result{Units: 4, Pause: time.Second, Elapsed: 2 * time.Second},
				Limit:  2,
				Err:    &apperrors.UnitError{Ordinal: 1, Cause: errors.New("broken pipe")},
			},
			contains: []string{"2.0x", "failed: unit 1: broken pipe"},
		},
		{
			name:     "empty run",
			summary:  Summary{},
			contains: []string{"Units", "n/a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplaySummary(&buf, tt.summary)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, output)
				}
			}
		})
	}
}

func TestSummary_SequentialEstimate(t *testing.T) {
	t.Parallel()
	s := Summary{Result: fanout.Result{Units: 80, Pause: 2 * time.Second}}
	if got := s.SequentialEstimate(); got != 160*time.Second {
		t.Errorf("SequentialEstimate = %v, want 160s", got)
	}
	s.Result.Pause = -time.Second
	if got := s.SequentialEstimate(); got != 0 {
		t.Errorf("negative pause estimate = %v, want 0", got)
	}
}

func TestCLIColorProvider(t *testing.T) {
	ui.SetCurrentTheme(ui.DarkTheme)
	defer ui.InitTheme(false)

	var c CLIColorProvider
	if c.Red() != ui.DarkTheme.Error || c.Yellow() != ui.DarkTheme.Warning || c.Reset() != ui.DarkTheme.Reset {
		t.Error("CLIColorProvider does not follow the active theme")
	}
}
