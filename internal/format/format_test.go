package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{2*time.Second + 3*time.Millisecond, "2.003s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"whole seconds", 2 * time.Second, "2"},
		{"fractional", 2*time.Second + 3181*time.Microsecond, "2.003181"},
		{"tiny stays decimal", 12 * time.Microsecond, "0.000012"},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatSeconds(tt.in); got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSpeedup(t *testing.T) {
	t.Parallel()
	if got := FormatSpeedup(160*time.Second, 2*time.Second); got != "80.0x" {
		t.Errorf("FormatSpeedup = %q, want 80.0x", got)
	}
	if got := FormatSpeedup(time.Second, 0); got != "n/a" {
		t.Errorf("FormatSpeedup with zero actual = %q, want n/a", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{3 << 20, "3.0 MiB"},
		{5 << 30, "5.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
