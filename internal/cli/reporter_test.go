package cli

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLineReporter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewLineReporter(&buf)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(ordinal int) {
			defer wg.Done()
			if err := r.ReportDone(ordinal); err != nil {
				t.Errorf("ReportDone(%d): %v", ordinal, err)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d", len(lines), n)
	}
	sort.Strings(lines)
	seen := make(map[string]bool, n)
	for _, line := range lines {
		if !strings.HasSuffix(line, " is done") {
			t.Errorf("malformed line %q", line)
		}
		if seen[line] {
			t.Errorf("duplicate line %q", line)
		}
		seen[line] = true
	}
	if !seen["0 is done"] || !seen["49 is done"] {
		t.Error("missing first or last ordinal")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestLineReporter_WriteError(t *testing.T) {
	t.Parallel()
	r := NewLineReporter(failingWriter{})
	if err := r.ReportDone(7); err == nil {
		t.Error("expected the write error to be returned")
	}
}

func TestDisplayElapsed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{2*time.Second + 3181*time.Microsecond, "Took: 2.003181\n"},
		{0, "Took: 0\n"},
		{40 * time.Microsecond, "Took: 0.00004\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := DisplayElapsed(&buf, tt.in); err != nil {
			t.Fatalf("DisplayElapsed: %v", err)
		}
		if buf.String() != tt.want {
			t.Errorf("DisplayElapsed(%v) wrote %q, want %q", tt.in, buf.String(), tt.want)
		}
	}
}
