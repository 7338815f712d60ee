package apperrors

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("unknown log level %q", "loud"),
			expected: `unknown log level "loud"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var configErr ConfigError
			if !errors.As(tt.err, &configErr) {
				t.Error("expected error to be ConfigError type")
			}
		})
	}
}

func TestUnitError(t *testing.T) {
	t.Parallel()
	cause := io.ErrClosedPipe
	var err error = &UnitError{Ordinal: 12, Cause: cause}

	if got, want := err.Error(), "unit 12: io: read/write on closed pipe"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("errors.Is should find the cause through UnitError")
	}
	wrapped := WrapError(err, "fan-out")
	var unitErr *UnitError
	if !errors.As(wrapped, &unitErr) || unitErr.Ordinal != 12 {
		t.Errorf("errors.As should recover the UnitError, got %v", unitErr)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})
	t.Run("message is prefixed", func(t *testing.T) {
		t.Parallel()
		base := errors.New("boom")
		err := WrapError(base, "launch %d units", 80)
		if err.Error() != "launch 80 units: boom" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should match base with errors.Is")
		}
	})
}

func TestHandleRunError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"unit error", &UnitError{Ordinal: 3, Cause: errors.New("broken pipe")}, ExitErrorGeneric, "Unit 3 failed: broken pipe"},
		{"config error", NewConfigError("bad pause"), ExitErrorConfig, "Configuration error: bad pause"},
		{"wrapped config error", WrapError(NewConfigError("bad"), "parse"), ExitErrorConfig, "Configuration error: bad"},
		{"generic error", errors.New("metrics file unwritable"), ExitErrorGeneric, "Error: metrics file unwritable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleRunError(tt.err, &buf, plainColors{})
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut == "" && buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q should contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}
