package ui

import (
	"os"
	"testing"
)

// Tests in this file mutate the package-level theme and must not run in parallel.

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"neon", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if ColorRed() != "" || ColorReset() != "" {
			t.Error("expected empty escape codes with noColor")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
		if GetCurrentPalette() != NoColorPalette {
			t.Error("expected NoColorPalette when NO_COLOR is set")
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("theme = %q, want dark", got)
		}
		if ColorGreen() != DarkTheme.Success {
			t.Errorf("ColorGreen() = %q, want %q", ColorGreen(), DarkTheme.Success)
		}
		if GetCurrentPalette() != DarkPalette {
			t.Error("expected DarkPalette for the dark theme")
		}
	})
}
