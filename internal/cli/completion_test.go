package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _fanwait_completions fanwait", "-n|--units)", "--metrics-file)", `compgen -W "bash zsh fish"`}},
		{"zsh", []string{"#compdef fanwait", "'(-p --pause)'{-p,--pause}'[Pause of each unit]:duration:(100ms 500ms 1s 2s)'", "'--metrics-file[Write run metrics to a file]:file:_files'"}},
		{"fish", []string{"complete -c fanwait -f", "complete -c fanwait -s n -l units", "-l metrics-file -d 'Write run metrics to a file' -rF"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q): %v", tt.shell, err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("%s script missing %q", tt.shell, s)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "powershell")
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Fatalf("expected unsupported shell error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

func TestFlagRegistryConsistency(t *testing.T) {
	t.Parallel()
	for _, f := range flagRegistry {
		if f.IsFile && len(f.Values) > 0 {
			t.Errorf("flag %q is both a file and a value list", f.Long)
		}
	}
}
