package cmd

import (
	"testing"

	"github.com/mgaillard/souschef/internal/domain"
)

func TestRootCmd_Basics(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "souschef" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "souschef")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Error("--db flag should be registered")
	}
	if rootCmd.PersistentFlags().Lookup("json") == nil {
		t.Error("--json flag should be registered")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"cook", "list", "show", "add", "remove", "export", "mcp"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q should be registered", name)
		}
	}
}

func TestGetDir(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/home/user/file.db", "/home/user"},
		{"file.db", "."},
		{"/file.db", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := getDir(tt.path); got != tt.expected {
				t.Errorf("getDir(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "12345", 5, "12345"},
		{"truncated", "a very long recipe name", 10, "a very lo…"},
		{"tiny width passes through", "abc", 1, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.s, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID() = %q, want %q", got, "01234567")
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, want %q", got, "abc")
	}
}

func TestStepLabel(t *testing.T) {
	plain := domain.Step{Text: "Season to taste"}
	if got := stepLabel(plain); got != "Season to taste" {
		t.Errorf("stepLabel() = %q", got)
	}

	timed := domain.Step{Text: "Simmer the sauce", DurationMinutes: 45}
	if got := stepLabel(timed); got != "Simmer the sauce (45 min)" {
		t.Errorf("stepLabel() = %q", got)
	}
}
