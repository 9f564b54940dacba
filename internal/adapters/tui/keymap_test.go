package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaillard/souschef/internal/ports"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTranslate_Commands(t *testing.T) {
	tests := []struct {
		key  string
		want ports.SessionCommand
	}{
		{"right", ports.CmdNextStep},
		{" ", ports.CmdNextStep},
		{"enter", ports.CmdNextStep},
		{"n", ports.CmdNextStep},
		{"left", ports.CmdPrevStep},
		{"b", ports.CmdPrevStep},
		{"x", ports.CmdToggleStep},
		{"t", ports.CmdStartTimer},
		{"r", ports.CmdResetTimer},
		{"f", ports.CmdFinish},
		{"q", ports.CmdExit},
		{"esc", ports.CmdExit},
		{"ctrl+c", ports.CmdExit},
		{"z", ports.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action := Translate(keyMsg(tt.key), false)
			if action.Command != tt.want {
				t.Errorf("Translate(%q) = %v, want %v", tt.key, action.Command, tt.want)
			}
			if action.HasJump {
				t.Errorf("Translate(%q) should not carry a jump target", tt.key)
			}
		})
	}
}

func TestTranslate_PauseToggle(t *testing.T) {
	if got := Translate(keyMsg("p"), true).Command; got != ports.CmdPauseTimer {
		t.Errorf("p with running timer = %v, want CmdPauseTimer", got)
	}
	if got := Translate(keyMsg("p"), false).Command; got != ports.CmdResumeTimer {
		t.Errorf("p with stopped timer = %v, want CmdResumeTimer", got)
	}
}

func TestTranslate_DigitJump(t *testing.T) {
	for i, key := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		action := Translate(keyMsg(key), false)
		if !action.HasJump {
			t.Fatalf("Translate(%q) should carry a jump target", key)
		}
		if action.Jump != i {
			t.Errorf("Translate(%q).Jump = %d, want %d", key, action.Jump, i)
		}
		if action.Command != ports.CmdNone {
			t.Errorf("Translate(%q).Command = %v, want CmdNone", key, action.Command)
		}
	}
}
