package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgaillard/souschef/internal/ports"
)

// Action is the interpreted result of one key press. Jump carries the
// target step index for digit keys; Command covers everything else.
type Action struct {
	Command ports.SessionCommand
	Jump    int
	HasJump bool
}

// Translate maps a key press to a session command. It is a pure lookup:
// no state lives here, and every unbound key maps to CmdNone. The "p"
// key toggles between pause and resume based on whether the countdown is
// currently running.
func Translate(msg tea.KeyMsg, timerRunning bool) Action {
	switch msg.String() {
	case "right", " ", "enter", "n":
		return Action{Command: ports.CmdNextStep}
	case "left", "b":
		return Action{Command: ports.CmdPrevStep}
	case "x":
		return Action{Command: ports.CmdToggleStep}
	case "t":
		return Action{Command: ports.CmdStartTimer}
	case "p":
		if timerRunning {
			return Action{Command: ports.CmdPauseTimer}
		}
		return Action{Command: ports.CmdResumeTimer}
	case "r":
		return Action{Command: ports.CmdResetTimer}
	case "f":
		return Action{Command: ports.CmdFinish}
	case "q", "esc", "ctrl+c":
		return Action{Command: ports.CmdExit}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Keys are 1-based; steps are 0-based.
		return Action{Jump: int(msg.String()[0] - '1'), HasJump: true}
	}
	return Action{Command: ports.CmdNone}
}
