// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgaillard/souschef/internal/config"
	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
	"github.com/mgaillard/souschef/internal/services"
	"github.com/mgaillard/souschef/internal/technique"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// tickMsg is sent on every render tick.
type tickMsg time.Time

// stateMsg wraps an updated snapshot fetched asynchronously.
type stateMsg struct {
	snap services.SessionSnapshot
}

// Model represents the cooking session TUI state. It renders snapshots
// and forwards key presses as commands; all session rules live behind
// the command callback.
type Model struct {
	snap     services.SessionSnapshot
	progress progress.Model
	width    int
	height   int

	finished        bool
	confirmFinish   bool
	confirmExit     bool
	showIngredients bool

	fetchState      func() services.SessionSnapshot
	commandCallback func(ports.SessionCommand) error
	jumpCallback    func(int) error

	theme config.ThemeConfig
}

// NewModel creates a new cooking session TUI model.
func NewModel(initial services.SessionSnapshot, theme *config.ThemeConfig) Model {
	return Model{
		snap:     initial,
		progress: progress.New(progress.WithDefaultGradient()),
		theme:    resolveTheme(theme),
	}
}

// SetCallbacks wires the model to the session service.
func (m *Model) SetCallbacks(
	fetch func() services.SessionSnapshot,
	command func(ports.SessionCommand) error,
	jump func(int) error,
) {
	m.fetchState = fetch
	m.commandCallback = command
	m.jumpCallback = jump
}

// Finished reports whether the session ended through finish rather than
// quit. Read by the caller after the program exits.
func (m Model) Finished() bool {
	return m.finished
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// fetchStateCmd returns a tea.Cmd that fetches a snapshot asynchronously.
func fetchStateCmd(fetch func() services.SessionSnapshot) tea.Cmd {
	return func() tea.Msg {
		return stateMsg{snap: fetch()}
	}
}

// timerRunning reports whether the snapshot's countdown is ticking.
func (m Model) timerRunning() bool {
	return m.snap.Timer != nil && m.snap.Timer.State == domain.TimerRunning
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.finished {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if m.fetchState != nil {
			cmds = append(cmds, fetchStateCmd(m.fetchState))
		}
		return m, tea.Batch(cmds...)

	case stateMsg:
		// The session ending under us (finish or exit through another
		// path) turns the snapshot inactive; land on the summary screen.
		if m.snap.Active && !msg.snap.Active && !m.finished {
			m.finished = true
			return m, nil
		}
		if msg.snap.Active {
			m.snap = msg.snap
		}
	}

	var cmd tea.Cmd
	newProgress, cmd := m.progress.Update(msg)
	if p, ok := newProgress.(progress.Model); ok {
		m.progress = p
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Ingredients panel is display-only state; it never touches the session.
	if key == "i" {
		m.showIngredients = !m.showIngredients
		m.confirmFinish = false
		m.confirmExit = false
		return m, nil
	}

	action := Translate(msg, m.timerRunning())

	switch action.Command {
	case ports.CmdFinish:
		if !m.confirmFinish {
			m.confirmFinish = true
			m.confirmExit = false
			return m, nil
		}
		m.confirmFinish = false
		if m.commandCallback != nil {
			_ = m.commandCallback(ports.CmdFinish)
		}
		m.finished = true
		return m, nil

	case ports.CmdExit:
		if key == "ctrl+c" || m.confirmExit {
			if m.commandCallback != nil {
				_ = m.commandCallback(ports.CmdExit)
			}
			return m, tea.Quit
		}
		m.confirmExit = true
		m.confirmFinish = false
		return m, nil

	case ports.CmdNone:
		if action.HasJump {
			m.confirmFinish = false
			m.confirmExit = false
			if m.jumpCallback != nil {
				_ = m.jumpCallback(action.Jump)
			}
			if m.fetchState != nil {
				return m, fetchStateCmd(m.fetchState)
			}
			return m, nil
		}
		m.confirmFinish = false
		m.confirmExit = false
		return m, nil

	default:
		m.confirmFinish = false
		m.confirmExit = false
		if m.commandCallback != nil {
			_ = m.commandCallback(action.Command)
		}
		if m.fetchState != nil {
			return m, fetchStateCmd(m.fetchState)
		}
		return m, nil
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.finished {
		return m.viewFinished()
	}
	if !m.snap.Active {
		return ""
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s %s", m.theme.IconApp, m.snap.RecipeName)))

	sections = m.viewStep(sections)

	if m.snap.Timer != nil {
		sections = m.viewTimer(sections)
	}

	if m.showIngredients {
		sections = m.viewIngredients(sections)
	}

	sections = m.viewProgress(sections)
	sections = m.viewHelp(sections)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewStep(sections []string) []string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))
	stepStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.ColorStep)).
		Width(min(m.width-8, 64))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorDone))

	header := fmt.Sprintf("Step %d of %d", m.snap.StepIndex+1, m.snap.StepCount)
	if m.snap.Completed[m.snap.StepIndex] {
		header += " " + doneStyle.Render(m.theme.IconDone)
	}
	sections = append(sections, headerStyle.Render(header))

	sections = append(sections, "")
	sections = append(sections, stepStyle.Render(m.snap.Step.Text))

	if m.snap.Step.Technique != "" {
		techStyle := lipgloss.NewStyle().Italic(true).Faint(true)
		prof := technique.ForName(m.snap.Step.Technique)
		sections = append(sections, techStyle.Render("Technique: "+prof.Name()))
		if hint := prof.Hint(); hint != "" {
			sections = append(sections, techStyle.Render(hint))
		}
	}

	if m.snap.Step.HasTimer() && m.snap.Timer == nil {
		hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
		sections = append(sections, "")
		sections = append(sections, hintStyle.Render(fmt.Sprintf("%s %d min — press [t] to start the timer", m.theme.IconTimer, m.snap.Step.DurationMinutes)))
	}

	return sections
}

func (m Model) viewTimer(sections []string) []string {
	t := m.snap.Timer

	color := lipgloss.Color(m.theme.ColorTimer)
	switch t.State {
	case domain.TimerPaused, domain.TimerIdle:
		color = lipgloss.Color(m.theme.ColorPaused)
	case domain.TimerExpired:
		color = lipgloss.Color(m.theme.ColorDone)
	}

	sections = append(sections, "")
	sections = append(sections, renderBigClock(t.Clock, color, m.width))

	switch t.State {
	case domain.TimerPaused:
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		sections = append(sections, "")
		sections = append(sections, badge)
	case domain.TimerExpired:
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorDone)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s TIMER DONE", m.theme.IconDone))
		sections = append(sections, "")
		sections = append(sections, badge)
	}

	if t.TotalSeconds > 0 && t.State != domain.TimerExpired {
		pbar := progress.New(progress.WithGradient(m.theme.GradientStart, m.theme.GradientEnd))
		pbar.Width = m.width - 4
		elapsed := float64(t.TotalSeconds-t.RemainingSeconds) / float64(t.TotalSeconds)
		sections = append(sections, "")
		sections = append(sections, pbar.ViewAs(elapsed))
	}

	return sections
}

func (m Model) viewIngredients(sections []string) []string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	sections = append(sections, "")
	header := "Ingredients"
	if m.snap.Servings > 0 {
		header = fmt.Sprintf("Ingredients (serves %d)", m.snap.Servings)
	}
	sections = append(sections, titleStyle.Render(header))
	for _, ing := range m.snap.Ingredients {
		sections = append(sections, itemStyle.Render(fmt.Sprintf("%s %s", m.theme.IconIngredient, ing.Label())))
	}
	return sections
}

func (m Model) viewProgress(sections []string) []string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(m.snap.Progress))
	sections = append(sections, helpStyle.Render(fmt.Sprintf("%d of %d steps done", m.snap.CompletedCount, m.snap.StepCount)))
	return sections
}

func (m Model) viewHelp(sections []string) []string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	sections = append(sections, "")
	switch {
	case m.confirmFinish:
		sections = append(sections, helpStyle.Render("Finish cooking? [f] confirm · any other key cancels"))
	case m.confirmExit:
		sections = append(sections, helpStyle.Render("Leave the session? [q] confirm · any other key cancels"))
	default:
		help := "→/space next  ←  back  [x] done  [i]ngredients  [f]inish  [q]uit"
		if m.snap.Step.HasTimer() {
			if m.timerRunning() {
				help = "→/space next  [p]ause  [r]eset  [x] done  [i]ngredients  [f]inish  [q]uit"
			} else if m.snap.Timer != nil && m.snap.Timer.State == domain.TimerPaused {
				help = "→/space next  [p]resume  [r]eset  [x] done  [i]ngredients  [f]inish  [q]uit"
			} else {
				help = "[t]imer  →/space next  ←  back  [x] done  [i]ngredients  [f]inish  [q]uit"
			}
		}
		sections = append(sections, helpStyle.Render(help))
	}
	return sections
}

func (m Model) viewFinished() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorDone)).MarginBottom(1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render("🍽 Bon appétit!"))
	if m.snap.RecipeName != "" {
		sections = append(sections, helpStyle.Render(fmt.Sprintf("You cooked %s — %d of %d steps done.",
			m.snap.RecipeName, m.snap.CompletedCount, m.snap.StepCount)))
	}
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("Press any key to exit"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
