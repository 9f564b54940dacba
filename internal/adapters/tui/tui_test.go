package tui

// Key-flow tests for the cooking session Model. Each test exercises a
// complete user interaction so regressions in key dispatch, guard
// conditions, or callback wiring fail fast here.

import (
	"strings"
	"testing"

	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
	"github.com/mgaillard/souschef/internal/services"
)

func activeSnapshot() services.SessionSnapshot {
	return services.SessionSnapshot{
		Active:     true,
		RecipeName: "Coq au Vin",
		Servings:   4,
		Step:       domain.Step{Index: 1, Text: "Simmer in red wine", DurationMinutes: 90, Technique: "braise"},
		StepIndex:  1,
		StepCount:  3,
		Completed:  map[int]bool{0: true},
		Ingredients: []domain.Ingredient{
			{Name: "chicken thighs", Quantity: 8},
			{Name: "red wine", Quantity: 750, Unit: "ml"},
		},
		CompletedCount: 1,
		Progress:       1.0 / 3.0,
	}
}

func snapshotWithTimer(state domain.TimerState) services.SessionSnapshot {
	snap := activeSnapshot()
	snap.Timer = &services.TimerSnapshot{
		State:            state,
		RemainingSeconds: 90,
		TotalSeconds:     5400,
		Clock:            "01:30",
	}
	return snap
}

// commandTracker records which commands were sent via the callback.
func commandTracker() (func(ports.SessionCommand) error, *[]ports.SessionCommand) {
	var cmds []ports.SessionCommand
	return func(cmd ports.SessionCommand) error {
		cmds = append(cmds, cmd)
		return nil
	}, &cmds
}

func newTestModel(snap services.SessionSnapshot) (Model, *[]ports.SessionCommand) {
	cb, cmds := commandTracker()
	m := NewModel(snap, nil)
	m.width = 80
	m.height = 24
	m.commandCallback = cb
	return m, cmds
}

func TestModel_NextKeysSendCommand(t *testing.T) {
	for _, k := range []string{"right", " ", "enter", "n"} {
		m, cmds := newTestModel(activeSnapshot())
		m.Update(keyMsg(k))
		if len(*cmds) != 1 || (*cmds)[0] != ports.CmdNextStep {
			t.Errorf("key %q sent %v, want [CmdNextStep]", k, *cmds)
		}
	}
}

func TestModel_PrevKeySendsCommand(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())
	m.Update(keyMsg("left"))
	if len(*cmds) != 1 || (*cmds)[0] != ports.CmdPrevStep {
		t.Errorf("left sent %v, want [CmdPrevStep]", *cmds)
	}
}

func TestModel_TimerKeys(t *testing.T) {
	t.Run("t starts timer", func(t *testing.T) {
		m, cmds := newTestModel(activeSnapshot())
		m.Update(keyMsg("t"))
		if len(*cmds) != 1 || (*cmds)[0] != ports.CmdStartTimer {
			t.Errorf("t sent %v, want [CmdStartTimer]", *cmds)
		}
	})

	t.Run("p pauses a running timer", func(t *testing.T) {
		m, cmds := newTestModel(snapshotWithTimer(domain.TimerRunning))
		m.Update(keyMsg("p"))
		if len(*cmds) != 1 || (*cmds)[0] != ports.CmdPauseTimer {
			t.Errorf("p sent %v, want [CmdPauseTimer]", *cmds)
		}
	})

	t.Run("p resumes a paused timer", func(t *testing.T) {
		m, cmds := newTestModel(snapshotWithTimer(domain.TimerPaused))
		m.Update(keyMsg("p"))
		if len(*cmds) != 1 || (*cmds)[0] != ports.CmdResumeTimer {
			t.Errorf("p sent %v, want [CmdResumeTimer]", *cmds)
		}
	})

	t.Run("r resets", func(t *testing.T) {
		m, cmds := newTestModel(snapshotWithTimer(domain.TimerRunning))
		m.Update(keyMsg("r"))
		if len(*cmds) != 1 || (*cmds)[0] != ports.CmdResetTimer {
			t.Errorf("r sent %v, want [CmdResetTimer]", *cmds)
		}
	})
}

func TestModel_FinishRequiresConfirm(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())

	result, _ := m.Update(keyMsg("f"))
	updated := result.(Model)
	if !updated.confirmFinish {
		t.Error("first [f] press should set confirmFinish")
	}
	if len(*cmds) != 0 {
		t.Errorf("first [f] press sent %v, want nothing", *cmds)
	}

	result, _ = updated.Update(keyMsg("f"))
	updated = result.(Model)
	if len(*cmds) != 1 || (*cmds)[0] != ports.CmdFinish {
		t.Errorf("second [f] press sent %v, want [CmdFinish]", *cmds)
	}
	if !updated.finished {
		t.Error("model should be finished after confirmed [f]")
	}
}

func TestModel_FinishConfirmCancelledByOtherKey(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())
	m.confirmFinish = true

	result, _ := m.Update(keyMsg("x"))
	updated := result.(Model)
	if updated.confirmFinish {
		t.Error("any other key should cancel the finish confirm")
	}
	if len(*cmds) != 1 || (*cmds)[0] != ports.CmdToggleStep {
		t.Errorf("x sent %v, want [CmdToggleStep]", *cmds)
	}
}

func TestModel_QuitRequiresConfirm(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())

	result, _ := m.Update(keyMsg("q"))
	updated := result.(Model)
	if !updated.confirmExit {
		t.Error("first [q] press should set confirmExit")
	}

	_, cmd := updated.Update(keyMsg("q"))
	if len(*cmds) != 1 || (*cmds)[0] != ports.CmdExit {
		t.Errorf("second [q] press sent %v, want [CmdExit]", *cmds)
	}
	if cmd == nil {
		t.Error("confirmed quit should return tea.Quit")
	}
}

func TestModel_CtrlCQuitsImmediately(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())

	_, cmd := m.Update(keyMsg("ctrl+c"))
	if len(*cmds) != 1 || (*cmds)[0] != ports.CmdExit {
		t.Errorf("ctrl+c sent %v, want [CmdExit]", *cmds)
	}
	if cmd == nil {
		t.Error("ctrl+c should return tea.Quit without confirm")
	}
}

func TestModel_DigitJumpsToStep(t *testing.T) {
	m, _ := newTestModel(activeSnapshot())
	var jumped []int
	m.jumpCallback = func(i int) error {
		jumped = append(jumped, i)
		return nil
	}

	m.Update(keyMsg("3"))
	if len(jumped) != 1 || jumped[0] != 2 {
		t.Errorf("pressing 3 jumped to %v, want [2]", jumped)
	}
}

func TestModel_IngredientsToggle(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())

	result, _ := m.Update(keyMsg("i"))
	updated := result.(Model)
	if !updated.showIngredients {
		t.Error("[i] should show the ingredients panel")
	}
	if len(*cmds) != 0 {
		t.Errorf("[i] sent %v, want nothing", *cmds)
	}

	view := updated.View()
	if !strings.Contains(view, "chicken thighs") {
		t.Error("View should list ingredients when the panel is open")
	}

	result, _ = updated.Update(keyMsg("i"))
	if result.(Model).showIngredients {
		t.Error("second [i] should hide the panel again")
	}
}

func TestModel_ViewShowsStepAndProgress(t *testing.T) {
	m, _ := newTestModel(activeSnapshot())
	view := m.View()

	if !strings.Contains(view, "Coq au Vin") {
		t.Error("View should show the recipe name")
	}
	if !strings.Contains(view, "Step 2 of 3") {
		t.Error("View should show the step position")
	}
	if !strings.Contains(view, "Simmer in red wine") {
		t.Error("View should show the step text")
	}
	if !strings.Contains(view, "braise") {
		t.Error("View should show the technique")
	}
}

func TestModel_ViewShowsPausedBadge(t *testing.T) {
	m, _ := newTestModel(snapshotWithTimer(domain.TimerPaused))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View should show the paused badge")
	}
}

func TestModel_ViewShowsExpiredBadge(t *testing.T) {
	snap := snapshotWithTimer(domain.TimerExpired)
	snap.Timer.RemainingSeconds = 0
	snap.Timer.Clock = "00:00"
	m, _ := newTestModel(snap)
	if !strings.Contains(m.View(), "TIMER DONE") {
		t.Error("View should show the expired badge")
	}
}

func TestModel_SessionEndingShowsSummary(t *testing.T) {
	m, _ := newTestModel(activeSnapshot())

	result, _ := m.Update(stateMsg{snap: services.SessionSnapshot{}})
	updated := result.(Model)
	if !updated.finished {
		t.Error("an inactive snapshot should land on the summary screen")
	}
	if !strings.Contains(updated.View(), "Bon appétit") {
		t.Error("summary screen should be shown")
	}

	_, cmd := updated.Update(keyMsg("x"))
	if cmd == nil {
		t.Error("any key on the summary screen should quit")
	}
}

func TestModel_KeysIgnoredAfterFinish(t *testing.T) {
	m, cmds := newTestModel(activeSnapshot())
	m.finished = true

	m.Update(keyMsg("t"))
	if len(*cmds) != 0 {
		t.Errorf("keys after finish sent %v, want nothing", *cmds)
	}
}
