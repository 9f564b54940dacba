package services

import "github.com/mgaillard/souschef/internal/domain"

// TimerSnapshot is a copy of the countdown state for rendering.
type TimerSnapshot struct {
	State            domain.TimerState
	RemainingSeconds int
	TotalSeconds     int
	Clock            string
}

// SessionSnapshot is a consistent, read-only copy of the session taken
// under the service lock. The display layer polls it once per render tick
// and never mutates session state through it.
type SessionSnapshot struct {
	Active         bool
	RecipeName     string
	Servings       int
	Ingredients    []domain.Ingredient
	Step           domain.Step
	StepIndex      int
	StepCount      int
	Completed      map[int]bool
	CompletedCount int
	Progress       float64
	Complete       bool
	Timer          *TimerSnapshot
}

// Snapshot returns the current session state, or an inactive snapshot
// when no session is in progress.
func (s *SessionService) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return SessionSnapshot{}
	}

	session := s.session
	snap := SessionSnapshot{
		Active:         true,
		RecipeName:     session.Recipe.Name,
		Servings:       session.Recipe.Servings,
		Ingredients:    session.Recipe.Ingredients,
		Step:           session.Step(),
		StepIndex:      session.CurrentStep,
		StepCount:      session.StepCount(),
		Completed:      make(map[int]bool, len(session.Completed)),
		CompletedCount: session.CompletedCount(),
		Progress:       session.Progress(),
		Complete:       session.IsComplete(),
	}
	for i := range session.Completed {
		snap.Completed[i] = true
	}

	if t := session.Timer; t != nil {
		snap.Timer = &TimerSnapshot{
			State:            t.State,
			RemainingSeconds: t.RemainingSeconds,
			TotalSeconds:     t.TotalSeconds,
			Clock:            t.Clock(),
		}
	}
	return snap
}
