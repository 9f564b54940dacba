package domain

// CookSession is the mutable state of one guided walkthrough of a recipe.
// It is owned and mutated exclusively by the session service; everything
// else sees read-only snapshots. Sessions are never persisted; exiting
// loses all progress.
type CookSession struct {
	Recipe      *Recipe
	CurrentStep int
	Completed   map[int]bool
	Timer       *StepTimer
}

// NewCookSession starts a session at step 0 with nothing completed.
// The recipe must have at least one step.
func NewCookSession(recipe *Recipe) (*CookSession, error) {
	if recipe == nil || len(recipe.Steps) == 0 {
		return nil, ErrNoSteps
	}
	return &CookSession{
		Recipe:      recipe,
		CurrentStep: 0,
		Completed:   make(map[int]bool),
	}, nil
}

// StepCount returns the number of steps in the underlying recipe.
func (s *CookSession) StepCount() int {
	return len(s.Recipe.Steps)
}

// Step returns the currently displayed step.
func (s *CookSession) Step() Step {
	return s.Recipe.Steps[s.CurrentStep]
}

// Advance marks the current step completed and moves forward one step,
// dropping any timer. At the last step it is a silent no-op so the UI
// never needs its own boundary checks.
func (s *CookSession) Advance() {
	if s.CurrentStep >= s.StepCount()-1 {
		return
	}
	s.Completed[s.CurrentStep] = true
	s.CurrentStep++
	s.Timer = nil
}

// Retreat moves back one step, dropping any timer. Completion marks are
// monotonic: the step being left stays completed. No-op at step 0.
func (s *CookSession) Retreat() {
	if s.CurrentStep == 0 {
		return
	}
	s.CurrentStep--
	s.Timer = nil
}

// JumpTo moves directly to the given step, dropping any timer.
func (s *CookSession) JumpTo(index int) error {
	if index < 0 || index >= s.StepCount() {
		return ErrStepOutOfRange
	}
	s.CurrentStep = index
	s.Timer = nil
	return nil
}

// ToggleComplete flips the completion mark of any step without touching
// the current position or the timer. This is the out-of-order path.
func (s *CookSession) ToggleComplete(index int) error {
	if index < 0 || index >= s.StepCount() {
		return ErrStepOutOfRange
	}
	if s.Completed[index] {
		delete(s.Completed, index)
	} else {
		s.Completed[index] = true
	}
	return nil
}

// MarkCurrentComplete marks the current step done.
func (s *CookSession) MarkCurrentComplete() {
	s.Completed[s.CurrentStep] = true
}

// CompletedCount returns the number of completed steps.
func (s *CookSession) CompletedCount() int {
	return len(s.Completed)
}

// Progress returns the completed fraction in [0, 1].
func (s *CookSession) Progress() float64 {
	return float64(len(s.Completed)) / float64(s.StepCount())
}

// IsComplete reports whether every step has been marked done. Complete is
// advisory, not terminal: the session keeps accepting navigation and it is
// the caller's decision when to finish.
func (s *CookSession) IsComplete() bool {
	return len(s.Completed) == s.StepCount()
}
