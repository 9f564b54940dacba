package services

import (
	"sync"
	"time"

	"github.com/mgaillard/souschef/internal/domain"
	"github.com/mgaillard/souschef/internal/ports"
)

// SessionService drives one cooking session at a time. It owns the mutable
// CookSession, arms the per-second countdown tick through the scheduler,
// and holds the wake lock for exactly the session's lifetime.
//
// All mutation happens under one mutex. The scheduled tick is the only
// spontaneous mutation source; every tick carries the timer generation it
// was armed for, and navigation, reset, pause, and exit bump the generation
// so an in-flight stale tick drops itself instead of touching a timer that
// has been replaced or cleared. Commands therefore always win over ticks.
type SessionService struct {
	mu        sync.Mutex
	scheduler ports.TickScheduler
	wakeLock  ports.WakeLock
	notifier  ports.Notifier

	session    *domain.CookSession
	tickGen    uint64
	cancelTick func()
	deadline   time.Time
}

// NewSessionService creates a session service over the given collaborators.
func NewSessionService(scheduler ports.TickScheduler, wakeLock ports.WakeLock, notifier ports.Notifier) *SessionService {
	return &SessionService{
		scheduler: scheduler,
		wakeLock:  wakeLock,
		notifier:  notifier,
	}
}

// Start begins a session for the recipe, replacing any session in
// progress. Fails with domain.ErrNoSteps on a recipe without steps and
// leaves any current session untouched in that case. The wake lock is
// requested best-effort; Start never blocks on it.
func (s *SessionService) Start(recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := domain.NewCookSession(recipe)
	if err != nil {
		return err
	}

	s.dropPendingTick()
	s.session = session
	s.wakeLock.Acquire()
	return nil
}

// NextStep completes the current step and advances, clearing (not
// pausing) any countdown. Silent no-op at the last step: nothing moves
// and a running countdown keeps ticking.
func (s *SessionService) NextStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	if s.session.CurrentStep >= s.session.StepCount()-1 {
		return nil
	}
	s.dropPendingTick()
	s.session.Advance()
	return nil
}

// PrevStep moves back one step without un-completing anything, clearing
// any countdown. Silent no-op at step 0: nothing moves and a running
// countdown keeps ticking.
func (s *SessionService) PrevStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	if s.session.CurrentStep == 0 {
		return nil
	}
	s.dropPendingTick()
	s.session.Retreat()
	return nil
}

// JumpTo moves directly to a step. Out-of-range indices fail with
// domain.ErrStepOutOfRange and leave the session untouched, countdown
// included.
func (s *SessionService) JumpTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	if err := s.session.JumpTo(index); err != nil {
		return err
	}
	s.dropPendingTick()
	return nil
}

// ToggleStep flips a step's completion mark without moving or touching
// the countdown.
func (s *SessionService) ToggleStep(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	return s.session.ToggleComplete(index)
}

// StartStepTimer starts the countdown declared by the current step.
// Fails with domain.ErrStepHasNoTimer when the step has no duration.
func (s *SessionService) StartStepTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	step := s.session.Step()
	if !step.HasTimer() {
		return domain.ErrStepHasNoTimer
	}

	timer, err := domain.NewStepTimer(step.DurationMinutes * 60)
	if err != nil {
		return err
	}

	s.dropPendingTick()
	s.session.Timer = timer
	s.deadline = time.Now().Add(time.Second)
	s.armTick()
	return nil
}

// PauseTimer freezes a running countdown. No-op without one.
func (s *SessionService) PauseTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	if s.session.Timer == nil {
		return nil
	}
	s.session.Timer.Pause()
	s.dropPendingTick()
	return nil
}

// ResumeTimer continues a paused countdown from its frozen remaining
// value. The next tick is re-armed one full second out, so time spent
// paused never drifts into the countdown. No-op without a paused timer.
func (s *SessionService) ResumeTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	timer := s.session.Timer
	if timer == nil || timer.State != domain.TimerPaused {
		return nil
	}
	timer.Resume()
	s.dropPendingTick()
	s.deadline = time.Now().Add(time.Second)
	s.armTick()
	return nil
}

// ResetTimer restores the countdown to its full duration, stopped.
// No-op without a timer.
func (s *SessionService) ResetTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoActiveSession
	}
	if s.session.Timer == nil {
		return nil
	}
	s.session.Timer.Reset()
	s.dropPendingTick()
	return nil
}

// Finish marks the current step done and ends the session, releasing
// the wake lock. Idempotent.
func (s *SessionService) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}
	s.session.MarkCurrentComplete()
	s.teardown()
}

// Exit abandons the session without requiring completion, releasing the
// wake lock. Idempotent; called on every exit path.
func (s *SessionService) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}
	s.teardown()
}

// Active reports whether a session is in progress.
func (s *SessionService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// Apply executes one dispatched session command. Unknown or empty
// commands are ignored.
func (s *SessionService) Apply(cmd ports.SessionCommand) error {
	switch cmd {
	case ports.CmdNextStep:
		return s.NextStep()
	case ports.CmdPrevStep:
		return s.PrevStep()
	case ports.CmdToggleStep:
		s.mu.Lock()
		session := s.session
		s.mu.Unlock()
		if session == nil {
			return domain.ErrNoActiveSession
		}
		return s.ToggleStep(session.CurrentStep)
	case ports.CmdStartTimer:
		return s.StartStepTimer()
	case ports.CmdPauseTimer:
		return s.PauseTimer()
	case ports.CmdResumeTimer:
		return s.ResumeTimer()
	case ports.CmdResetTimer:
		return s.ResetTimer()
	case ports.CmdFinish:
		s.Finish()
		return nil
	case ports.CmdExit:
		s.Exit()
		return nil
	default:
		return nil
	}
}

// dropPendingTick cancels any scheduled tick and invalidates in-flight
// ones. Callers must hold the mutex.
func (s *SessionService) dropPendingTick() {
	s.tickGen++
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
}

// armTick schedules the next countdown decrement against the stored
// wall-clock deadline. Callers must hold the mutex.
func (s *SessionService) armTick() {
	gen := s.tickGen
	d := time.Until(s.deadline)
	if d < 0 {
		d = 0
	}
	s.cancelTick = s.scheduler.Schedule(d, func() {
		s.tick(gen)
	})
}

// tick consumes one countdown second. Ticks armed before the timer was
// replaced or cleared carry a stale generation and are dropped.
func (s *SessionService) tick(gen uint64) {
	s.mu.Lock()

	if s.session == nil || gen != s.tickGen {
		s.mu.Unlock()
		return
	}
	timer := s.session.Timer
	if timer == nil || !timer.Running() {
		s.mu.Unlock()
		return
	}

	expired := timer.Tick()
	if !expired {
		s.deadline = s.deadline.Add(time.Second)
		s.armTick()
		s.mu.Unlock()
		return
	}

	recipeName := s.session.Recipe.Name
	stepText := s.session.Step().Text
	s.cancelTick = nil
	s.mu.Unlock()

	// Expiry cue is best-effort and must never block the session, so it
	// runs outside the lock.
	s.notifier.TimerExpired(recipeName, stepText)
}

// teardown ends the session and releases the wake lock. Callers must
// hold the mutex.
func (s *SessionService) teardown() {
	s.dropPendingTick()
	s.session = nil
	s.wakeLock.Release()
}
