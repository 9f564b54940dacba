package ports

import "time"

// SessionCommand represents a user action during a cooking session.
// The input layer translates raw key and pointer events into these
// commands; the session service is the only interpreter.
type SessionCommand string

const (
	// CmdNextStep advances to the next step, completing the current one.
	CmdNextStep SessionCommand = "next_step"

	// CmdPrevStep moves back one step.
	CmdPrevStep SessionCommand = "prev_step"

	// CmdToggleStep flips the current step's completion mark.
	CmdToggleStep SessionCommand = "toggle_step"

	// CmdStartTimer starts the current step's countdown.
	CmdStartTimer SessionCommand = "start_timer"

	// CmdPauseTimer pauses a running countdown.
	CmdPauseTimer SessionCommand = "pause_timer"

	// CmdResumeTimer resumes a paused countdown.
	CmdResumeTimer SessionCommand = "resume_timer"

	// CmdResetTimer restores the countdown to its full duration, stopped.
	CmdResetTimer SessionCommand = "reset_timer"

	// CmdFinish marks the current step done and ends the session.
	CmdFinish SessionCommand = "finish"

	// CmdExit abandons the session.
	CmdExit SessionCommand = "exit"

	// CmdNone is returned for input that maps to nothing.
	CmdNone SessionCommand = ""
)

// TickScheduler arms cancellable one-shot callbacks. It is the only
// source of spontaneous (non-input-driven) session mutation: the session
// service re-arms one tick per second against wall-clock deadlines and
// cancels the pending tick on navigation, reset, or exit.
// This is a driven port (implemented by adapters).
type TickScheduler interface {
	// Schedule runs fn once after d has elapsed. The returned function
	// cancels the callback; cancelling after the callback ran is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// WakeLock keeps the display awake for the duration of a session.
// Both operations are idempotent and best-effort: acquisition may resolve
// asynchronously or not at all, and neither failure is ever surfaced to
// the session. This is a driven port (implemented by adapters).
type WakeLock interface {
	// Acquire requests the idle inhibitor. Calling while held is a no-op.
	Acquire()

	// Release drops the inhibitor. Safe to call when nothing is held; a
	// grant that lands after Release is torn down on arrival.
	Release()
}

// Notifier emits the best-effort cue when a step timer expires.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// TimerExpired announces that the countdown for stepText finished.
	// Failures are swallowed by the implementation.
	TimerExpired(recipeName, stepText string)
}
