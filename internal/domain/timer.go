package domain

import "fmt"

// TimerState represents the lifecycle state of a step timer.
type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
	TimerExpired TimerState = "expired"
)

// StepTimer is a single-slot countdown. It holds no goroutines and no clock;
// the owner feeds it Tick once per elapsed second and reacts to the returned
// expiry signal. At most one StepTimer exists per session, replaced whenever
// the current step changes.
type StepTimer struct {
	TotalSeconds     int
	RemainingSeconds int
	State            TimerState
}

// NewStepTimer creates a running countdown of totalSeconds.
func NewStepTimer(totalSeconds int) (*StepTimer, error) {
	if totalSeconds <= 0 {
		return nil, ErrBadTimerDuration
	}
	return &StepTimer{
		TotalSeconds:     totalSeconds,
		RemainingSeconds: totalSeconds,
		State:            TimerRunning,
	}, nil
}

// Pause freezes the countdown. No-op unless running.
func (t *StepTimer) Pause() {
	if t.State != TimerRunning {
		return
	}
	t.State = TimerPaused
}

// Resume continues a paused countdown from its frozen remaining value.
func (t *StepTimer) Resume() {
	if t.State != TimerPaused {
		return
	}
	t.State = TimerRunning
}

// Reset restores the full duration and stops the countdown.
func (t *StepTimer) Reset() {
	t.RemainingSeconds = t.TotalSeconds
	t.State = TimerIdle
}

// Tick consumes one elapsed second. It returns true exactly once, on the
// tick that drives the countdown to zero. Ticks in any state other than
// running are dropped.
func (t *StepTimer) Tick() (expired bool) {
	if t.State != TimerRunning {
		return false
	}
	t.RemainingSeconds--
	if t.RemainingSeconds <= 0 {
		t.RemainingSeconds = 0
		t.State = TimerExpired
		return true
	}
	return false
}

// Running reports whether the countdown is actively decrementing.
func (t *StepTimer) Running() bool {
	return t.State == TimerRunning
}

// Clock renders the remaining time as MM:SS.
func (t *StepTimer) Clock() string {
	return FormatClock(t.RemainingSeconds)
}

// FormatClock renders a second count as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
