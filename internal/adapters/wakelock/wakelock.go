// Package wakelock keeps the display awake during a cooking session by
// holding a platform idle-inhibitor process. The lock is a convenience,
// not a correctness requirement: every failure is swallowed and the
// session carries on without it.
package wakelock

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/mgaillard/souschef/internal/ports"
)

// Inhibitor implements ports.WakeLock over an external inhibitor process
// (systemd-inhibit on Linux, caffeinate on macOS, nothing elsewhere).
// Acquisition is asynchronous: the process is started off the caller's
// goroutine, and a grant that lands after Release is killed on arrival
// instead of being leaked.
type Inhibitor struct {
	mu      sync.Mutex
	enabled bool
	want    bool
	proc    *exec.Cmd

	// newCommand is swappable for tests.
	newCommand func() *exec.Cmd
}

// New creates an inhibitor. When disabled every call is a no-op.
func New(enabled bool) *Inhibitor {
	return &Inhibitor{
		enabled:    enabled,
		newCommand: platformCommand,
	}
}

// Acquire requests the idle inhibitor. Idempotent: calling while already
// held or pending is a no-op. Never blocks on the grant.
func (i *Inhibitor) Acquire() {
	i.mu.Lock()
	if !i.enabled || i.want {
		i.mu.Unlock()
		return
	}
	i.want = true
	i.mu.Unlock()

	go i.spawn()
}

// Release drops the inhibitor. Idempotent and safe when nothing is held.
func (i *Inhibitor) Release() {
	i.mu.Lock()
	i.want = false
	proc := i.proc
	i.proc = nil
	i.mu.Unlock()

	kill(proc)
}

// Held reports whether an inhibitor process is currently attached.
func (i *Inhibitor) Held() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.proc != nil
}

func (i *Inhibitor) spawn() {
	cmd := i.newCommand()
	if cmd == nil {
		return
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: wake lock unavailable: %v\n", err)
		return
	}

	i.mu.Lock()
	if !i.want || i.proc != nil {
		// Released while the grant was in flight, or another grant
		// already landed; never track two processes.
		i.mu.Unlock()
		kill(cmd)
		return
	}
	i.proc = cmd
	i.mu.Unlock()
}

func kill(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
	go func() { _ = cmd.Wait() }()
}

// platformCommand returns the inhibitor process for the current OS, or
// nil when the platform has none.
func platformCommand() *exec.Cmd {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("systemd-inhibit",
			"--what=idle",
			"--who=souschef",
			"--why=cooking session in progress",
			"--mode=block",
			"sleep", "infinity")
	case "darwin":
		return exec.Command("caffeinate", "-d")
	default:
		return nil
	}
}

// Ensure Inhibitor implements ports.WakeLock.
var _ ports.WakeLock = (*Inhibitor)(nil)
