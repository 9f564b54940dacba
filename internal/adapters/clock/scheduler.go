// Package clock provides the wall-clock tick scheduler.
package clock

import (
	"time"

	"github.com/mgaillard/souschef/internal/ports"
)

// Scheduler arms one-shot callbacks on the runtime timer heap.
type Scheduler struct{}

// New creates a wall-clock scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Schedule runs fn once after d. The returned cancel stops the callback
// if it has not fired yet.
func (s *Scheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Ensure Scheduler implements ports.TickScheduler.
var _ ports.TickScheduler = (*Scheduler)(nil)
