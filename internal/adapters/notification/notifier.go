// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"os"

	"github.com/gen2brain/beeep"

	"github.com/mgaillard/souschef/internal/config"
	"github.com/mgaillard/souschef/internal/ports"
)

// Notifier emits desktop notifications for cooking events. Every failure
// is swallowed: a missed cue must never surface as an error to the
// session or block it.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// TimerExpired announces that a step's countdown finished.
func (n *Notifier) TimerExpired(recipeName, stepText string) {
	if !n.IsEnabled() {
		return
	}

	title := "⏲ Timer done!"
	message := fmt.Sprintf("%s — %s", recipeName, stepText)

	var err error
	if n.cfg.Sound {
		// Alert plays the system sound along with the notification.
		err = beeep.Alert(title, message, "")
	} else {
		err = beeep.Notify(title, message, "")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
	}
}

// SessionFinished announces that the recipe walkthrough is done.
func (n *Notifier) SessionFinished(recipeName string) {
	if !n.IsEnabled() {
		return
	}
	if err := beeep.Notify("🍽 Bon appétit!", fmt.Sprintf("You finished cooking %s.", recipeName), ""); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
	}
}

// SetEnabled toggles notifications at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	if n.cfg != nil {
		n.cfg.Enabled = enabled
	}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)
