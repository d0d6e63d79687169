// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/valentine-cli/internal/config"
	"github.com/xvierd/valentine-cli/internal/ports"
)

// notifyFunc is the desktop backend; replaced in tests.
type notifyFunc func(title, message string, icon any) error

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify notifyFunc
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, notify: beeep.Notify}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}

	return n.notify(title, message, "")
}

// NotifyAccepted displays a notification when the invitation is accepted.
func (n *Notifier) NotifyAccepted(nickname string) error {
	title := "💖 They said yes!"
	message := "Valentine's plans are official."
	if nickname != "" {
		message = fmt.Sprintf("%s said yes. Valentine's plans are official.", nickname)
	}
	return n.Notify(title, message)
}

// SetEnabled toggles notifications at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	if n.cfg == nil {
		n.cfg = &config.NotificationConfig{}
	}
	n.cfg.Enabled = enabled
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
