package ports

// Notifier sends desktop notifications.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyAccepted announces an accepted invitation; disabled notifiers
	// return nil.
	NotifyAccepted(nickname string) error

	// IsEnabled returns true if notifications will be shown.
	IsEnabled() bool
}
