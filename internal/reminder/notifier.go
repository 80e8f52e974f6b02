package reminder

import "context"

// Notifier renders reminders. The Engine calls Notify, Popup and Speak in that
// order for every reminder; Popup may block until the user dismisses it.
type Notifier interface {
	// Notify posts a fire-and-forget system notification.
	Notify(ctx context.Context, r Reminder) error

	// Popup shows a modal dialog and returns once it is dismissed.
	Popup(ctx context.Context, r Reminder) error

	// Speak reads r.Speech aloud and returns when the utterance ends.
	Speak(ctx context.Context, r Reminder) error
}
