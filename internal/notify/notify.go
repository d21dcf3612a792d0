// Package notify carries one-way outcome signals from the game core to the
// UI toast area. Senders never block and never learn whether anyone listened.
package notify

import tea "charm.land/bubbletea/v2"

// Severity classifies a notification for display styling.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Error   Severity = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	Message  string
	Severity Severity
}

// SuccessCmd wraps a success notification as a Bubble Tea command. The root
// model intercepts the Notification message and shows it as a toast.
func SuccessCmd(msg string) tea.Cmd {
	return func() tea.Msg { return Notification{Message: msg, Severity: Success} }
}

// InfoCmd wraps an informational notification as a Bubble Tea command.
func InfoCmd(msg string) tea.Cmd {
	return func() tea.Msg { return Notification{Message: msg, Severity: Info} }
}

// ErrorCmd wraps an error notification as a Bubble Tea command.
func ErrorCmd(msg string) tea.Cmd {
	return func() tea.Msg { return Notification{Message: msg, Severity: Error} }
}
