package models

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a fire-and-forget user feedback message.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// ReminderPayload is the queued payload for a profile-completion reminder.
type ReminderPayload struct {
	AccountID string `json:"accountId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
