package notification

import (
	"context"

	"medcrew/models"
)

// Notifier delivers fire-and-forget user feedback. Callers do not consume a
// result; delivery failures are logged, never propagated into wizard state.
type Notifier interface {
	Notify(ctx context.Context, accountID string, n models.Notification)
}
