package profile

import (
	"context"

	profileRepo "medcrew/database/repository/profile"
	"medcrew/models"
	"medcrew/services/notification"
	"medcrew/services/storage"

	"github.com/go-redis/redis/v8"
)

// ProfileService manages the three-group document checklist and the
// independent profile-info forms.
type ProfileService interface {
	// SetDocument validates and stages a file under the given slot,
	// overwriting any prior selection, and persists the whole set.
	SetDocument(ctx context.Context, accountID string, key models.DocumentKey, file models.DocumentFile) error

	// GetDocumentSet returns the staged set (without file contents).
	GetDocumentSet(ctx context.Context, accountID string) (models.DocumentSet, error)

	// Advance gates on the current group's required slots and moves to the
	// next group. No-op at the last group.
	Advance(ctx context.Context, accountID string) (models.DocumentGroup, error)

	// Retreat moves one group back, floored at the first.
	Retreat(ctx context.Context, accountID string) (models.DocumentGroup, error)

	// CurrentGroup returns the group the checklist is at.
	CurrentGroup(ctx context.Context, accountID string) (models.DocumentGroup, error)

	// Submit uploads every staged file and persists one aggregate record.
	// On full success the staged set is cleared and the checklist resets.
	Submit(ctx context.Context, accountID string) error

	// FinishEarly submits from any group once both required groups are
	// fully satisfied; the specialist group is never required.
	FinishEarly(ctx context.Context, accountID string) error

	// GetDocumentRecord returns the most recent submitted record, nil if none.
	GetDocumentRecord(ctx context.Context, accountID string) (*models.ProfileDocumentRecord, error)

	// Independent profile-info forms. Each submit persists its own record
	// and requires an authenticated session.
	SavePersonalInfo(ctx context.Context, accountID string, info models.PersonalInfo) (string, error)
	SaveProfessionalInfo(ctx context.Context, accountID string, info models.ProfessionalInfo) (string, error)
	SaveFinancialInfo(ctx context.Context, accountID string, info models.FinancialInfo) (string, error)
}

// ReminderScheduler queues a profile-completion reminder for later delivery.
type ReminderScheduler interface {
	ScheduleCompletionReminder(accountID string) error
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo      profileRepo.ProfileRepository
	Store     storage.DocumentStore
	Documents *redis.Client
	Notifier  notification.Notifier
	// Reminders is optional; when set, staging a document on an incomplete
	// checklist schedules a completion reminder.
	Reminders ReminderScheduler
}
