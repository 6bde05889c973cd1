package tasks

import (
	"encoding/json"
	"errors"
	"time"

	"medcrew/config"
	"medcrew/models"

	"github.com/hibiken/asynq"
)

const TypeCompletionReminder = "profile:completion_reminder"

// reminderDelay is how long an incomplete document set may sit before the
// account is nudged.
const reminderDelay = 48 * time.Hour

// NewCompletionReminderTask builds the queued task for a profile-completion
// reminder.
func NewCompletionReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCompletionReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		// One pending reminder per account; re-staging a document while one
		// is queued must not pile up duplicates.
		asynq.TaskID("completion-reminder:" + payload.AccountID),
	}
	return task, opts, nil
}

// enqueuer is the slice of asynq.Client the scheduler needs.
type enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReminderScheduler enqueues completion reminders on the Redis-backed
// task queue.
type AsynqReminderScheduler struct {
	client enqueuer
}

// NewAsynqReminderScheduler creates a scheduler using the configured queue DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleCompletionReminder queues a reminder to fire after the delay.
// An already-queued reminder for the account is left in place.
func (s *AsynqReminderScheduler) ScheduleCompletionReminder(accountID string) error {
	payload := models.ReminderPayload{
		AccountID: accountID,
		Title:     "Finish your profile",
		Body:      "You still have documents pending. Complete your profile to start receiving offers.",
	}
	task, opts, err := NewCompletionReminderTask(payload, time.Now().Add(reminderDelay))
	if err != nil {
		return err
	}
	// asynq wraps the conflict error, so match the chain, not the value.
	if _, err := s.client.Enqueue(task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return err
	}
	return nil
}
