package tasks

import (
	"fmt"
	"testing"
	"time"

	"medcrew/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestScheduleCompletionReminderEnqueuesTask(t *testing.T) {
	q := &fakeEnqueuer{}
	s := &AsynqReminderScheduler{client: q}

	require.NoError(t, s.ScheduleCompletionReminder("acct-1"))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeCompletionReminder, q.tasks[0].Type())
	assert.Contains(t, string(q.tasks[0].Payload()), "acct-1")
}

func TestScheduleCompletionReminderIgnoresQueuedDuplicate(t *testing.T) {
	// The client surfaces the conflict wrapped, never as the bare sentinel.
	q := &fakeEnqueuer{err: fmt.Errorf("task already queued: %w", asynq.ErrTaskIDConflict)}
	s := &AsynqReminderScheduler{client: q}

	assert.NoError(t, s.ScheduleCompletionReminder("acct-1"))
}

func TestScheduleCompletionReminderPropagatesQueueFailures(t *testing.T) {
	q := &fakeEnqueuer{err: fmt.Errorf("queue unavailable")}
	s := &AsynqReminderScheduler{client: q}

	assert.Error(t, s.ScheduleCompletionReminder("acct-1"))
}

func TestNewCompletionReminderTaskPayload(t *testing.T) {
	payload := models.ReminderPayload{AccountID: "acct-1", Title: "t", Body: "b"}
	task, opts, err := NewCompletionReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeCompletionReminder, task.Type())
	assert.NotEmpty(t, opts)
}
