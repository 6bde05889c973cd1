package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medcrew/config"
	"medcrew/models"
	"medcrew/services/notification"
	"medcrew/services/profile"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifier notification.Notifier, profileSvc profile.ProfileService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc("profile:completion_reminder", handleCompletionReminder(notifier, profileSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleCompletionReminder(notifier notification.Notifier, profileSvc profile.ProfileService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		// The set may have been completed or submitted since the reminder was
		// queued; in that case the reminder is a no-op.
		set, err := profileSvc.GetDocumentSet(ctx, p.AccountID)
		if err != nil {
			return err
		}
		if len(set) == 0 ||
			(set.Has(models.PersonalDocuments...) && set.Has(models.ProfessionalDocuments...)) {
			return nil
		}

		notifier.Notify(ctx, p.AccountID, models.Notification{
			Title:       p.Title,
			Description: p.Body,
			Severity:    models.SeverityInfo,
		})
		return nil
	}
}
