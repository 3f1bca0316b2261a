package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roomi/config"
	"roomi/models"
	"roomi/services/notification"
	"roomi/services/tasks"

	"github.com/hibiken/asynq"
)

// InitFollowUpWorker runs the async follow-up worker in background.
func InitFollowUpWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingFollowUp, handleFollowUpTask(notifSvc))

	go func() {
		log.Println("[FollowUpWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// NewQueueClient returns the asynq client bookings enqueue follow-ups on.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

func handleFollowUpTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowUpHandler] invalid payload: %v", err)
			return err
		}

		subject := fmt.Sprintf("Your Grand Hotel reservation %s", p.ConfirmationNumber)
		body := fmt.Sprintf("Dear %s, your reservation %s is confirmed for check-in on %s. We look forward to welcoming you.",
			p.GuestName, p.ConfirmationNumber, p.CheckIn)

		return notifSvc.SendGuestNotification(ctx, p.Email, subject, body)
	}
}
