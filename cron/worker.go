package cron

import (
	"context"
	"encoding/json"
	"time"

	"carebook/config"
	"carebook/models"
	"carebook/services/tasks"
	"carebook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the reminder queue consumer in the background.
// Actual SMS/email delivery belongs to the notification collaborators; this
// worker drains the queue and emits the reminder event.
func InitReminderWorker() {
	logger := utils.GetLogger()

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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(logger))

	go func() {
		logger.Info("reminder worker starting")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker exhausted retries")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("reminder task has malformed payload", zap.Error(err))
			return err
		}
		logger.Info("appointment reminder due",
			zap.String("bookingID", payload.BookingID),
			zap.String("providerID", payload.ProviderID),
			zap.String("date", payload.Date),
			zap.String("time", payload.Time))
		return nil
	}
}
