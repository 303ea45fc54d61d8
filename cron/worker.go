package cron

import (
	"context"
	"time"

	"tourbook/config"
	"tourbook/models"
	"tourbook/services/tasks"
	"tourbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Mailer delivers a single outbound message.
type Mailer interface {
	Send(ctx context.Context, msg models.MailMessage) error
}

// LogMailer writes outbound mail to the structured log instead of an SMTP relay.
type LogMailer struct {
	From string
}

func (m LogMailer) Send(_ context.Context, msg models.MailMessage) error {
	utils.GetLogger().Info("Outbound email",
		zap.String("from", m.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("bodyLength", len(msg.Body)),
	)
	return nil
}

// InitMailWorker starts the background mail worker and returns the server so
// the caller can shut it down.
func InitMailWorker(mailer Mailer) *asynq.Server {
	logger := utils.GetLogger()
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
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(mailer))

	go func() {
		logger.Info("Starting mail worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Mail worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Mail worker gave up; password reset emails will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleEmailTask(mailer Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		msg, err := tasks.ParseEmailTask(task)
		if err != nil {
			utils.GetLogger().Error("Dropping malformed email task", zap.Error(err))
			return asynq.SkipRetry
		}
		if err := mailer.Send(ctx, msg); err != nil {
			utils.GetLogger().Warn("Email delivery failed", zap.String("to", msg.To), zap.Error(err))
			return err
		}
		return nil
	}
}
