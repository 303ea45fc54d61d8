package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendEmail = "email:send"

// NewEmailTask wraps msg in an asynq task.
func NewEmailTask(msg models.MailMessage) (*asynq.Task, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}

// ParseEmailTask decodes the message carried by an email task.
func ParseEmailTask(t *asynq.Task) (models.MailMessage, error) {
	var msg models.MailMessage
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		return msg, fmt.Errorf("invalid email payload: %w", err)
	}
	return msg, nil
}

// Enqueuer is the part of asynq.Client the dispatcher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher queues outbound mail for the background worker.
type Dispatcher struct {
	queue Enqueuer
}

func NewDispatcher(queue Enqueuer) *Dispatcher {
	return &Dispatcher{queue: queue}
}

// NewRedisDispatcher returns a Dispatcher and the asynq client backing it.
func NewRedisDispatcher(opt asynq.RedisClientOpt) (*Dispatcher, *asynq.Client) {
	client := asynq.NewClient(opt)
	return NewDispatcher(client), client
}

func (d *Dispatcher) SendMail(ctx context.Context, msg models.MailMessage) error {
	task, err := NewEmailTask(msg)
	if err != nil {
		return err
	}
	if _, err := d.queue.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	return nil
}

// SendPasswordResetOTP queues the recovery code email.
func (d *Dispatcher) SendPasswordResetOTP(ctx context.Context, email, name, otp string, ttl time.Duration) error {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}
	return d.SendMail(ctx, models.MailMessage{
		To:      email,
		Subject: "Your password reset code",
		Body: fmt.Sprintf("%s,\n\nYour password reset code is %s. It expires in %d minutes.\n\nIf you did not request a reset you can ignore this email.",
			greeting, otp, int(ttl.Minutes())),
	})
}
