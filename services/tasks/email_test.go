package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEnqueuer struct{ mock.Mock }

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func TestSendPasswordResetOTP(t *testing.T) {
	q := &mockEnqueuer{}
	var captured *asynq.Task
	q.On("EnqueueContext", mock.Anything, mock.AnythingOfType("*asynq.Task")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*asynq.Task) }).
		Return(&asynq.TaskInfo{ID: "t1"}, nil)

	d := NewDispatcher(q)
	require.NoError(t, d.SendPasswordResetOTP(context.Background(), "asha@example.com", "Asha", "123456", 10*time.Minute))

	require.NotNil(t, captured)
	assert.Equal(t, TypeSendEmail, captured.Type())
	msg, err := ParseEmailTask(captured)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Contains(t, msg.Body, "123456")
	assert.Contains(t, msg.Body, "10 minutes")
}

func TestSendMailEnqueueFailure(t *testing.T) {
	q := &mockEnqueuer{}
	q.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	err := NewDispatcher(q).SendPasswordResetOTP(context.Background(), "a@b.co", "", "000000", time.Minute)
	assert.Error(t, err)
}

func TestParseEmailTaskRejectsGarbage(t *testing.T) {
	_, err := ParseEmailTask(asynq.NewTask(TypeSendEmail, []byte("{")))
	assert.Error(t, err)
}
