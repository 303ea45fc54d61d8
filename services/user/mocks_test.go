package user

import (
	"context"
	"time"

	"tourbook/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id string, set bson.M, unset ...string) error {
	return m.Called(ctx, id, set, unset).Error(0)
}

type mockTokenCache struct{ mock.Mock }

func (m *mockTokenCache) Store(ctx context.Context, userID, tokenHash string) error {
	return m.Called(ctx, userID, tokenHash).Error(0)
}

func (m *mockTokenCache) Forget(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockOTPSender struct{ mock.Mock }

func (m *mockOTPSender) SendPasswordResetOTP(ctx context.Context, email, name, otp string, ttl time.Duration) error {
	return m.Called(ctx, email, name, otp, ttl).Error(0)
}
