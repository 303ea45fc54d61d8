package booking

import (
	"context"

	"tourbook/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdatePayment(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.Booking)
	return list, args.Error(1)
}

func (m *mockBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Booking)
	return list, args.Error(1)
}

type mockPackageRepo struct{ mock.Mock }

func (m *mockPackageRepo) Create(ctx context.Context, p *models.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPackageRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Package, error) {
	args := m.Called(ctx, ids)
	list, _ := args.Get(0).([]models.Package)
	return list, args.Error(1)
}

func (m *mockPackageRepo) GetAll(ctx context.Context) ([]models.Package, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Package)
	return list, args.Error(1)
}

func (m *mockPackageRepo) GetByGroup(ctx context.Context, groupID string) ([]models.Package, error) {
	args := m.Called(ctx, groupID)
	list, _ := args.Get(0).([]models.Package)
	return list, args.Error(1)
}

func (m *mockPackageRepo) Update(ctx context.Context, p *models.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPackageRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPackageRepo) IncrementBookings(ctx context.Context, id string, n int) error {
	return m.Called(ctx, id, n).Error(0)
}

func (m *mockPackageRepo) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	list, _ := args.Get(0).([]string)
	return list, args.Error(1)
}

func (m *mockPackageRepo) SetGroup(ctx context.Context, ids []string, groupID string) error {
	return m.Called(ctx, ids, groupID).Error(0)
}

func (m *mockPackageRepo) ClearGroup(ctx context.Context, groupID string) error {
	return m.Called(ctx, groupID).Error(0)
}

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
	list, _ := args.Get(0).([]models.User)
	return list, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.User)
	return list, args.Error(1)
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id string, set bson.M, unset ...string) error {
	return m.Called(ctx, id, set, unset).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error) {
	args := m.Called(ctx, req)
	pi, _ := args.Get(0).(*models.PaymentIntent)
	return pi, args.Error(1)
}
