package catalog

import (
	"context"
	"io"

	"tourbook/models"

	"github.com/stretchr/testify/mock"
)

type mockPackageRepo struct{ mock.Mock }

func (m *mockPackageRepo) Create(ctx context.Context, pkg *models.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockPackageRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Package, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]models.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) GetAll(ctx context.Context) ([]models.Package, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) GetByGroup(ctx context.Context, groupID string) ([]models.Package, error) {
	args := m.Called(ctx, groupID)
	p, _ := args.Get(0).([]models.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) Update(ctx context.Context, pkg *models.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockPackageRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPackageRepo) IncrementBookings(ctx context.Context, id string, n int) error {
	return m.Called(ctx, id, n).Error(0)
}

func (m *mockPackageRepo) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]string)
	return found, args.Error(1)
}

func (m *mockPackageRepo) SetGroup(ctx context.Context, ids []string, groupID string) error {
	return m.Called(ctx, ids, groupID).Error(0)
}

func (m *mockPackageRepo) ClearGroup(ctx context.Context, groupID string) error {
	return m.Called(ctx, groupID).Error(0)
}

type mockGroupRepo struct{ mock.Mock }

func (m *mockGroupRepo) Create(ctx context.Context, g *models.PackageGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id string) (*models.PackageGroup, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.PackageGroup)
	return g, args.Error(1)
}

func (m *mockGroupRepo) GetAll(ctx context.Context) ([]models.PackageGroup, error) {
	args := m.Called(ctx)
	g, _ := args.Get(0).([]models.PackageGroup)
	return g, args.Error(1)
}

func (m *mockGroupRepo) Update(ctx context.Context, g *models.PackageGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGroupRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGroupRepo) PullPackage(ctx context.Context, packageID string) error {
	return m.Called(ctx, packageID).Error(0)
}

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Upload(ctx context.Context, file io.Reader, folder string) (models.Image, error) {
	args := m.Called(ctx, file, folder)
	img, _ := args.Get(0).(models.Image)
	return img, args.Error(1)
}

func (m *mockImageStore) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}
