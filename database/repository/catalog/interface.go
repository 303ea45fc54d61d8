package catalogRepo

import (
	"context"
	"errors"

	"tourbook/models"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrGroupNotFound   = errors.New("package group not found")
)

// PackageRepository defines methods for package data access.
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	// GetByID returns (nil, nil) when the package does not exist.
	GetByID(ctx context.Context, id string) (*models.Package, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Package, error)
	GetAll(ctx context.Context) ([]models.Package, error)
	GetByGroup(ctx context.Context, groupID string) ([]models.Package, error)
	// Update persists every client-editable field. bookingsCount is never written here.
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id string) error
	// IncrementBookings adds n to the package's bookingsCount.
	IncrementBookings(ctx context.Context, id string, n int) error
	// ExistingIDs filters ids down to those that name a stored package.
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
	SetGroup(ctx context.Context, ids []string, groupID string) error
	ClearGroup(ctx context.Context, groupID string) error
}

// GroupRepository defines methods for package group data access.
type GroupRepository interface {
	Create(ctx context.Context, group *models.PackageGroup) error
	// GetByID returns (nil, nil) when the group does not exist.
	GetByID(ctx context.Context, id string) (*models.PackageGroup, error)
	GetAll(ctx context.Context) ([]models.PackageGroup, error)
	Update(ctx context.Context, group *models.PackageGroup) error
	Delete(ctx context.Context, id string) error
	// PullPackage removes a package id from every group's member list.
	PullPackage(ctx context.Context, packageID string) error
}
