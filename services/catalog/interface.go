package catalog

import (
	"context"

	catalogRepo "tourbook/database/repository/catalog"
	"tourbook/models"
	"tourbook/services/storage"
)

// CatalogService manages packages, package groups and tags.
type CatalogService interface {
	CreatePackage(ctx context.Context, actor models.Actor, input models.PackageInput, images []models.Upload) (*models.Package, error)
	UpdatePackage(ctx context.Context, actor models.Actor, id string, input models.PackageInput, images []models.Upload) (*models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackages(ctx context.Context) ([]models.Package, error)
	PackagesByGroup(ctx context.Context, actor models.Actor, groupID string) ([]models.Package, error)
	DeletePackage(ctx context.Context, actor models.Actor, id string) error
	ListTags() []string

	CreateGroup(ctx context.Context, actor models.Actor, input models.GroupInput, photo *models.Upload) (*models.GroupView, error)
	ListGroups(ctx context.Context) ([]models.GroupView, error)
	GetGroup(ctx context.Context, id string) (*models.GroupView, error)
	UpdateGroup(ctx context.Context, actor models.Actor, id string, input models.GroupInput, photo *models.Upload) (*models.GroupView, error)
	DeleteGroup(ctx context.Context, actor models.Actor, id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Packages catalogRepo.PackageRepository
	Groups   catalogRepo.GroupRepository
	Images   storage.ImageStore
	// Listing is optional. bookingsCount in cached listings may lag by up to the cache TTL.
	Listing ListingCache
}
