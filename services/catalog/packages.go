package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogRepo "tourbook/database/repository/catalog"
	"tourbook/models"
	"tourbook/services/storage"
	"tourbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultCatalogService) CreatePackage(ctx context.Context, actor models.Actor, input models.PackageInput, images []models.Upload) (*models.Package, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if len(images) > models.MaxPackageImages {
		return nil, utils.InvalidInput("images", fmt.Sprintf("at most %d images are allowed", models.MaxPackageImages))
	}

	pkg := &models.Package{
		ID:        uuid.New().String(),
		Itinerary: []models.ItineraryDay{},
		Tags:      []string{},
		CreatedBy: actor.UserID,
	}
	applyInput(pkg, input)
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	var group *models.PackageGroup
	if input.GroupID != nil && strings.TrimSpace(*input.GroupID) != "" {
		g, err := s.loadGroup(ctx, strings.TrimSpace(*input.GroupID))
		if err != nil {
			return nil, err
		}
		group = g
		pkg.GroupID = g.ID
	}

	uploaded, err := s.uploadAll(ctx, images, storage.FolderPackages)
	if err != nil {
		return nil, err
	}
	pkg.Images = uploaded

	if err := s.Packages.Create(ctx, pkg); err != nil {
		s.removeImages(ctx, uploaded)
		return nil, utils.Internal("failed to create package", err)
	}
	if group != nil {
		group.PackageIDs = append(group.PackageIDs, pkg.ID)
		if err := s.Groups.Update(ctx, group); err != nil {
			return nil, utils.Internal("failed to add package to group", err)
		}
	}

	s.invalidateListing(ctx)
	utils.GetLogger().Info("Package created", zap.String("packageId", pkg.ID), zap.String("by", actor.UserID))
	return pkg, nil
}

// UpdatePackage applies a partial update. New images replace the existing set.
func (s *DefaultCatalogService) UpdatePackage(ctx context.Context, actor models.Actor, id string, input models.PackageInput, images []models.Upload) (*models.Package, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if len(images) > models.MaxPackageImages {
		return nil, utils.InvalidInput("images", fmt.Sprintf("at most %d images are allowed", models.MaxPackageImages))
	}

	pkg, err := s.loadPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInput(pkg, input)
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	previousGroup := pkg.GroupID
	var newGroup *models.PackageGroup
	if input.GroupID != nil {
		target := strings.TrimSpace(*input.GroupID)
		if target != "" && target != previousGroup {
			if newGroup, err = s.loadGroup(ctx, target); err != nil {
				return nil, err
			}
		}
		pkg.GroupID = target
	}

	var replaced []models.Image
	if len(images) > 0 {
		uploaded, err := s.uploadAll(ctx, images, storage.FolderPackages)
		if err != nil {
			return nil, err
		}
		replaced = pkg.Images
		pkg.Images = uploaded
	}

	if err := s.Packages.Update(ctx, pkg); err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			return nil, utils.NotFound("package not found")
		}
		return nil, utils.Internal("failed to update package", err)
	}
	s.removeImages(ctx, replaced)
	s.invalidateListing(ctx)

	if pkg.GroupID != previousGroup {
		if previousGroup != "" {
			if err := s.Groups.PullPackage(ctx, pkg.ID); err != nil {
				return nil, utils.Internal("failed to detach package from group", err)
			}
		}
		if newGroup != nil {
			newGroup.PackageIDs = append(newGroup.PackageIDs, pkg.ID)
			if err := s.Groups.Update(ctx, newGroup); err != nil {
				return nil, utils.Internal("failed to add package to group", err)
			}
		}
	}
	return pkg, nil
}

func (s *DefaultCatalogService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	return s.loadPackage(ctx, id)
}

func (s *DefaultCatalogService) ListPackages(ctx context.Context) ([]models.Package, error) {
	logger := utils.GetLogger()
	if s.Listing != nil {
		pkgs, found, err := s.Listing.GetPackages(ctx)
		if err != nil {
			logger.Warn("Package listing cache read failed", zap.Error(err))
		} else if found {
			return pkgs, nil
		}
	}

	pkgs, err := s.Packages.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list packages", err)
	}
	if s.Listing != nil {
		if err := s.Listing.SetPackages(ctx, pkgs); err != nil {
			logger.Warn("Package listing cache write failed", zap.Error(err))
		}
	}
	return pkgs, nil
}

// invalidateListing drops the cached listing after a catalog write.
func (s *DefaultCatalogService) invalidateListing(ctx context.Context) {
	if s.Listing == nil {
		return
	}
	if err := s.Listing.Invalidate(ctx); err != nil {
		utils.GetLogger().Warn("Package listing cache invalidation failed", zap.Error(err))
	}
}

func (s *DefaultCatalogService) PackagesByGroup(ctx context.Context, actor models.Actor, groupID string) ([]models.Package, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.loadGroup(ctx, groupID); err != nil {
		return nil, err
	}
	pkgs, err := s.Packages.GetByGroup(ctx, groupID)
	if err != nil {
		return nil, utils.Internal("failed to list group packages", err)
	}
	return pkgs, nil
}

// DeletePackage removes the package, detaches it from its group and drops its images.
func (s *DefaultCatalogService) DeletePackage(ctx context.Context, actor models.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	pkg, err := s.loadPackage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Packages.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			return utils.NotFound("package not found")
		}
		return utils.Internal("failed to delete package", err)
	}
	if err := s.Groups.PullPackage(ctx, id); err != nil {
		utils.GetLogger().Warn("Failed to pull deleted package from groups", zap.String("packageId", id), zap.Error(err))
	}
	s.removeImages(ctx, pkg.Images)
	s.invalidateListing(ctx)

	utils.GetLogger().Info("Package deleted", zap.String("packageId", id), zap.String("by", actor.UserID))
	return nil
}

func (s *DefaultCatalogService) ListTags() []string {
	tags := make([]string, len(models.PackageTags))
	copy(tags, models.PackageTags)
	return tags
}

func (s *DefaultCatalogService) loadPackage(ctx context.Context, id string) (*models.Package, error) {
	if strings.TrimSpace(id) == "" {
		return nil, utils.InvalidInput("id", "package id is required")
	}
	pkg, err := s.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal("failed to load package", err)
	}
	if pkg == nil {
		return nil, utils.NotFound("package not found")
	}
	return pkg, nil
}
