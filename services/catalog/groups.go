package catalog

import (
	"context"
	"errors"
	"strings"

	catalogRepo "tourbook/database/repository/catalog"
	"tourbook/models"
	"tourbook/services/storage"
	"tourbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateGroup stores a new group. Unknown package ids are dropped; the rest
// are moved into the group.
func (s *DefaultCatalogService) CreateGroup(ctx context.Context, actor models.Actor, input models.GroupInput, photo *models.Upload) (*models.GroupView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return nil, utils.InvalidInput("name", "name is required")
	}
	if photo == nil {
		return nil, utils.InvalidInput("photo", "photo is required")
	}

	members, err := s.existingPackages(ctx, input.PackageIDs)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploadAll(ctx, []models.Upload{*photo}, storage.FolderGroups)
	if err != nil {
		return nil, err
	}

	group := &models.PackageGroup{
		ID:         uuid.New().String(),
		Name:       name,
		Photo:      uploaded[0],
		PackageIDs: members,
		CreatedBy:  actor.UserID,
	}
	if err := s.detachFromGroups(ctx, members); err != nil {
		s.removeImages(ctx, uploaded)
		return nil, err
	}
	if err := s.Groups.Create(ctx, group); err != nil {
		s.removeImages(ctx, uploaded)
		return nil, utils.Internal("failed to create package group", err)
	}
	if err := s.Packages.SetGroup(ctx, members, group.ID); err != nil {
		return nil, utils.Internal("failed to assign packages to group", err)
	}

	s.invalidateListing(ctx)
	utils.GetLogger().Info("Package group created", zap.String("groupId", group.ID), zap.Int("packages", len(members)))
	return s.view(ctx, group)
}

func (s *DefaultCatalogService) ListGroups(ctx context.Context) ([]models.GroupView, error) {
	groups, err := s.Groups.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list package groups", err)
	}
	views := make([]models.GroupView, 0, len(groups))
	for i := range groups {
		v, err := s.view(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *DefaultCatalogService) GetGroup(ctx context.Context, id string) (*models.GroupView, error) {
	group, err := s.loadGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, group)
}

// UpdateGroup renames the group, swaps its photo and replaces its members.
// A nil member list leaves membership unchanged.
func (s *DefaultCatalogService) UpdateGroup(ctx context.Context, actor models.Actor, id string, input models.GroupInput, photo *models.Upload) (*models.GroupView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	group, err := s.loadGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, utils.InvalidInput("name", "name cannot be empty")
		}
		group.Name = name
	}

	var members []string
	if input.PackageIDs != nil {
		if members, err = s.existingPackages(ctx, input.PackageIDs); err != nil {
			return nil, err
		}
		group.PackageIDs = members
	}

	var stale []models.Image
	switch {
	case photo != nil:
		uploaded, err := s.uploadAll(ctx, []models.Upload{*photo}, storage.FolderGroups)
		if err != nil {
			return nil, err
		}
		stale = append(stale, group.Photo)
		group.Photo = uploaded[0]
	case input.ExistingPhoto != nil:
		if input.ExistingPhoto.PublicID != group.Photo.PublicID {
			return nil, utils.InvalidInput("existingPhoto", "existing photo does not belong to this group")
		}
	}

	if input.PackageIDs != nil {
		if err := s.detachFromGroups(ctx, members); err != nil {
			if photo != nil {
				s.removeImages(ctx, []models.Image{group.Photo})
			}
			return nil, err
		}
	}
	if err := s.Groups.Update(ctx, group); err != nil {
		if errors.Is(err, catalogRepo.ErrGroupNotFound) {
			return nil, utils.NotFound("package group not found")
		}
		return nil, utils.Internal("failed to update package group", err)
	}
	s.removeImages(ctx, stale)

	if input.PackageIDs != nil {
		if err := s.Packages.ClearGroup(ctx, group.ID); err != nil {
			return nil, utils.Internal("failed to detach packages from group", err)
		}
		if err := s.Packages.SetGroup(ctx, members, group.ID); err != nil {
			return nil, utils.Internal("failed to assign packages to group", err)
		}
		s.invalidateListing(ctx)
	}
	return s.view(ctx, group)
}

// DeleteGroup removes the group and clears the group reference on its members.
func (s *DefaultCatalogService) DeleteGroup(ctx context.Context, actor models.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	group, err := s.loadGroup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Packages.ClearGroup(ctx, id); err != nil {
		return utils.Internal("failed to detach packages from group", err)
	}
	if err := s.Groups.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrGroupNotFound) {
			return utils.NotFound("package group not found")
		}
		return utils.Internal("failed to delete package group", err)
	}
	s.removeImages(ctx, []models.Image{group.Photo})
	s.invalidateListing(ctx)
	return nil
}

func (s *DefaultCatalogService) loadGroup(ctx context.Context, id string) (*models.PackageGroup, error) {
	if strings.TrimSpace(id) == "" {
		return nil, utils.InvalidInput("id", "group id is required")
	}
	group, err := s.Groups.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal("failed to load package group", err)
	}
	if group == nil {
		return nil, utils.NotFound("package group not found")
	}
	return group, nil
}

// detachFromGroups drops ids from whatever group lists them, so a package
// is never listed by two groups at once.
func (s *DefaultCatalogService) detachFromGroups(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := s.Groups.PullPackage(ctx, id); err != nil {
			return utils.Internal("failed to detach package from its previous group", err)
		}
	}
	return nil
}

func (s *DefaultCatalogService) existingPackages(ctx context.Context, ids []string) ([]string, error) {
	found, err := s.Packages.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, utils.Internal("failed to look up packages", err)
	}
	return found, nil
}

func (s *DefaultCatalogService) view(ctx context.Context, group *models.PackageGroup) (*models.GroupView, error) {
	pkgs := []models.Package{}
	if len(group.PackageIDs) > 0 {
		var err error
		if pkgs, err = s.Packages.GetByIDs(ctx, group.PackageIDs); err != nil {
			return nil, utils.Internal("failed to resolve group packages", err)
		}
	}
	return &models.GroupView{PackageGroup: *group, Packages: pkgs}, nil
}
