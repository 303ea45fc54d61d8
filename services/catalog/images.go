package catalog

import (
	"context"

	"tourbook/models"
	"tourbook/utils"

	"go.uber.org/zap"
)

// uploadAll stores every upload in folder. On failure the images already
// stored by this call are removed again.
func (s *DefaultCatalogService) uploadAll(ctx context.Context, uploads []models.Upload, folder string) ([]models.Image, error) {
	images := make([]models.Image, 0, len(uploads))
	for _, up := range uploads {
		img, err := s.Images.Upload(ctx, up.Content, folder)
		if err != nil {
			s.removeImages(ctx, images)
			return nil, utils.Upstream("failed to upload image "+up.Filename, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// removeImages deletes images from the host, logging failures.
func (s *DefaultCatalogService) removeImages(ctx context.Context, images []models.Image) {
	for _, img := range images {
		if img.PublicID == "" {
			continue
		}
		if err := s.Images.Delete(ctx, img.PublicID); err != nil {
			utils.GetLogger().Warn("Failed to delete hosted image",
				zap.String("publicId", img.PublicID), zap.Error(err))
		}
	}
}
