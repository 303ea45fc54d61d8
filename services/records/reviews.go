package records

import (
	"context"
	"errors"
	"strings"

	recordsRepo "tourbook/database/repository/records"
	"tourbook/models"
	"tourbook/services/storage"
	"tourbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReview publishes a testimonial with an optional image.
func (s *DefaultRecordsService) CreateReview(ctx context.Context, actor models.Actor, input models.ReviewInput, image *models.Upload) (*models.Review, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	review := &models.Review{
		ID:       uuid.New().String(),
		Username: strings.TrimSpace(input.Username),
		Message:  strings.TrimSpace(input.Message),
		Star:     input.Star,
	}
	switch {
	case review.Username == "":
		return nil, utils.InvalidInput("username", "username is required")
	case review.Message == "":
		return nil, utils.InvalidInput("message", "message is required")
	case review.Star < 1 || review.Star > 5:
		return nil, utils.InvalidInput("star", "star must be between 1 and 5")
	}

	if image != nil {
		img, err := s.Images.Upload(ctx, image.Content, storage.FolderReviews)
		if err != nil {
			return nil, utils.Upstream("failed to upload review image", err)
		}
		review.Image = &img
	}

	if err := s.Reviews.Create(ctx, review); err != nil {
		if review.Image != nil {
			s.dropImage(ctx, review.Image.PublicID)
		}
		return nil, utils.Internal("failed to save review", err)
	}
	return review, nil
}

func (s *DefaultRecordsService) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.Reviews.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list reviews", err)
	}
	return reviews, nil
}

func (s *DefaultRecordsService) DeleteReview(ctx context.Context, actor models.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	review, err := s.Reviews.GetByID(ctx, id)
	if err != nil {
		return utils.Internal("failed to load review", err)
	}
	if review == nil {
		return utils.NotFound("review not found")
	}
	if err := s.Reviews.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, recordsRepo.ErrRecordNotFound) {
			return utils.NotFound("review not found")
		}
		return utils.Internal("failed to delete review", err)
	}
	if review.Image != nil {
		s.dropImage(ctx, review.Image.PublicID)
	}
	return nil
}

func (s *DefaultRecordsService) dropImage(ctx context.Context, publicID string) {
	if err := s.Images.Delete(ctx, publicID); err != nil {
		utils.GetLogger().Warn("Failed to delete review image", zap.String("publicId", publicID), zap.Error(err))
	}
}
