package records

import (
	"context"

	recordsRepo "tourbook/database/repository/records"
	"tourbook/models"
	"tourbook/services/storage"
)

type RecordsService interface {
	CreateInquiry(ctx context.Context, req models.InquiryRequest) (*models.Inquiry, error)
	ListInquiries(ctx context.Context, actor models.Actor) ([]models.Inquiry, error)
	DeleteInquiry(ctx context.Context, actor models.Actor, id string) error

	CreateReview(ctx context.Context, actor models.Actor, input models.ReviewInput, image *models.Upload) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	DeleteReview(ctx context.Context, actor models.Actor, id string) error
}

type DefaultRecordsService struct {
	Inquiries recordsRepo.InquiryRepository
	Reviews   recordsRepo.ReviewRepository
	Images    storage.ImageStore
}

func requireAdmin(actor models.Actor) error {
	if actor.UserID == "" {
		return unauthorized
	}
	if !actor.IsAdmin() {
		return forbidden
	}
	return nil
}
