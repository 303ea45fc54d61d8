package records

import (
	"context"
	"errors"
	"strings"

	recordsRepo "tourbook/database/repository/records"
	"tourbook/models"
	"tourbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	unauthorized = utils.Unauthorized("authentication required")
	forbidden    = utils.Forbidden("admin access required")
)

// CreateInquiry records a public contact request.
func (s *DefaultRecordsService) CreateInquiry(ctx context.Context, req models.InquiryRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Message:      strings.TrimSpace(req.Message),
	}

	switch {
	case inquiry.FirstName == "":
		return nil, utils.InvalidInput("firstName", "firstName is required")
	case inquiry.LastName == "":
		return nil, utils.InvalidInput("lastName", "lastName is required")
	case !utils.IsEmail(inquiry.Email):
		return nil, utils.InvalidInput("email", "email must be a valid email address")
	case !utils.IsTenDigitPhone(inquiry.MobileNumber):
		return nil, utils.InvalidInput("mobileNumber", "mobileNumber must be 10 digits")
	case inquiry.Message == "":
		return nil, utils.InvalidInput("message", "message is required")
	}

	if err := s.Inquiries.Create(ctx, inquiry); err != nil {
		return nil, utils.Internal("failed to save inquiry", err)
	}
	utils.GetLogger().Info("Inquiry received", zap.String("inquiryId", inquiry.ID))
	return inquiry, nil
}

func (s *DefaultRecordsService) ListInquiries(ctx context.Context, actor models.Actor) ([]models.Inquiry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	inquiries, err := s.Inquiries.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list inquiries", err)
	}
	return inquiries, nil
}

func (s *DefaultRecordsService) DeleteInquiry(ctx context.Context, actor models.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.Inquiries.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, recordsRepo.ErrRecordNotFound) {
			return utils.NotFound("inquiry not found")
		}
		return utils.Internal("failed to delete inquiry", err)
	}
	return nil
}
