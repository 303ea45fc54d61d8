package booking

import (
	"context"
	"strings"

	"tourbook/models"
	"tourbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateBooking creates a remote payment intent and a pending booking.
// If the gateway call fails nothing is persisted.
func (s *DefaultBookingService) InitiateBooking(ctx context.Context, actor models.Actor, req models.InitiateBookingRequest) (*models.InitiateBookingResult, error) {
	logger := utils.GetLogger()

	if actor.UserID == "" {
		return nil, utils.Unauthorized("authentication required")
	}

	packageID := strings.TrimSpace(req.PackageID)
	if packageID == "" {
		return nil, utils.InvalidInput("packageId", "packageId is required")
	}
	pkg, err := s.Packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, utils.Internal("failed to load package", err)
	}
	if pkg == nil {
		return nil, utils.NotFound("package not found")
	}

	order, err := validateOrder(req)
	if err != nil {
		return nil, err
	}

	total := TotalAmountFor(order.paymentType, order.amount)
	receipt := uuid.New().String()

	intent, err := s.Gateway.CreateIntent(ctx, models.PaymentIntentRequest{
		Amount:   ToMinorUnits(order.amount),
		Currency: s.currency(),
		Receipt:  receipt,
		Metadata: map[string]string{
			"packageId":   pkg.ID,
			"userId":      actor.UserID,
			"paymentType": string(order.paymentType),
		},
	})
	if err != nil {
		return nil, utils.Upstream("payment gateway unavailable", err)
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		UserID:         actor.UserID,
		PackageID:      pkg.ID,
		Participants:   order.participants,
		ContactEmail:   order.email,
		ContactPhone:   order.phone,
		Amount:         order.amount,
		TotalAmount:    total,
		PaidAmount:     0,
		PaymentType:    order.paymentType,
		StartingDate:   order.startingDate,
		PaymentStatus:  models.StatusPending,
		Currency:       intent.Currency,
		GatewayOrderID: intent.OrderID,
		BookedAt:       s.clock(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, utils.Internal("failed to save booking", err)
	}

	logger.Info("Booking order created",
		zap.String("bookingId", booking.ID),
		zap.String("packageId", pkg.ID),
		zap.String("orderId", intent.OrderID),
		zap.String("paymentType", string(order.paymentType)),
	)

	return &models.InitiateBookingResult{
		BookingID:    booking.ID,
		OrderID:      intent.OrderID,
		ClientSecret: intent.ClientSecret,
		Currency:     intent.Currency,
		Amount:       booking.Amount,
		TotalAmount:  booking.TotalAmount,
		PaymentType:  booking.PaymentType,
		PackageID:    booking.PackageID,
		Participants: booking.Participants,
		ContactEmail: booking.ContactEmail,
		ContactPhone: booking.ContactPhone,
		StartingDate: booking.StartingDate,
	}, nil
}
