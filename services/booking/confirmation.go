package booking

import (
	"context"
	"strings"

	"tourbook/models"
	"tourbook/utils"

	"go.uber.org/zap"
)

// ConfirmPayment records a client-reported gateway confirmation.
//
// The booking write and the package counter increment are two separate
// writes. If the increment fails the booking stays confirmed and the error
// is returned. Repeating a confirmation re-runs the whole transition,
// including the increment.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, actor models.Actor, req models.ConfirmPaymentRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if actor.UserID == "" {
		return nil, utils.Unauthorized("authentication required")
	}
	if err := requireConfirmFields(req); err != nil {
		return nil, err
	}

	booking, err := s.loadOwned(ctx, actor, strings.TrimSpace(req.BookingID))
	if err != nil {
		return nil, err
	}

	pt, ok := ParsePaymentType(req.PaymentType)
	if !ok {
		return nil, errUnrecognizedPaymentType
	}
	if err := ApplyConfirmation(booking, pt, strings.TrimSpace(req.PaymentID), strings.TrimSpace(req.OrderID)); err != nil {
		return nil, err
	}

	if err := s.Bookings.UpdatePayment(ctx, booking); err != nil {
		return nil, utils.Internal("failed to update booking", err)
	}

	if n := InventoryIncrement(*booking); n > 0 {
		if err := s.Packages.IncrementBookings(ctx, booking.PackageID, n); err != nil {
			logger.Error("Booking paid but package counter not incremented",
				zap.String("bookingId", booking.ID),
				zap.String("packageId", booking.PackageID),
				zap.Int("participants", n),
				zap.Error(err),
			)
			return nil, utils.Internal("failed to update package bookings", err)
		}
	}

	logger.Info("Booking payment confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("status", string(booking.PaymentStatus)),
	)
	return booking, nil
}

// PayRemaining completes the balance of a half-plan booking. It does not
// touch the package's bookingsCount.
func (s *DefaultBookingService) PayRemaining(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	if actor.UserID == "" {
		return nil, utils.Unauthorized("authentication required")
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, utils.InvalidInput("bookingId", "bookingId is required")
	}

	booking, err := s.loadOwned(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ApplyRemainingPayment(booking); err != nil {
		return nil, err
	}
	if err := s.Bookings.UpdatePayment(ctx, booking); err != nil {
		return nil, utils.Internal("failed to update booking", err)
	}

	utils.GetLogger().Info("Booking balance settled", zap.String("bookingId", booking.ID))
	return booking, nil
}

func requireConfirmFields(req models.ConfirmPaymentRequest) error {
	fields := []struct{ name, value string }{
		{"paymentId", req.PaymentID},
		{"orderId", req.OrderID},
		{"bookingId", req.BookingID},
		{"paymentType", req.PaymentType},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return utils.InvalidInput(f.name, f.name+" is required")
		}
	}
	return nil
}

// loadOwned fetches a booking the actor owns, or any booking for an admin.
func (s *DefaultBookingService) loadOwned(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal("failed to load booking", err)
	}
	if booking == nil {
		return nil, utils.NotFound("booking not found")
	}
	if !actor.CanAccess(booking.UserID) {
		return nil, utils.Forbidden("booking belongs to another user")
	}
	return booking, nil
}
