package booking

import (
	"context"
	"time"

	bookingRepo "tourbook/database/repository/booking"
	catalogRepo "tourbook/database/repository/catalog"
	userRepo "tourbook/database/repository/user"
	"tourbook/models"
)

// BookingService is the booking engine: order creation, payment
// confirmation, balance completion and booking queries.
type BookingService interface {
	InitiateBooking(ctx context.Context, actor models.Actor, req models.InitiateBookingRequest) (*models.InitiateBookingResult, error)
	ConfirmPayment(ctx context.Context, actor models.Actor, req models.ConfirmPaymentRequest) (*models.Booking, error)
	PayRemaining(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error)

	ListMyBookings(ctx context.Context, actor models.Actor) ([]models.BookingView, error)
	GetBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.BookingView, error)
	ListAllBookings(ctx context.Context, actor models.Actor) ([]models.BookingView, error)
	Receipt(ctx context.Context, actor models.Actor, bookingID string) ([]byte, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Packages catalogRepo.PackageRepository
	Users    userRepo.UserRepository
	Gateway  PaymentGateway
	Currency string

	// now is overridable in tests.
	now func() time.Time
}

func (s *DefaultBookingService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *DefaultBookingService) currency() string {
	if s.Currency == "" {
		return "inr"
	}
	return s.Currency
}
