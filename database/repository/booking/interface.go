package bookingRepo

import (
	"context"
	"errors"

	"tourbook/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID returns (nil, nil) when the booking does not exist.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdatePayment persists the payment lifecycle fields of booking.
	UpdatePayment(ctx context.Context, booking *models.Booking) error
	// ListByUser returns a user's bookings, most recent first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListAll returns every booking, most recent first.
	ListAll(ctx context.Context) ([]models.Booking, error)
}
