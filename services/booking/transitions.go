package booking

import (
	"math"
	"strings"

	"tourbook/models"
)

// ParsePaymentType accepts the plan names and their percentage aliases.
func ParsePaymentType(raw string) (models.PaymentType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "half", "50":
		return models.PaymentHalf, true
	case "full", "100":
		return models.PaymentFull, true
	default:
		return "", false
	}
}

// TotalAmountFor returns the full package value implied by a plan. A half
// plan's amount is exactly the deposit, so the total is double it.
func TotalAmountFor(pt models.PaymentType, amount float64) float64 {
	if pt == models.PaymentHalf {
		return amount * 2
	}
	return amount
}

// ToMinorUnits converts an amount to the gateway's minor currency unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ApplyConfirmation transitions b for a confirmation of plan pt. The quoted
// amount is treated as captured in full.
func ApplyConfirmation(b *models.Booking, pt models.PaymentType, paymentID, orderID string) error {
	var status models.PaymentStatus
	switch pt {
	case models.PaymentHalf:
		status = models.StatusPartial
	case models.PaymentFull:
		status = models.StatusPaid
	default:
		return errUnrecognizedPaymentType
	}
	b.PaidAmount = b.Amount
	b.PaymentStatus = status
	b.GatewayPaymentID = paymentID
	b.GatewayOrderID = orderID
	return nil
}

// ApplyRemainingPayment settles a half-plan booking.
func ApplyRemainingPayment(b *models.Booking) error {
	if b.PaymentType != models.PaymentHalf {
		return errFullPaymentDone
	}
	if b.PaidAmount >= b.Amount {
		return errAlreadyFullyPaid
	}
	b.PaidAmount = b.Amount
	b.PaymentStatus = models.StatusPaid
	return nil
}

// InventoryIncrement is the number of participants a confirmed booking adds
// to its package's bookingsCount: all of them once paid, none otherwise.
func InventoryIncrement(b models.Booking) int {
	if b.PaymentStatus != models.StatusPaid {
		return 0
	}
	return len(b.Participants)
}
