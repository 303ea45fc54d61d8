package booking

import (
	"strings"
	"time"

	"tourbook/models"
	"tourbook/utils"
)

var (
	errUnrecognizedPaymentType = utils.InvalidInput("paymentType", "unrecognized payment type")
	errFullPaymentDone         = utils.InvalidInput("paymentType", "full payment already done")
	errAlreadyFullyPaid        = utils.InvalidInput("paidAmount", "already fully paid")
)

// orderDetails is a validated create-order request.
type orderDetails struct {
	participants []models.Participant
	email        string
	phone        string
	amount       float64
	paymentType  models.PaymentType
	startingDate time.Time
}

// validateOrder checks every create-order field after the package resolved.
func validateOrder(req models.InitiateBookingRequest) (*orderDetails, error) {
	participants, err := normalizeParticipants(req.Participants)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.ContactEmail)
	if email == "" {
		return nil, utils.InvalidInput("contactEmail", "contactEmail is required")
	}
	if !utils.IsEmail(email) {
		return nil, utils.InvalidInput("contactEmail", "contactEmail must be a valid email address")
	}

	phone := strings.TrimSpace(req.ContactPhone)
	if phone == "" {
		return nil, utils.InvalidInput("contactPhone", "contactPhone is required")
	}
	if !utils.IsTenDigitPhone(phone) {
		return nil, utils.InvalidInput("contactPhone", "contactPhone must be a 10-digit number")
	}

	if req.Amount <= 0 {
		return nil, utils.InvalidInput("amount", "amount must be greater than zero")
	}

	pt, ok := ParsePaymentType(req.PaymentType)
	if !ok {
		return nil, errUnrecognizedPaymentType
	}

	start, err := parseStartingDate(req.StartingDate)
	if err != nil {
		return nil, err
	}

	return &orderDetails{
		participants: participants,
		email:        email,
		phone:        phone,
		amount:       req.Amount,
		paymentType:  pt,
		startingDate: start,
	}, nil
}

func normalizeParticipants(in []models.Participant) ([]models.Participant, error) {
	if len(in) == 0 {
		return nil, utils.InvalidInput("participants", "at least one participant is required")
	}
	out := make([]models.Participant, 0, len(in))
	for _, p := range in {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, utils.InvalidInput("participants", "participant name is required")
		}
		if p.Age != nil && *p.Age < 0 {
			return nil, utils.InvalidInput("participants", "participant age cannot be negative")
		}
		gender := models.Gender(strings.ToLower(strings.TrimSpace(string(p.Gender))))
		switch gender {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
		default:
			return nil, utils.InvalidInput("participants", "participant gender must be male, female or other")
		}
		out = append(out, models.Participant{Name: name, Age: p.Age, Gender: gender})
	}
	return out, nil
}

func parseStartingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, utils.InvalidInput("startingDate", "startingDate is required")
	}
	if t, err := time.Parse(utils.DateLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, utils.InvalidInput("startingDate", "startingDate must be a date (YYYY-MM-DD)")
}
