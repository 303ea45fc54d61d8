package models

import "time"

type PaymentType string

const (
	PaymentHalf PaymentType = "half"
	PaymentFull PaymentType = "full"
)

type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Participant struct {
	Name   string `bson:"name" json:"name"`
	Age    *int   `bson:"age,omitempty" json:"age,omitempty"`
	Gender Gender `bson:"gender" json:"gender"`
}

// Booking is one customer's reservation of a package.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	UserID           string        `bson:"user" json:"user"`
	PackageID        string        `bson:"package" json:"package"`
	Participants     []Participant `bson:"participants" json:"participants"`
	ContactEmail     string        `bson:"contactEmail" json:"contactEmail"`
	ContactPhone     string        `bson:"contactPhone" json:"contactPhone"`
	Amount           float64       `bson:"amount" json:"amount"`
	TotalAmount      float64       `bson:"totalAmount" json:"totalAmount"`
	PaidAmount       float64       `bson:"paidAmount" json:"paidAmount"`
	PaymentType      PaymentType   `bson:"paymentType" json:"paymentType"`
	StartingDate     time.Time     `bson:"startingDate" json:"startingDate"`
	PaymentStatus    PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	Currency         string        `bson:"currency,omitempty" json:"currency,omitempty"`
	GatewayOrderID   string        `bson:"gatewayOrderId,omitempty" json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string        `bson:"gatewayPaymentId,omitempty" json:"gatewayPaymentId,omitempty"`
	BookedAt         time.Time     `bson:"bookedAt" json:"bookedAt"`
}

// BookingView is a booking with its owner and package resolved.
type BookingView struct {
	Booking
	Package *PackageSummary `json:"packageDetails,omitempty"`
	Owner   *UserSummary    `json:"owner,omitempty"`
}

// InitiateBookingRequest is the raw create-order payload.
type InitiateBookingRequest struct {
	PackageID    string        `json:"packageId"`
	Participants []Participant `json:"participants"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone string        `json:"contactPhone"`
	Amount       float64       `json:"amount"`
	PaymentType  string        `json:"paymentType"`
	StartingDate string        `json:"startingDate"`
}

// InitiateBookingResult echoes the submitted order with the gateway reference.
type InitiateBookingResult struct {
	BookingID    string        `json:"bookingId"`
	OrderID      string        `json:"orderId"`
	ClientSecret string        `json:"clientSecret,omitempty"`
	Currency     string        `json:"currency"`
	Amount       float64       `json:"amount"`
	TotalAmount  float64       `json:"totalAmount"`
	PaymentType  PaymentType   `json:"paymentType"`
	PackageID    string        `json:"packageId"`
	Participants []Participant `json:"participants"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone string        `json:"contactPhone"`
	StartingDate time.Time     `json:"startingDate"`
}

// ConfirmPaymentRequest is the client-supplied gateway confirmation.
type ConfirmPaymentRequest struct {
	PaymentID   string `json:"paymentId"`
	OrderID     string `json:"orderId"`
	BookingID   string `json:"bookingId"`
	PaymentType string `json:"paymentType"`
}
