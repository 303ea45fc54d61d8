package models

// PaymentIntentRequest asks the gateway for a remote payment intent.
type PaymentIntentRequest struct {
	Amount   int64 // minor currency units
	Currency string
	Receipt  string
	Metadata map[string]string
}

// PaymentIntent is the gateway's reply.
type PaymentIntent struct {
	OrderID      string
	Currency     string
	ClientSecret string
}

// MailMessage is an outbound email handed to the mail worker.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
