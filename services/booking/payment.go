package booking

import (
	"context"
	"fmt"

	"tourbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// PaymentGateway creates remote payment intents. Confirmations arriving
// later are client-supplied and are not verified against the gateway.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error)
}

// StripeGateway is a PaymentGateway backed by Stripe payment intents.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for key. backends may be nil to use Stripe's defaults.
func NewStripeGateway(key string, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(key, backends)
	return &StripeGateway{api: api}
}

// CreateIntent creates a payment intent for req.Amount minor units. The
// receipt doubles as the idempotency key.
func (g *StripeGateway) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	params.Context = ctx
	params.AddMetadata("receipt", req.Receipt)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.SetIdempotencyKey(req.Receipt)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return &models.PaymentIntent{
		OrderID:      pi.ID,
		Currency:     string(pi.Currency),
		ClientSecret: pi.ClientSecret,
	}, nil
}
