package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"tidyjacks/internal/modules/pricing"
)

// StripeGateway is the real provider implementation behind the gateway
// interface.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, webhookSecret: webhookSecret}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountCents int64, metadata map[string]string, description string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(pricing.Currency),
		// Afterpay alongside cards; async methods land via webhook later.
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "afterpay_clearpay"}),
		Description:        stripe.String(description),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	return g.api.PaymentIntents.New(params)
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	return g.api.PaymentIntents.Get(id, params)
}

// ConstructEvent verifies the webhook signature and parses the event. It
// must run before anything else looks at the payload.
func (g *StripeGateway) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
}
