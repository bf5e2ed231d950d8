package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	"tidyjacks/internal/domain"
)

type gateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, metadata map[string]string, description string) (*stripe.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

type intentLedger interface {
	ClaimSucceeded(ctx context.Context, intentID string, amountCents int64, rawPayload string) (bool, error)
	RecordFailure(ctx context.Context, intentID string, amountCents int64, rawPayload string) error
}

type bookingReconciler interface {
	FindByIntentID(ctx context.Context, intentID string) (*domain.Booking, error)
	ApplyPaymentOutcome(ctx context.Context, intentID string, amountPaidCents int64, status domain.PaymentStatus) (bool, error)
	MarkFailedByIntent(ctx context.Context, intentID string) error
}
