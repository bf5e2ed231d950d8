package booking

import (
	"context"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/modules/payment"
)

type bookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByRef(ctx context.Context, ref string) (*domain.Booking, error)
}

type customerStore interface {
	FindOrCreateByEmail(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type paymentVerifier interface {
	Verify(ctx context.Context, serviceCode, paymentType, intentID string) (*payment.VerifiedPayment, error)
}
