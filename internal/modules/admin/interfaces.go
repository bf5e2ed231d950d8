package admin

import (
	"context"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/repository"
)

type bookingStore interface {
	GetAllWithCustomers(ctx context.Context) ([]repository.BookingWithCustomer, error)
	GetWithBalance(ctx context.Context) ([]repository.BookingWithCustomer, error)
	FindByRef(ctx context.Context, ref string) (*domain.Booking, error)
	UpdatePaymentByRef(ctx context.Context, ref string, status domain.PaymentStatus, amountPaidCents int64, intentID string) (*domain.Booking, error)
}

type customerStore interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}
