package photos

import (
	"context"

	"tidyjacks/internal/domain"
)

type photoStore interface {
	Create(ctx context.Context, p *domain.Photo) error
	GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Photo, error)
}

type bookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindByRef(ctx context.Context, ref string) (*domain.Booking, error)
	ClaimPhotosEmail(ctx context.Context, bookingID int64) (bool, error)
}

type customerStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}
