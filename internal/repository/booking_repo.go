package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tidyjacks/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                    int64      `gorm:"column:id;primaryKey"`
	CustomerID            int64      `gorm:"column:customer_id;index"`
	BookingRef            string     `gorm:"column:booking_id;uniqueIndex"`
	ServiceType           string     `gorm:"column:service_type"`
	ServiceName           string     `gorm:"column:service_name"`
	TotalAmountCents      int64      `gorm:"column:total_amount_cents"`
	BookingDate           string     `gorm:"column:booking_date"`
	TimeSlot              string     `gorm:"column:time_slot"`
	Notes                 *string    `gorm:"column:notes"`
	PaymentType           string     `gorm:"column:payment_type"`
	DepositRequired       bool       `gorm:"column:deposit_required"`
	DepositCents          int64      `gorm:"column:deposit_cents"`
	AmountPaidCents       int64      `gorm:"column:amount_paid_cents"`
	PaymentStatus         string     `gorm:"column:payment_status;index"`
	StripePaymentIntentID *string    `gorm:"column:stripe_payment_intent_id;index"`
	PhotosEmailedAt       *time.Time `gorm:"column:photos_emailed_at"`
	CreatedAt             time.Time  `gorm:"column:created_at"`
	UpdatedAt             time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		BookingRef:       m.BookingRef,
		ServiceType:      m.ServiceType,
		ServiceName:      m.ServiceName,
		TotalAmountCents: m.TotalAmountCents,
		BookingDate:      m.BookingDate,
		TimeSlot:         m.TimeSlot,
		PaymentType:      domain.PaymentType(m.PaymentType),
		DepositRequired:  m.DepositRequired,
		DepositCents:     m.DepositCents,
		AmountPaidCents:  m.AmountPaidCents,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		PhotosEmailedAt:  m.PhotosEmailedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Notes != nil {
		b.Notes = *m.Notes
	}
	if m.StripePaymentIntentID != nil {
		b.StripePaymentIntent = *m.StripePaymentIntentID
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		BookingRef:       b.BookingRef,
		ServiceType:      b.ServiceType,
		ServiceName:      b.ServiceName,
		TotalAmountCents: b.TotalAmountCents,
		BookingDate:      b.BookingDate,
		TimeSlot:         b.TimeSlot,
		PaymentType:      string(b.PaymentType),
		DepositRequired:  b.DepositRequired,
		DepositCents:     b.DepositCents,
		AmountPaidCents:  b.AmountPaidCents,
		PaymentStatus:    string(b.PaymentStatus),
		PhotosEmailedAt:  b.PhotosEmailedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if b.Notes != "" {
		v := b.Notes
		m.Notes = &v
	}
	if b.StripePaymentIntent != "" {
		v := b.StripePaymentIntent
		m.StripePaymentIntentID = &v
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// FindByRef looks a booking up by its human-readable TJ reference.
func (r *BookingRepository) FindByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", ref).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// FindByIntentID returns the booking attached to a provider payment
// intent, or nil when the webhook outran the booking submission.
func (r *BookingRepository) FindByIntentID(ctx context.Context, intentID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("stripe_payment_intent_id = ?", intentID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// BookingWithCustomer joins a booking to its customer for admin listings.
type BookingWithCustomer struct {
	Booking  domain.Booking
	Customer *domain.Customer
}

func (r *BookingRepository) GetAllWithCustomers(ctx context.Context) ([]BookingWithCustomer, error) {
	return r.listWithCustomers(ctx, false)
}

// GetWithBalance returns only bookings that still owe money.
func (r *BookingRepository) GetWithBalance(ctx context.Context) ([]BookingWithCustomer, error) {
	return r.listWithCustomers(ctx, true)
}

func (r *BookingRepository) listWithCustomers(ctx context.Context, onlyOutstanding bool) ([]BookingWithCustomer, error) {
	var ms []bookingModel
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if onlyOutstanding {
		q = q.Where("total_amount_cents > amount_paid_cents")
	}
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingWithCustomer, 0, len(ms))
	for _, m := range ms {
		row := BookingWithCustomer{Booking: *toDomainBooking(m)}
		var cm customerModel
		if tx := r.db.WithContext(ctx).First(&cm, m.CustomerID); tx.Error == nil {
			row.Customer = toDomainCustomer(cm)
		}
		out = append(out, row)
	}
	return out, nil
}

// UpdatePaymentByRef overwrites the payment fields of a booking, used by the
// admin manual-correction path. Returns the updated booking or nil when the
// reference is unknown.
func (r *BookingRepository) UpdatePaymentByRef(ctx context.Context, ref string, status domain.PaymentStatus, amountPaidCents int64, intentID string) (*domain.Booking, error) {
	updates := map[string]interface{}{
		"payment_status":    string(status),
		"amount_paid_cents": amountPaidCents,
		"updated_at":        time.Now().UTC(),
	}
	if intentID != "" {
		updates["stripe_payment_intent_id"] = intentID
	}
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("booking_id = ?", ref).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByRef(ctx, ref)
}

// ApplyPaymentOutcome advances the booking matching the payment intent in a
// single conditional UPDATE: the paid amount is monotonic, so a stale or
// replayed webhook can never regress a status. Returns whether a row moved.
func (r *BookingRepository) ApplyPaymentOutcome(ctx context.Context, intentID string, amountPaidCents int64, status domain.PaymentStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("stripe_payment_intent_id = ? AND amount_paid_cents <= ?", intentID, amountPaidCents).
		Updates(map[string]interface{}{
			"payment_status":    string(status),
			"amount_paid_cents": amountPaidCents,
			"updated_at":        time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkFailedByIntent flags the booking failed without touching the paid
// amount: a failed later attempt must not erase a prior partial payment.
func (r *BookingRepository) MarkFailedByIntent(ctx context.Context, intentID string) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("stripe_payment_intent_id = ?", intentID).
		Updates(map[string]interface{}{
			"payment_status": string(domain.PaymentFailed),
			"updated_at":     time.Now().UTC(),
		})
	return tx.Error
}

// ClaimPhotosEmail marks the booking's photo email as sent, once. The NULL
// guard makes the claim first-wins under concurrent uploads.
func (r *BookingRepository) ClaimPhotosEmail(ctx context.Context, bookingID int64) (bool, error) {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND photos_emailed_at IS NULL", bookingID).
		Update("photos_emailed_at", now)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
