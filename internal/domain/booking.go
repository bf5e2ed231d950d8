package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentPaidInFull  PaymentStatus = "paid_in_full"
	PaymentFailed      PaymentStatus = "failed"
	PaymentRefunded    PaymentStatus = "refunded"
)

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeFull    PaymentType = "full"
)

// Booking is the persisted booking entity. Money fields are integer cents;
// TotalAmountCents always comes from the service catalog, never from the
// client. PaymentStatus is derived from the paid amount except for the
// explicit failed/refunded states.
type Booking struct {
	ID                  int64         `json:"id"`
	CustomerID          int64         `json:"customer_id"`
	BookingRef          string        `json:"booking_id"`
	ServiceType         string        `json:"service_type"`
	ServiceName         string        `json:"service_name"`
	TotalAmountCents    int64         `json:"total_amount_cents"`
	BookingDate         string        `json:"booking_date"`
	TimeSlot            string        `json:"time_slot"`
	Notes               string        `json:"notes,omitempty"`
	PaymentType         PaymentType   `json:"payment_type"`
	DepositRequired     bool          `json:"deposit_required"`
	DepositCents        int64         `json:"deposit_cents"`
	AmountPaidCents     int64         `json:"amount_paid_cents"`
	PaymentStatus       PaymentStatus `json:"payment_status"`
	StripePaymentIntent string        `json:"stripe_payment_intent_id,omitempty"`
	PhotosEmailedAt     *time.Time    `json:"photos_emailed_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// RemainingBalanceCents is what the customer still owes on completion.
func (b *Booking) RemainingBalanceCents() int64 {
	return b.TotalAmountCents - b.AmountPaidCents
}
