package pricing

import "tidyjacks/internal/domain"

// StatusForAmount derives the payment status from the verified paid amount.
// This is the one derivation rule; booking creation, webhook reconciliation
// and admin manual updates all go through it so that the persisted status
// can never disagree with the paid amount.
func StatusForAmount(paidCents, fullPriceCents, depositCents int64) domain.PaymentStatus {
	switch {
	case paidCents >= fullPriceCents:
		return domain.PaymentPaidInFull
	case paidCents >= depositCents:
		return domain.PaymentDepositPaid
	default:
		return domain.PaymentUnpaid
	}
}
