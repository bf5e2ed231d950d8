package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"

	"tidyjacks/internal/domain"
	"tidyjacks/internal/modules/pricing"
)

// VerifiedPayment is the outcome of a successful verification: the amount
// and intent id as read back from the provider, never from the client.
type VerifiedPayment struct {
	IntentID    string
	AmountCents int64
	PaymentType domain.PaymentType
	// Processing is true for async methods (e.g. Afterpay) that have not
	// settled yet; status is still advanced provisionally and a webhook
	// confirms or reverses it later.
	Processing bool
}

// Verifier checks a claimed payment intent against the pricing table and
// the provider's own record of the charge. It never mutates state; callers
// persist only after it returns cleanly.
type Verifier struct {
	gw      gateway
	loggerf func(format string, args ...interface{})
}

func NewVerifier(gw gateway, loggerf func(format string, args ...interface{})) *Verifier {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Verifier{gw: gw, loggerf: loggerf}
}

// Verify fetches the intent and checks status, amount and currency for the
// given service. paymentType may be "deposit", "full" or empty; when empty
// the amount must exactly match either the deposit or the full price;
// anything else is rejected rather than guessed at.
func (v *Verifier) Verify(ctx context.Context, serviceCode, paymentType, intentID string) (*VerifiedPayment, error) {
	if v.gw == nil {
		return nil, ErrNotConfigured
	}
	fullPrice, err := pricing.PriceCents(serviceCode)
	if err != nil {
		return nil, err
	}
	deposit := pricing.DepositCents(fullPrice)

	pi, err := v.gw.GetPaymentIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusProcessing:
	default:
		v.loggerf("level=info msg=payment rejected intent_id=%s status=%s", pi.ID, pi.Status)
		return nil, ErrPaymentNotCompleted
	}

	var expected int64
	resolvedType := domain.PaymentType(paymentType)
	switch paymentType {
	case "deposit":
		expected = deposit
	case "full":
		expected = fullPrice
	case "":
		switch pi.Amount {
		case deposit:
			expected, resolvedType = deposit, domain.PaymentTypeDeposit
		case fullPrice:
			expected, resolvedType = fullPrice, domain.PaymentTypeFull
		default:
			v.loggerf("level=error msg=payment amount matches neither deposit nor full intent_id=%s amount=%d deposit=%d full=%d",
				pi.ID, pi.Amount, deposit, fullPrice)
			return nil, ErrAmountMismatch
		}
	default:
		return nil, ErrAmountMismatch
	}

	if pi.Amount != expected {
		v.loggerf("level=error msg=payment amount mismatch intent_id=%s expected=%d actual=%d", pi.ID, expected, pi.Amount)
		return nil, ErrAmountMismatch
	}

	if string(pi.Currency) != pricing.Currency {
		v.loggerf("level=error msg=payment currency mismatch intent_id=%s currency=%s", pi.ID, pi.Currency)
		return nil, ErrCurrencyMismatch
	}

	return &VerifiedPayment{
		IntentID:    pi.ID,
		AmountCents: pi.Amount,
		PaymentType: resolvedType,
		Processing:  pi.Status == stripe.PaymentIntentStatusProcessing,
	}, nil
}
