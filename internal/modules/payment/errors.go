package payment

import "errors"

var (
	// ErrNotConfigured means Stripe credentials are absent; payment
	// endpoints report unavailable rather than failing obscurely.
	ErrNotConfigured = errors.New("stripe is not configured")

	// ErrPaymentNotCompleted rejects intents in any status other than
	// succeeded or processing.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrAmountMismatch rejects a payment whose amount is not exactly the
	// expected deposit or full price.
	ErrAmountMismatch = errors.New("payment amount verification failed")

	// ErrCurrencyMismatch rejects anything not charged in the operating
	// currency.
	ErrCurrencyMismatch = errors.New("invalid payment currency")

	// ErrInvalidSignature rejects webhook payloads that fail signature
	// verification; no state changes on this path.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrProviderUnavailable wraps provider lookups that failed outright.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
