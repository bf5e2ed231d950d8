package domain

import "time"

type IntentStatus string

const (
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
)

// PaymentIntentRecord mirrors the provider-side payment intent as seen by
// webhooks. It exists so that re-delivered events can be deduplicated by
// intent id: ConfirmationSentAt is claimed at most once per intent.
type PaymentIntentRecord struct {
	IntentID           string       `json:"intent_id"`
	Status             IntentStatus `json:"status"`
	AmountCents        int64        `json:"amount_cents"`
	RawPayload         string       `json:"-"`
	ConfirmationSentAt *time.Time   `json:"confirmation_sent_at,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
