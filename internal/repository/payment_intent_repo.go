package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tidyjacks/internal/domain"
)

type PaymentIntentRepository struct {
	db *gorm.DB
}

func NewPaymentIntentRepository(db *gorm.DB) *PaymentIntentRepository {
	return &PaymentIntentRepository{db: db}
}

type paymentIntentModel struct {
	IntentID           string     `gorm:"column:intent_id;primaryKey"`
	Status             string     `gorm:"column:status"`
	AmountCents        int64      `gorm:"column:amount_cents"`
	RawPayload         string     `gorm:"column:raw_payload"`
	ConfirmationSentAt *time.Time `gorm:"column:confirmation_sent_at"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (paymentIntentModel) TableName() string { return "payment_intents" }

// ClaimSucceeded records that an intent reached succeeded and claims the
// right to send its confirmation email. Returns true exactly once per
// intent id no matter how many times the provider re-delivers the event:
// the insert is conflict-tolerant and the claim is a NULL-guarded UPDATE.
func (r *PaymentIntentRepository) ClaimSucceeded(ctx context.Context, intentID string, amountCents int64, rawPayload string) (bool, error) {
	now := time.Now().UTC()
	m := paymentIntentModel{
		IntentID:    intentID,
		Status:      string(domain.IntentSucceeded),
		AmountCents: amountCents,
		RawPayload:  rawPayload,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "intent_id"}}, DoNothing: true}).
		Create(&m)
	if tx.Error != nil {
		return false, tx.Error
	}

	tx = r.db.WithContext(ctx).Model(&paymentIntentModel{}).
		Where("intent_id = ? AND confirmation_sent_at IS NULL", intentID).
		Updates(map[string]interface{}{
			"status":               string(domain.IntentSucceeded),
			"amount_cents":         amountCents,
			"confirmation_sent_at": now,
			"updated_at":           now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// RecordFailure stores a failed outcome for audit. A succeeded intent is
// never downgraded.
func (r *PaymentIntentRepository) RecordFailure(ctx context.Context, intentID string, amountCents int64, rawPayload string) error {
	now := time.Now().UTC()
	m := paymentIntentModel{
		IntentID:    intentID,
		Status:      string(domain.IntentFailed),
		AmountCents: amountCents,
		RawPayload:  rawPayload,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "intent_id"}}, DoNothing: true}).
		Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	tx = r.db.WithContext(ctx).Model(&paymentIntentModel{}).
		Where("intent_id = ? AND status <> ?", intentID, string(domain.IntentSucceeded)).
		Updates(map[string]interface{}{
			"status":       string(domain.IntentFailed),
			"raw_payload":  rawPayload,
			"updated_at":   now,
			"amount_cents": amountCents,
		})
	return tx.Error
}

func (r *PaymentIntentRepository) GetByIntentID(ctx context.Context, intentID string) (*domain.PaymentIntentRecord, error) {
	var m paymentIntentModel
	tx := r.db.WithContext(ctx).Where("intent_id = ?", intentID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.PaymentIntentRecord{
		IntentID:           m.IntentID,
		Status:             domain.IntentStatus(m.Status),
		AmountCents:        m.AmountCents,
		RawPayload:         m.RawPayload,
		ConfirmationSentAt: m.ConfirmationSentAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}
