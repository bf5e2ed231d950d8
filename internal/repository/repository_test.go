package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidyjacks/internal/database"
	"tidyjacks/internal/domain"
)

func setupDB(t *testing.T) (*BookingRepository, *CustomerRepository, *PaymentIntentRepository) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewBookingRepository(db), NewCustomerRepository(db), NewPaymentIntentRepository(db)
}

func seedBooking(t *testing.T, bookings *BookingRepository, customers *CustomerRepository) *domain.Booking {
	t.Helper()
	ctx := context.Background()
	c, err := customers.FindOrCreateByEmail(ctx, &domain.Customer{Name: "Jane Smith", Email: "jane@example.com"})
	require.NoError(t, err)

	b := &domain.Booking{
		CustomerID:          c.ID,
		BookingRef:          "TJ1756500000000",
		ServiceType:         "small_home",
		ServiceName:         "Small Single-Storey Home (2-3 bed)",
		TotalAmountCents:    20000,
		DepositCents:        6000,
		PaymentStatus:       domain.PaymentUnpaid,
		StripePaymentIntent: "pi_1",
		BookingDate:         "2026-09-14",
		TimeSlot:            "weekend_morning",
	}
	require.NoError(t, bookings.Create(ctx, b))
	return b
}

func TestFindOrCreateByEmail_Reuses(t *testing.T) {
	_, customers, _ := setupDB(t)
	ctx := context.Background()

	first, err := customers.FindOrCreateByEmail(ctx, &domain.Customer{Name: "Jane Smith", Email: "jane@example.com"})
	require.NoError(t, err)
	second, err := customers.FindOrCreateByEmail(ctx, &domain.Customer{Name: "J. Smith", Email: "jane@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	// The original record wins; a later booking does not rename the customer.
	assert.Equal(t, "Jane Smith", second.Name)
}

func TestApplyPaymentOutcome_Monotonic(t *testing.T) {
	bookings, customers, _ := setupDB(t)
	ctx := context.Background()
	seedBooking(t, bookings, customers)

	moved, err := bookings.ApplyPaymentOutcome(ctx, "pi_1", 6000, domain.PaymentDepositPaid)
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = bookings.ApplyPaymentOutcome(ctx, "pi_1", 20000, domain.PaymentPaidInFull)
	require.NoError(t, err)
	assert.True(t, moved)

	// A stale replay carrying the old, lower amount must not regress.
	moved, err = bookings.ApplyPaymentOutcome(ctx, "pi_1", 6000, domain.PaymentDepositPaid)
	require.NoError(t, err)
	assert.False(t, moved)

	b, err := bookings.FindByIntentID(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), b.AmountPaidCents)
	assert.Equal(t, domain.PaymentPaidInFull, b.PaymentStatus)
}

func TestMarkFailedByIntent_KeepsAmount(t *testing.T) {
	bookings, customers, _ := setupDB(t)
	ctx := context.Background()
	seedBooking(t, bookings, customers)

	moved, err := bookings.ApplyPaymentOutcome(ctx, "pi_1", 6000, domain.PaymentDepositPaid)
	require.NoError(t, err)
	require.True(t, moved)

	require.NoError(t, bookings.MarkFailedByIntent(ctx, "pi_1"))

	b, err := bookings.FindByIntentID(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, b.PaymentStatus)
	assert.Equal(t, int64(6000), b.AmountPaidCents)
}

func TestClaimPhotosEmail_FirstWins(t *testing.T) {
	bookings, customers, _ := setupDB(t)
	ctx := context.Background()
	b := seedBooking(t, bookings, customers)

	won, err := bookings.ClaimPhotosEmail(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = bookings.ClaimPhotosEmail(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, won)
}

func TestClaimSucceeded_OncePerIntent(t *testing.T) {
	_, _, intents := setupDB(t)
	ctx := context.Background()

	first, err := intents.ClaimSucceeded(ctx, "pi_9", 6000, `{"id":"pi_9"}`)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := intents.ClaimSucceeded(ctx, "pi_9", 6000, `{"id":"pi_9"}`)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestRecordFailure_NeverDowngradesSuccess(t *testing.T) {
	_, _, intents := setupDB(t)
	ctx := context.Background()

	_, err := intents.ClaimSucceeded(ctx, "pi_9", 6000, "{}")
	require.NoError(t, err)
	require.NoError(t, intents.RecordFailure(ctx, "pi_9", 6000, "{}"))

	rec, err := intents.GetByIntentID(ctx, "pi_9")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentSucceeded, rec.Status)
}

func TestGetWithBalance_FiltersSettled(t *testing.T) {
	bookings, customers, _ := setupDB(t)
	ctx := context.Background()
	seedBooking(t, bookings, customers)

	moved, err := bookings.ApplyPaymentOutcome(ctx, "pi_1", 20000, domain.PaymentPaidInFull)
	require.NoError(t, err)
	require.True(t, moved)

	rows, err := bookings.GetWithBalance(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	all, err := bookings.GetAllWithCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "jane@example.com", all[0].Customer.Email)
}
