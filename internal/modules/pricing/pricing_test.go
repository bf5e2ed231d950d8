package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tidyjacks/internal/domain"
)

func TestPriceCents_KnownServices(t *testing.T) {
	p, err := PriceCents("small_home")
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), p)

	p, err = PriceCents("small_shopfront")
	assert.NoError(t, err)
	assert.Equal(t, int64(2500), p)
}

func TestPriceCents_UnknownService(t *testing.T) {
	_, err := PriceCents("submarine_windows")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestDepositCents_ThirtyPercent(t *testing.T) {
	// Above the $100 mark no clamping triggers: deposit is exactly 30%.
	assert.Equal(t, int64(6000), DepositCents(20000))
	assert.Equal(t, int64(8100), DepositCents(27000))
	assert.Equal(t, int64(10800), DepositCents(36000))
}

func TestDepositCents_MinimumFloor(t *testing.T) {
	// 30% of $60 is $18, floored at $30.
	assert.Equal(t, int64(3000), DepositCents(6000))
	assert.Equal(t, int64(3000), DepositCents(9000))
}

func TestDepositCents_CappedAtFullPrice(t *testing.T) {
	// $25 service: floor would exceed the price, so deposit == full price.
	assert.Equal(t, int64(2500), DepositCents(2500))
}

func TestDepositCents_Invariants(t *testing.T) {
	for _, full := range []int64{100, 2500, 3000, 3500, 6000, 9999, 15000, 20000, 36000} {
		d := DepositCents(full)
		assert.Greater(t, d, int64(0), "full=%d", full)
		assert.LessOrEqual(t, d, full, "full=%d", full)
	}
}

func TestDepositAvailable(t *testing.T) {
	assert.True(t, DepositAvailable("small_home"))
	assert.False(t, DepositAvailable("small_shopfront"), "clamped deposit equals full price")
	assert.False(t, DepositAvailable("nonexistent"))
}

func TestStatusForAmount(t *testing.T) {
	full := int64(20000)
	deposit := int64(6000)

	assert.Equal(t, domain.PaymentPaidInFull, StatusForAmount(full, full, deposit))
	assert.Equal(t, domain.PaymentPaidInFull, StatusForAmount(full+100, full, deposit))
	assert.Equal(t, domain.PaymentDepositPaid, StatusForAmount(deposit, full, deposit))
	assert.Equal(t, domain.PaymentDepositPaid, StatusForAmount(full-1, full, deposit))
	assert.Equal(t, domain.PaymentUnpaid, StatusForAmount(deposit-1, full, deposit))
	assert.Equal(t, domain.PaymentUnpaid, StatusForAmount(0, full, deposit))
}
