package pricing

// minDepositCents is the floor for a deposit: $30.
const minDepositCents int64 = 3000

// DepositCents computes the upfront deposit for a full price: 30% of the
// full price, floored at $30, capped at the full price itself. The result
// satisfies 0 < deposit <= fullPrice for every positive fullPrice.
func DepositCents(fullPriceCents int64) int64 {
	d := (fullPriceCents*30 + 50) / 100 // round half up
	if d < minDepositCents {
		d = minDepositCents
	}
	if d > fullPriceCents {
		d = fullPriceCents
	}
	return d
}

// DepositAvailable reports whether a service is worth offering a deposit
// for. Cheap services whose clamped deposit equals the full price are
// full-payment-only.
func DepositAvailable(serviceCode string) bool {
	full, err := PriceCents(serviceCode)
	if err != nil {
		return false
	}
	return DepositCents(full) < full
}
