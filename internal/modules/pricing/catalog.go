// Package pricing is the single source of truth for money amounts. All
// prices are integer cents; client-supplied amounts are advisory and are
// never read by anything in this package.
package pricing

import (
	"errors"
	"fmt"
)

var ErrUnknownService = errors.New("unknown service type")

// Currency is the only currency the business transacts in.
const Currency = "aud"

// catalog maps service code to full price in cents.
var catalog = map[string]int64{
	// Residential homes (inside & out)
	"apartmentflat": 15000,
	"small_home":    20000,
	"large_home":    27000,
	"twostory_3bed": 32000,
	"twostory_4bed": 36000,
	// Residential homes (exterior only, 60% of full price)
	"apartmentflat_ext": 9000,
	"small_home_ext":    12000,
	"large_home_ext":    16200,
	"twostory_3bed_ext": 19200,
	"twostory_4bed_ext": 21600,
	// Retail storefronts
	"small_shopfront": 2500,
	"shopfront_full":  3500,
	"deepclean":       6000,
}

var serviceNames = map[string]string{
	"apartmentflat":     "Apartment/Flat Windows (Inside & Out)",
	"small_home":        "Small Single-Storey Home (2-3 bed)",
	"large_home":        "Large Single-Storey Home (4+ bed)",
	"twostory_3bed":     "Two-Storey Home (3 bed)",
	"twostory_4bed":     "Two-Storey Home (4+ bed)",
	"apartmentflat_ext": "Apartment/Flat Windows (Exterior Only)",
	"small_home_ext":    "Small Home Windows (Exterior Only)",
	"large_home_ext":    "Large Home Windows (Exterior Only)",
	"twostory_3bed_ext": "Two-Storey Home Windows (Exterior Only)",
	"twostory_4bed_ext": "Two-Storey Home Windows (Exterior Only)",
	"small_shopfront":   "Small Shopfront (Outside Only)",
	"shopfront_full":    "Shopfront (Inside & Outside)",
	"deepclean":         "One-off Deep Clean",
}

// Storefront and deep-clean jobs are quoted "from" their base price.
var fromPriced = map[string]bool{
	"small_shopfront": true,
	"shopfront_full":  true,
	"deepclean":       true,
}

// PriceCents returns the full price for a service code.
func PriceCents(serviceCode string) (int64, error) {
	p, ok := catalog[serviceCode]
	if !ok {
		return 0, ErrUnknownService
	}
	return p, nil
}

// ServiceName returns the display name for a service code, falling back to
// the code itself for resilience in email rendering.
func ServiceName(serviceCode string) string {
	if n, ok := serviceNames[serviceCode]; ok {
		return n
	}
	return serviceCode
}

// PriceLabel renders the display price, e.g. "$200" or "From $25".
func PriceLabel(serviceCode string) string {
	p, ok := catalog[serviceCode]
	if !ok {
		return ""
	}
	label := fmt.Sprintf("$%d", p/100)
	if fromPriced[serviceCode] {
		return "From " + label
	}
	return label
}

// KnownService reports whether the code exists in the catalog.
func KnownService(serviceCode string) bool {
	_, ok := catalog[serviceCode]
	return ok
}
