package booking

import (
	"math"
	"strings"
)

// TaxRate is the flat tax applied to the room subtotal.
const TaxRate = 0.125

// FixedNights is the stay length used for every quote.
// TODO: derive nights from check_in/check_out once those are parsed as dates.
const FixedNights = 5

// DefaultRate is the mid-tier nightly rate used for unknown room categories.
const DefaultRate = 150

// roomRates maps lowercase room category names to their flat nightly rate.
var roomRates = map[string]float64{
	"standard":  120,
	"deluxe":    150,
	"suite":     220,
	"executive": 350,
	"family":    250,
}

// StayQuote is the priced breakdown of a stay.
type StayQuote struct {
	RatePerNight float64
	RoomTotal    float64
	Taxes        float64
	GrandTotal   float64
}

// RateFor returns the nightly rate for a room category, falling back to
// DefaultRate for unknown categories.
func RateFor(roomType string) float64 {
	if rate, ok := roomRates[normalizeCategory(roomType)]; ok {
		return rate
	}
	return DefaultRate
}

// PriceStay computes the rate, subtotal, taxes and grand total for a stay.
func PriceStay(roomType string, nights int) StayQuote {
	rate := RateFor(roomType)
	roomTotal := rate * float64(nights)
	taxes := round2(roomTotal * TaxRate)
	return StayQuote{
		RatePerNight: rate,
		RoomTotal:    roomTotal,
		Taxes:        taxes,
		GrandTotal:   roomTotal + taxes,
	}
}

func normalizeCategory(roomType string) string {
	return strings.ToLower(strings.TrimSpace(roomType))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
