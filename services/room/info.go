package room

import (
	"fmt"
	"strings"
)

// Static hotel metadata served by the info endpoint.
const (
	hotelName          = "Grand Hotel"
	hotelAddress       = "123 Main Street, Downtown, City 12345"
	hotelPhone         = "+1-555-HOTEL-00"
	checkInTime        = "3:00 PM"
	checkOutTime       = "11:00 AM"
	earlyCheckInFee    = 50
	lateCheckOutFee    = 50
	parkingSelf        = 15
	parkingValet       = 25
	cancellationPolicy = "Free cancellation up to 24 hours before check-in"
)

// HotelInfo returns a subset of the static hotel metadata. section is one
// of "timings", "location", "policies" or "all".
func (s *DefaultCatalogService) HotelInfo(section string) map[string]any {
	switch strings.ToLower(section) {
	case "timings":
		return map[string]any{
			"check_in_time":  checkInTime,
			"check_out_time": checkOutTime,
			"message":        fmt.Sprintf("Check-in is at %s and checkout is at %s.", checkInTime, checkOutTime),
		}
	case "location":
		return map[string]any{
			"hotel_name": hotelName,
			"address":    hotelAddress,
			"phone":      hotelPhone,
			"message":    fmt.Sprintf("We are located at %s.", hotelAddress),
		}
	case "policies":
		return map[string]any{
			"cancellation_policy": cancellationPolicy,
			"parking_self":        parkingSelf,
			"parking_valet":       parkingValet,
			"message":             cancellationPolicy,
		}
	default:
		return map[string]any{
			"hotel_name":          hotelName,
			"address":             hotelAddress,
			"phone":               hotelPhone,
			"check_in_time":       checkInTime,
			"check_out_time":      checkOutTime,
			"early_check_in_fee":  earlyCheckInFee,
			"late_check_out_fee":  lateCheckOutFee,
			"parking_self":        parkingSelf,
			"parking_valet":       parkingValet,
			"cancellation_policy": cancellationPolicy,
			"tax_rate":            12.5,
			"message": fmt.Sprintf("Check-in is at %s and checkout is at %s. %s.",
				checkInTime, checkOutTime, cancellationPolicy),
		}
	}
}
