package booking

import "roomi/models"

// BookingService exposes the reservation operations behind the REST API and
// the conversational tool surface.
type BookingService interface {
	CreateBooking(input models.BookingCreate) (*models.BookingResponse, error)
	GetBooking(confirmationNumber string) (*models.Booking, error)
	SearchByName(guestName string) ([]models.Booking, error)
	CancelBooking(confirmationNumber, reason string) (*models.CancelBookingResponse, error)
	ListBookings(status string, limit int64) ([]models.Booking, error)
}
