package bookingRepo

import (
	"errors"

	"roomi/models"
)

// Sentinel errors surfaced by the repository.
var (
	// ErrNotFound means no booking exists for the confirmation number.
	ErrNotFound = errors.New("booking not found")
	// ErrAlreadyCancelled means the booking exists but is already cancelled.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	// ErrDuplicateConfirmation means an insert collided on confirmation_number.
	ErrDuplicateConfirmation = errors.New("duplicate confirmation number")
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByConfirmation(confirmationNumber string) (*models.Booking, error)
	SearchByName(guestName string) ([]models.Booking, error)
	Cancel(confirmationNumber, reference, reason string) (*models.Booking, error)
	List(status string, limit int64) ([]models.Booking, error)
}
