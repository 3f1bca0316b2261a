package booking

import "errors"

var (
	// ErrBookingNotFound is returned for lookups and cancels against an
	// unknown confirmation number.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAlreadyCancelled is returned when cancelling a booking a second time.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
