package models

import "time"

// BookingStatus enumerates the lifecycle states of a reservation.
// Only "confirmed" and "cancelled" are produced today; the rest are
// forward-compatible states for the check-in desk.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents one reservation document.
type Booking struct {
	ConfirmationNumber string        `bson:"confirmation_number" json:"confirmation_number"`
	GuestName          string        `bson:"guest_name" json:"guest_name"`
	Email              string        `bson:"email" json:"email"`
	Phone              string        `bson:"phone" json:"phone"`
	CheckIn            string        `bson:"check_in" json:"check_in"`   // Free-text date as spoken by the guest
	CheckOut           string        `bson:"check_out" json:"check_out"` // Free-text date as spoken by the guest
	Nights             int           `bson:"nights" json:"nights"`
	RoomType           string        `bson:"room_type" json:"room_type"`
	Guests             string        `bson:"guests" json:"guests"`
	RatePerNight       float64       `bson:"rate_per_night" json:"rate_per_night"`
	RoomTotal          float64       `bson:"room_total" json:"room_total"`
	Taxes              float64       `bson:"taxes" json:"taxes"`
	GrandTotal         float64       `bson:"grand_total" json:"grand_total"`
	SpecialRequests    string        `bson:"special_requests" json:"special_requests"`
	Status             BookingStatus `bson:"status" json:"status"`

	// Cancellation metadata, set only once a booking is cancelled.
	CancellationReference string     `bson:"cancellation_reference,omitempty" json:"cancellation_reference,omitempty"`
	CancellationReason    string     `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CancelledAt           *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingCreate is the request payload for creating a reservation.
type BookingCreate struct {
	GuestName       string `json:"guest_name"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	RoomType        string `json:"room_type"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Guests          string `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

// BookingResponse is the confirmation payload returned on create.
type BookingResponse struct {
	Success            bool    `json:"success"`
	ConfirmationNumber string  `json:"confirmation_number"`
	GuestName          string  `json:"guest_name"`
	CheckIn            string  `json:"check_in"`
	CheckOut           string  `json:"check_out"`
	Nights             int     `json:"nights"`
	RoomType           string  `json:"room_type"`
	RatePerNight       float64 `json:"rate_per_night"`
	RoomTotal          float64 `json:"room_total"`
	Taxes              float64 `json:"taxes"`
	GrandTotal         float64 `json:"grand_total"`
	Status             string  `json:"status"`
	Message            string  `json:"message"`
}

// CancelBookingResponse is returned after a successful cancellation.
type CancelBookingResponse struct {
	Success               bool   `json:"success"`
	ConfirmationNumber    string `json:"confirmation_number"`
	CancellationReference string `json:"cancellation_reference"`
	RefundEligible        bool   `json:"refund_eligible"`
	Message               string `json:"message"`
}
