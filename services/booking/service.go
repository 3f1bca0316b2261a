package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "roomi/database/repository/booking"
	"roomi/models"
	"roomi/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// maxConfirmationAttempts bounds regeneration retries when the random
// suffix collides with an existing confirmation number.
const maxConfirmationAttempts = 3

// DefaultBookingService implements BookingService on top of the booking store.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Queue  *asynq.Client // optional; follow-ups are skipped when nil
	Logger *zap.Logger
}

// CreateBooking prices the stay, issues a confirmation number and persists
// the reservation. Field presence is validated one layer up, at the tool
// adapter boundary.
func (s *DefaultBookingService) CreateBooking(input models.BookingCreate) (*models.BookingResponse, error) {
	quote := PriceStay(input.RoomType, FixedNights)

	var confirmationNumber string
	for attempt := 1; ; attempt++ {
		confirmationNumber = GenerateConfirmationNumber(ConfirmationPrefix)

		bk := &models.Booking{
			ConfirmationNumber: confirmationNumber,
			GuestName:          input.GuestName,
			Email:              input.Email,
			Phone:              input.Phone,
			CheckIn:            input.CheckIn,
			CheckOut:           input.CheckOut,
			Nights:             FixedNights,
			RoomType:           input.RoomType,
			Guests:             input.Guests,
			RatePerNight:       quote.RatePerNight,
			RoomTotal:          quote.RoomTotal,
			Taxes:              quote.Taxes,
			GrandTotal:         quote.GrandTotal,
			SpecialRequests:    input.SpecialRequests,
			Status:             models.StatusConfirmed,
		}

		err := s.Repo.Create(bk)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrDuplicateConfirmation) && attempt < maxConfirmationAttempts {
			s.Logger.Warn("confirmation number collision, regenerating",
				zap.String("confirmation_number", confirmationNumber),
				zap.Int("attempt", attempt))
			continue
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.enqueueFollowUp(confirmationNumber, input)

	return &models.BookingResponse{
		Success:            true,
		ConfirmationNumber: confirmationNumber,
		GuestName:          input.GuestName,
		CheckIn:            input.CheckIn,
		CheckOut:           input.CheckOut,
		Nights:             FixedNights,
		RoomType:           input.RoomType,
		RatePerNight:       quote.RatePerNight,
		RoomTotal:          quote.RoomTotal,
		Taxes:              quote.Taxes,
		GrandTotal:         quote.GrandTotal,
		Status:             string(models.StatusConfirmed),
		Message:            fmt.Sprintf("Booking confirmed! Confirmation number is %s", confirmationNumber),
	}, nil
}

// enqueueFollowUp schedules the post-booking notification. Best effort: a
// queue failure never fails the booking.
func (s *DefaultBookingService) enqueueFollowUp(confirmationNumber string, input models.BookingCreate) {
	if s.Queue == nil {
		return
	}

	payload := models.FollowUpPayload{
		ConfirmationNumber: confirmationNumber,
		GuestName:          input.GuestName,
		Email:              input.Email,
		CheckIn:            input.CheckIn,
	}
	task, opts, err := tasks.NewFollowUpTask(payload, time.Now().Add(time.Minute))
	if err != nil {
		s.Logger.Warn("failed to build follow-up task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("failed to enqueue follow-up task",
			zap.String("confirmation_number", confirmationNumber), zap.Error(err))
	}
}

// GetBooking fetches one booking by confirmation number.
func (s *DefaultBookingService) GetBooking(confirmationNumber string) (*models.Booking, error) {
	bk, err := s.Repo.GetByConfirmation(confirmationNumber)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return bk, nil
}

// SearchByName finds bookings by case-insensitive guest-name substring.
func (s *DefaultBookingService) SearchByName(guestName string) ([]models.Booking, error) {
	return s.Repo.SearchByName(guestName)
}

// CancelBooking transitions a booking to cancelled and returns the
// cancellation payload.
func (s *DefaultBookingService) CancelBooking(confirmationNumber, reason string) (*models.CancelBookingResponse, error) {
	reference := GenerateCancellationReference(confirmationNumber)

	_, err := s.Repo.Cancel(confirmationNumber, reference, reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
			return nil, ErrAlreadyCancelled
		default:
			return nil, err
		}
	}

	return &models.CancelBookingResponse{
		Success:               true,
		ConfirmationNumber:    confirmationNumber,
		CancellationReference: reference,
		RefundEligible:        true,
		Message:               fmt.Sprintf("Booking cancelled. Reference: %s. Full refund in 5-7 business days.", reference),
	}, nil
}

// ListBookings returns recent bookings, optionally filtered by status.
func (s *DefaultBookingService) ListBookings(status string, limit int64) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Repo.List(status, limit)
}
