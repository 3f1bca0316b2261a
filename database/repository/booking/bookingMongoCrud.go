// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"roomi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateConfirmation
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Cancel transitions a non-cancelled booking to cancelled and stamps the
// cancellation metadata. Cancelled bookings are never matched again, which
// is how a second cancel is told apart from an unknown number.
func (r *MongoBookingRepo) Cancel(confirmationNumber, reference, reason string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{
		"confirmation_number": confirmationNumber,
		"status":              bson.M{"$ne": models.StatusCancelled},
	}
	update := bson.M{"$set": bson.M{
		"status":                 models.StatusCancelled,
		"cancellation_reference": reference,
		"cancellation_reason":    reason,
		"cancelled_at":           now,
		"updated_at":             now,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", confirmationNumber, err)
	}
	if result.MatchedCount == 0 {
		if _, err := r.GetByConfirmation(confirmationNumber); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, ErrAlreadyCancelled
	}

	return r.GetByConfirmation(confirmationNumber)
}
