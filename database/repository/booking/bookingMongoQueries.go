// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"roomi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchResultCap bounds name searches.
const searchResultCap = 10

// GetByConfirmation retrieves a booking by its confirmation number.
func (r *MongoBookingRepo) GetByConfirmation(confirmationNumber string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"confirmation_number": confirmationNumber}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", confirmationNumber, err)
	}
	return &booking, nil
}

// SearchByName returns bookings whose guest name contains the given string,
// case-insensitively, capped at searchResultCap results.
func (r *MongoBookingRepo) SearchByName(guestName string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"guest_name": primitive.Regex{Pattern: guestName, Options: "i"}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(searchResultCap))
	if err != nil {
		return nil, fmt.Errorf("failed to search bookings by name: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode booking search results: %w", err)
	}
	return bookings, nil
}

// List returns bookings newest first, optionally filtered by status.
func (r *MongoBookingRepo) List(status string, limit int64) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
