package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetActiveForDate fetches bookings that still consume a slot on the given
// date. Dates are stored as "YYYY-MM-DD" strings, so equality on the dateKey
// covers the whole calendar day; cancelled and completed bookings never match.
func (repo *mongoBookingRepo) GetActiveForDate(ctx context.Context, providerID, dateKey string) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"date":        dateKey,
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for provider %s on %s: %w", providerID, dateKey, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingRecord
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *mongoBookingRepo) Create(ctx context.Context, booking *models.BookingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error inserting booking for provider %s: %w", booking.ProviderID, err)
	}
	return nil
}
