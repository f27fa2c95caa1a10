package bookingRepo

import (
	"context"
	"errors"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by Create when an active booking already holds the
// same (provider, date, time) key. The unique partial index rejects the
// second writer at the storage layer, so concurrent reservations fail closed.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository is the availability subsystem's view over booking
// persistence: active-status reads plus fail-closed reservation writes.
// The booking subsystem owns the rest of the record lifecycle.
type BookingRepository interface {
	// GetActiveForDate returns bookings whose status still consumes a slot
	// (pending, confirmed or active) for the provider's calendar date.
	GetActiveForDate(ctx context.Context, providerID, dateKey string) ([]models.BookingRecord, error)
	// Create inserts a new booking, returning ErrSlotTaken when an active
	// booking already occupies the slot.
	Create(ctx context.Context, booking *models.BookingRecord) error
	// EnsureIndexes creates the collection indexes; called once at startup.
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.DB().Collection("bookings")}
}
