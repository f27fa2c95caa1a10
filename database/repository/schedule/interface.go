package scheduleRepo

import (
	"context"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository owns the recurring weekly availability documents and the
// legacy availability projection on the provider profile.
type ScheduleRepository interface {
	// Upsert replaces the provider's schedule document wholesale and writes
	// the legacy projection onto the provider profile in the same transaction.
	Upsert(ctx context.Context, schedule *models.ProviderSchedule, legacy []models.DaySlots) error
	// GetByProviderID returns the provider's schedule, or nil when none exists.
	GetByProviderID(ctx context.Context, providerID string) (*models.ProviderSchedule, error)
	// EnsureIndexes creates the collection indexes; called once at startup.
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	scheduleColl *mongo.Collection
	providerColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB-backed ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	return &mongoScheduleRepo{
		scheduleColl: db.Collection("schedules"),
		providerColl: db.Collection("providers"),
	}
}
