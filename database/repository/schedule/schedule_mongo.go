package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert replaces the schedule document and the provider-profile projection
// together. Both writes happen inside one session transaction so a partial
// failure cannot leave the two representations divergent.
func (repo *mongoScheduleRepo) Upsert(ctx context.Context, schedule *models.ProviderSchedule, legacy []models.DaySlots) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.scheduleColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"provider_id": schedule.ProviderID}
		opts := options.Replace().SetUpsert(true)
		if _, err := repo.scheduleColl.ReplaceOne(sc, filter, schedule, opts); err != nil {
			return nil, fmt.Errorf("replace schedule failed: %w", err)
		}

		update := bson.M{"$set": bson.M{
			"availability": legacy,
			"timezone":     schedule.Timezone,
			"updated_at":   schedule.UpdatedAt,
		}}
		provFilter := bson.M{"id": schedule.ProviderID}
		if _, err := repo.providerColl.UpdateOne(sc, provFilter, update, options.Update().SetUpsert(true)); err != nil {
			return nil, fmt.Errorf("update provider projection failed: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return fmt.Errorf("schedule upsert transaction for provider %s: %w", schedule.ProviderID, err)
	}
	return nil
}

// GetByProviderID fetches the schedule document, mapping "not found" to a nil
// schedule rather than an error: a missing schedule is a valid state.
func (repo *mongoScheduleRepo) GetByProviderID(ctx context.Context, providerID string) (*models.ProviderSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.ProviderSchedule
	filter := bson.M{"provider_id": providerID}
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule for provider %s: %w", providerID, err)
	}
	return &schedule, nil
}
