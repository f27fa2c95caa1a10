package busyRepo

import (
	"context"
	"fmt"
	"time"

	"carebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoBusyRepo) Block(ctx context.Context, block *models.BusyBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": block.ProviderID,
		"date":        block.Date,
		"time":        block.Time,
	}
	update := bson.M{
		"$set": bson.M{
			"source": block.Source,
			"note":   block.Note,
			"ref_id": block.RefID,
		},
		"$setOnInsert": bson.M{
			"block_id":    block.BlockID,
			"provider_id": block.ProviderID,
			"date":        block.Date,
			"time":        block.Time,
			"created_at":  block.CreatedAt,
		},
	}
	_, err := repo.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting busy block for provider %s on %s at %s: %w",
			block.ProviderID, block.Date, block.Time, err)
	}
	return nil
}

func (repo *mongoBusyRepo) Clear(ctx context.Context, filter ClearFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"provider_id": filter.ProviderID}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Time != "" {
		query["time"] = filter.Time
	}
	if filter.Source != "" {
		query["source"] = filter.Source
	}

	res, err := repo.coll.DeleteMany(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error clearing busy blocks for provider %s: %w", filter.ProviderID, err)
	}
	return res.DeletedCount, nil
}

func (repo *mongoBusyRepo) GetForDate(ctx context.Context, providerID, dateKey string) (models.BusySet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := models.BusySet{Keys: make(map[string]struct{})}

	filter := bson.M{"provider_id": providerID, "date": dateKey}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return set, fmt.Errorf("error fetching busy blocks for provider %s on %s: %w", providerID, dateKey, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var block models.BusyBlock
		if err := cursor.Decode(&block); err != nil {
			return set, fmt.Errorf("error decoding busy block: %w", err)
		}
		if block.WholeDay() {
			set.WholeDay = true
			continue
		}
		set.Keys[block.Time] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return set, fmt.Errorf("cursor error: %w", err)
	}
	return set, nil
}
