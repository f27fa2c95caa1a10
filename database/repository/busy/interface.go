package busyRepo

import (
	"context"

	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClearFilter selects busy blocks to delete. ProviderID is required; every
// other field acts as a wildcard when empty.
type ClearFilter struct {
	ProviderID string
	Date       string
	Time       string
	Source     string
}

// BusyRepository records and queries ad hoc slot exclusions.
type BusyRepository interface {
	// Block upserts a busy block keyed on (provider, date, time). Calling it
	// twice with the same key overwrites metadata, never duplicates rows.
	Block(ctx context.Context, block *models.BusyBlock) error
	// Clear deletes matching blocks and returns how many were removed.
	Clear(ctx context.Context, filter ClearFilter) (int64, error)
	// GetForDate returns the busy set for a provider's calendar date.
	GetForDate(ctx context.Context, providerID, dateKey string) (models.BusySet, error)
	// EnsureIndexes creates the collection indexes; called once at startup.
	EnsureIndexes(ctx context.Context) error
}

type mongoBusyRepo struct {
	coll *mongo.Collection
}

// NewMongoBusyRepo constructs a MongoDB-backed BusyRepository.
func NewMongoBusyRepo() BusyRepository {
	return &mongoBusyRepo{coll: database.DB().Collection("busy_blocks")}
}
