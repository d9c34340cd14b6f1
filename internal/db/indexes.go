package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateItemIndexes ensures the unique compound key index on items. Invoked
// by schema migration.
func (d Database) CreateItemIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: 1},
			{Key: "genre", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	_, err := d.items.Indexes().CreateOne(ctx, index)
	return err
}

// BackfillDeletedFlag marks records created before the soft-delete flag
// existed as live
func (d Database) BackfillDeletedFlag(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "deleted", Value: bson.D{{Key: "$exists", Value: false}}}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "deleted", Value: false}}}}
	result, err := d.items.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
