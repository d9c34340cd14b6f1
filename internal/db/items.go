package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kinoline/kinoline/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d Database) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	filter := bson.D{{Key: "_id", Value: "items"}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: 1}}}}

	var counter struct {
		Seq int64
	}
	if err := d.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("allocate item id failed: %w", err)
	}
	return counter.Seq, nil
}

// CreateItem assigns a fresh id to the item and persists it. A second item
// with the same compound key is rejected with ErrItemExists.
func (d Database) CreateItem(ctx context.Context, item *model.Item) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	id, err := d.nextID(ctx)
	if err != nil {
		return err
	}
	item.ID = id
	item.CreatedAt = time.Now()

	_, err = d.items.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", ErrItemExists, item.Key())
	}
	return err
}

// GetItem returns the item with the given id. Soft-deleted items yield
// ErrItemRemoved.
func (d Database) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	result := d.items.FindOne(ctx, bson.D{{Key: "_id", Value: id}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	item := model.Item{}
	if err := result.Decode(&item); err != nil {
		return nil, err
	}
	if item.Deleted {
		return nil, fmt.Errorf("%w: id %d", ErrItemRemoved, id)
	}
	return &item, nil
}

// GetItemByKey returns the item with the given compound key
func (d Database) GetItemByKey(ctx context.Context, key model.Key) (*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "title", Value: key.Title},
		{Key: "genre", Value: key.Genre},
		{Key: "year", Value: key.Year},
	}
	result := d.items.FindOne(ctx, filter)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, key)
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	item := model.Item{}
	if err := result.Decode(&item); err != nil {
		return nil, err
	}
	if item.Deleted {
		return nil, fmt.Errorf("%w: %s", ErrItemRemoved, key)
	}
	return &item, nil
}

// DeleteItem soft-deletes the item, keeping the record for stats history.
// Deleting twice fails with ErrItemRemoved.
func (d Database) DeleteItem(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	if _, err := d.GetItem(ctx, id); err != nil {
		return err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "deleted", Value: true},
		{Key: "deletedat", Value: time.Now()},
	}}}
	_, err := d.items.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}

// ListItems returns all live items ordered by the requested field
func (d Database) ListItems(ctx context.Context, sortBy string) ([]*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	opts := options.Find().SetSort(getSort(sortBy))
	cur, err := d.items.Find(ctx, bson.D{{Key: "deleted", Value: false}}, opts)
	if err != nil {
		return nil, err
	}

	var results []*model.Item
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// RandomItem picks one live item uniformly
func (d Database) RandomItem(ctx context.Context) (*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "deleted", Value: false}}}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
	cur, err := d.items.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []*model.Item
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrItemNotFound)
	}
	return results[0], nil
}

// Leaderboard returns items which fought at least one faceoff, ordered by
// wins or by win percentage
func (d Database) Leaderboard(ctx context.Context, sortBy string) ([]*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{
		{Key: "deleted", Value: false},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "wins", Value: bson.D{{Key: "$gt", Value: 0}}}},
			bson.D{{Key: "losses", Value: bson.D{{Key: "$gt", Value: 0}}}},
		}},
	}
	cur, err := d.items.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var results []*model.Item
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	if sortBy == "winpct" {
		sort.SliceStable(results, func(a, b int) bool {
			return winPct(results[a]) > winPct(results[b])
		})
	} else {
		sort.SliceStable(results, func(a, b int) bool {
			return results[a].Wins > results[b].Wins
		})
	}
	return results, nil
}

func winPct(item *model.Item) float64 {
	battles := item.Wins + item.Losses
	if battles == 0 {
		return 0
	}
	return float64(item.Wins) / float64(battles)
}

// PurgeDeleted permanently drops soft-deleted items older than the retention
// period. Used by the background sweep.
func (d Database) PurgeDeleted(ctx context.Context, olderThan time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	cutoff := time.Now().Add(-olderThan)
	filter := bson.D{
		{Key: "deleted", Value: true},
		{Key: "deletedat", Value: bson.D{{Key: "$lt", Value: cutoff}}},
	}
	result, err := d.items.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
