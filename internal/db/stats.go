package db

import (
	"context"
	"fmt"

	"github.com/kinoline/kinoline/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

// RecordWatch increments the watch counter of a live item. Missing and
// soft-deleted items fail with the corresponding catalog error.
func (d Database) RecordWatch(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	if _, err := d.GetItem(ctx, id); err != nil {
		return err
	}

	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "watchcount", Value: 1}}}}
	_, err := d.items.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}

// RecordOutcome increments the win or loss counter of a live item
func (d Database) RecordOutcome(ctx context.Context, id int64, outcome model.Outcome) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	var field string
	switch outcome {
	case model.OutcomeWin:
		field = "wins"
	case model.OutcomeLoss:
		field = "losses"
	default:
		return fmt.Errorf("invalid outcome: %s", outcome)
	}

	if _, err := d.GetItem(ctx, id); err != nil {
		return err
	}

	update := bson.D{{Key: "$inc", Value: bson.D{{Key: field, Value: 1}}}}
	_, err := d.items.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}
