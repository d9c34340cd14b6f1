package db

import (
	"context"

	"github.com/kinoline/kinoline/internal/model"
)

// RecordFaceoff persists a resolved faceoff event
func (d Database) RecordFaceoff(ctx context.Context, event model.FaceoffEvent) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	_, err := d.faceoffs.InsertOne(ctx, event)
	return err
}
