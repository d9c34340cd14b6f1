package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Version is the current database schema version
const Version = 1

const databaseTimeout = 40 * time.Second
const databaseName = "kinoline"

type Database struct {
	cli      *mongo.Client
	db       *mongo.Database
	items    *mongo.Collection
	faceoffs *mongo.Collection
	counters *mongo.Collection
	meta     *mongo.Collection
}

// Connect creates database connection
func Connect(uri string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), databaseTimeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	if err = cli.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	db := cli.Database(databaseName)
	return &Database{
		cli:      cli,
		db:       db,
		items:    db.Collection("items"),
		faceoffs: db.Collection("faceoffs"),
		counters: db.Collection("counters"),
		meta:     db.Collection("meta"),
	}, nil
}
