package catalog

import (
	"context"

	"github.com/kinoline/kinoline/internal/model"
	"github.com/kinoline/kinoline/internal/tmdb"
)

// Database is the persistent catalog the handlers operate on
type Database interface {
	CreateItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	GetItemByKey(ctx context.Context, key model.Key) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context, sortBy string) ([]*model.Item, error)
	RandomItem(ctx context.Context) (*model.Item, error)
	Leaderboard(ctx context.Context, sortBy string) ([]*model.Item, error)
}

// Metadata looks up title metadata in an external provider
type Metadata interface {
	Search(ctx context.Context, query string) ([]tmdb.Result, error)
}
