package faceoff

import (
	"context"

	"github.com/kinoline/kinoline/internal/model"
)

// Catalog resolves items before they enter the arena
type Catalog interface {
	GetItem(ctx context.Context, id int64) (*model.Item, error)
}
