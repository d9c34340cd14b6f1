package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kinoline/kinoline/internal/model"
	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
)

// Import creates a catalog item from external metadata: the provider supplies
// the canonical title, year and rating, the request the commercial fields.
func (c *Catalog) Import(ctx context.Context, req *api.ImportItemRequest, resp *api.ItemResponse) error {
	if c.Metadata == nil {
		err := errors.New("metadata lookup is not configured")
		logger.Error(err)
		return err
	}

	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		logger.Errorf("Import item failed: %s", err)
		return err
	}

	results, err := c.Metadata.Search(ctx, req.Title)
	if err != nil {
		logger.Errorf("Metadata lookup failed: %s", err)
		return err
	}
	if len(results) == 0 {
		err = fmt.Errorf("no metadata found for '%s'", req.Title)
		logger.Error(err)
		return err
	}

	candidates := make([]*model.Item, len(results))
	for i, r := range results {
		candidates[i] = &model.Item{Title: r.Title, Year: r.Year, Rating: r.Rating}
	}
	best := c.Selector.Best(req.Title, candidates)

	item := model.Item{
		Title:      best.Title,
		Genre:      req.Genre,
		Year:       best.Year,
		Duration:   req.Duration,
		Rating:     best.Rating,
		Price:      req.Price,
		Difficulty: difficulty,
	}
	if err = item.Validate(); err != nil {
		logger.Errorf("Import item failed: %s", err)
		return err
	}

	if err = c.Database.CreateItem(ctx, &item); err != nil {
		logger.Errorf("Import item failed: %s", err)
		return err
	}

	logger.Infof("Item imported: %s (id %d)", item.Key(), item.ID)
	resp.Item = api.FromModel(item)
	return nil
}
