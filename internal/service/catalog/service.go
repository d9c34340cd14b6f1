package catalog

import (
	"context"
	"fmt"

	"github.com/kinoline/kinoline/internal/lock"
	"github.com/kinoline/kinoline/internal/model"
	"github.com/kinoline/kinoline/internal/selector"
	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Catalog is the handler of catalog CRUD and search operations
type Catalog struct {
	Database Database
	Metadata Metadata
	Selector selector.ItemSelector
	Locker   lock.Locker
}

func itemKey(id int64) string {
	return fmt.Sprintf("item/%d", id)
}

func (c *Catalog) Create(ctx context.Context, req *api.CreateItemRequest, resp *api.CreateItemResponse) error {
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		logger.Errorf("Create item failed: %s", err)
		return err
	}

	item := model.Item{
		Title:      req.Title,
		Genre:      req.Genre,
		Year:       req.Year,
		Duration:   req.Duration,
		Rating:     req.Rating,
		Price:      req.Price,
		Difficulty: difficulty,
	}
	if err = item.Validate(); err != nil {
		logger.Errorf("Create item failed: %s", err)
		return err
	}

	if err = c.Database.CreateItem(ctx, &item); err != nil {
		logger.Errorf("Create item failed: %s", err)
		return err
	}

	logger.Infof("Item created: %s (id %d)", item.Key(), item.ID)
	resp.Id = item.ID
	return nil
}

func (c *Catalog) Get(ctx context.Context, req *api.GetItemRequest, resp *api.ItemResponse) error {
	item, err := c.Database.GetItem(ctx, req.Id)
	if err != nil {
		logger.Errorf("Get item failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(*item)
	return nil
}

func (c *Catalog) GetByKey(ctx context.Context, req *api.GetItemByKeyRequest, resp *api.ItemResponse) error {
	key := model.Key{Title: req.Title, Genre: req.Genre, Year: req.Year}
	item, err := c.Database.GetItemByKey(ctx, key)
	if err != nil {
		logger.Errorf("Get item by key failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(*item)
	return nil
}

func (c *Catalog) Delete(ctx context.Context, req *api.DeleteItemRequest, _ *emptypb.Empty) error {
	defer c.Locker.Lock(itemKey(req.Id)).Unlock()

	if err := c.Database.DeleteItem(ctx, req.Id); err != nil {
		logger.Errorf("Delete item failed: %s", err)
		return err
	}
	logger.Infof("Item %d deleted", req.Id)
	return nil
}

func (c *Catalog) List(ctx context.Context, req *api.ListItemsRequest, resp *api.ListItemsResponse) error {
	items, err := c.Database.ListItems(ctx, req.SortBy)
	if err != nil {
		logger.Errorf("List items failed: %s", err)
		return err
	}
	resp.Items = api.FromModelList(items)
	return nil
}

func (c *Catalog) Search(ctx context.Context, req *api.SearchRequest, resp *api.ListItemsResponse) error {
	items, err := c.Database.ListItems(ctx, "")
	if err != nil {
		logger.Errorf("Search items failed: %s", err)
		return err
	}

	ranked := c.Selector.Rank(req.Text, items)
	limit := req.Limit
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	resp.Items = api.FromModelList(ranked[:limit])
	return nil
}

func (c *Catalog) Random(ctx context.Context, _ *api.RandomItemRequest, resp *api.ItemResponse) error {
	item, err := c.Database.RandomItem(ctx)
	if err != nil {
		logger.Errorf("Pick random item failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(*item)
	return nil
}

func (c *Catalog) Leaderboard(ctx context.Context, req *api.LeaderboardRequest, resp *api.ListItemsResponse) error {
	items, err := c.Database.Leaderboard(ctx, req.SortBy)
	if err != nil {
		logger.Errorf("Get leaderboard failed: %s", err)
		return err
	}
	resp.Items = api.FromModelList(items)
	return nil
}
