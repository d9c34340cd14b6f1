package api

import "github.com/kinoline/kinoline/internal/model"

// FromModel converts a catalog item to its wire form
func FromModel(item model.Item) *Item {
	return &Item{
		Id:         item.ID,
		Title:      item.Title,
		Genre:      item.Genre,
		Year:       item.Year,
		Duration:   item.Duration,
		Rating:     item.Rating,
		Price:      item.Price,
		Difficulty: item.Difficulty.String(),
		WatchCount: item.WatchCount,
		Wins:       item.Wins,
		Losses:     item.Losses,
	}
}

// FromModelList converts a list of catalog items to wire form
func FromModelList(items []*model.Item) []*Item {
	result := make([]*Item, len(items))
	for i, item := range items {
		result[i] = FromModel(*item)
	}
	return result
}
