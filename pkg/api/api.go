// Package api declares the wire types of the kinoline service. Handlers are
// registered with the default go-micro server, so plain structs are enough.
package api

// Item is the wire representation of a catalog item
type Item struct {
	Id         int64
	Title      string
	Genre      string
	Year       int
	Duration   int
	Rating     float64
	Price      float64
	Difficulty string
	WatchCount int
	Wins       int
	Losses     int
}

// --- Catalog ---

type CreateItemRequest struct {
	Title      string
	Genre      string
	Year       int
	Duration   int
	Rating     float64
	Price      float64
	Difficulty string
}

type CreateItemResponse struct {
	Id int64
}

type GetItemRequest struct {
	Id int64
}

type GetItemByKeyRequest struct {
	Title string
	Genre string
	Year  int
}

type ItemResponse struct {
	Item *Item
}

type DeleteItemRequest struct {
	Id int64
}

type ListItemsRequest struct {
	// SortBy is "title" (default), "created" or "rating"
	SortBy string
}

type ListItemsResponse struct {
	Items []*Item
}

type SearchRequest struct {
	Text  string
	Limit int
}

type RandomItemRequest struct{}

type LeaderboardRequest struct {
	// SortBy is "wins" (default) or "winpct"
	SortBy string
}

type ImportItemRequest struct {
	// Title is the query sent to the metadata provider
	Title string

	// Commercial fields the provider does not know
	Genre      string
	Duration   int
	Price      float64
	Difficulty string
}

// --- Screening queue ---

type AddRequest struct {
	Id int64
}

type RemoveByIdRequest struct {
	Id int64
}

type RemoveByPositionRequest struct {
	Position int
}

type GetByIdRequest struct {
	Id int64
}

type GetByPositionRequest struct {
	Position int
}

type QueueResponse struct {
	Items  []*Item
	Cursor int
}

type StatusResponse struct {
	Length        int
	TotalDuration int
}

type MoveToPositionRequest struct {
	Id       int64
	Position int
}

type MoveRequest struct {
	Id int64
}

type SwapRequest struct {
	FirstId  int64
	SecondId int64
}

type GoToRequest struct {
	Position int
}

type PlayedResponse struct {
	Items []*Item
}

// --- Faceoff ---

type PrepRequest struct {
	Id int64
}

type BattleResponse struct {
	Winner *Item
}
