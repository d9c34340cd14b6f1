package selector

import (
	"sort"
	"strings"
	"time"

	"github.com/antzucaro/matchr"
	"github.com/kinoline/kinoline/internal/model"
	"go-micro.dev/v4/logger"
)

type rankFunc func(query string, items []*model.Item) []float64

// ItemSelector ranks catalog items against a text query. Title similarity
// dominates, rating and recency break ties between close titles.
type ItemSelector struct {
	TitleWeight   float64
	RatingWeight  float64
	RecencyWeight float64
}

// Default returns the weights used by the catalog search
func Default() ItemSelector {
	return ItemSelector{
		TitleWeight:   3,
		RatingWeight:  1,
		RecencyWeight: 0.5,
	}
}

// Rank orders items by descending relevance to the query
func (s ItemSelector) Rank(query string, items []*model.Item) []*model.Item {
	rank := makeRankFunc(s.rankByTitle, s.rankByRating, s.rankByRecency)
	ranks := rank(query, items)
	for i := range ranks {
		logger.Tracef("%d rank: %.4f", i, ranks[i])
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ranks[order[a]] > ranks[order[b]]
	})

	ordered := make([]*model.Item, len(items))
	for i, idx := range order {
		ordered[i] = items[idx]
	}
	return ordered
}

// Best returns the single most relevant item, or nil for an empty list
func (s ItemSelector) Best(query string, items []*model.Item) *model.Item {
	if len(items) == 0 {
		return nil
	}
	rank := makeRankFunc(s.rankByTitle, s.rankByRating, s.rankByRecency)
	best, _ := findMax(rank(query, items))
	sel := items[best]
	logger.Infof("Selected { Title: %s, Year: %d, Rating: %.1f }", sel.Title, sel.Year, sel.Rating)
	return sel
}

func (s ItemSelector) rankByTitle(query string, items []*model.Item) []float64 {
	ranks := make([]float64, len(items))
	for i, it := range items {
		ranks[i] = s.TitleWeight * matchr.JaroWinkler(strings.ToLower(query), strings.ToLower(it.Title), true)
		logger.Tracef("%d rank by title: %.4f", i, ranks[i])
	}
	return ranks
}

func (s ItemSelector) rankByRating(_ string, items []*model.Item) []float64 {
	ranks := make([]float64, len(items))
	for i, it := range items {
		ranks[i] = s.RatingWeight * it.Rating / 10
	}
	return ranks
}

const recencyHorizonYears = 50

func (s ItemSelector) rankByRecency(_ string, items []*model.Item) []float64 {
	now := time.Now().Year()
	ranks := make([]float64, len(items))
	for i, it := range items {
		age := now - it.Year
		if age < 0 {
			age = 0
		}
		if age > recencyHorizonYears {
			age = recencyHorizonYears
		}
		ranks[i] = s.RecencyWeight * (1 - float64(age)/recencyHorizonYears)
	}
	return ranks
}
