package selector

import "github.com/kinoline/kinoline/internal/model"

func makeRankFunc(funcs ...rankFunc) rankFunc {
	return func(query string, items []*model.Item) []float64 {
		total := make([]float64, len(items))
		for _, f := range funcs {
			ranks := f(query, items)
			for i := range total {
				total[i] += ranks[i]
			}
		}
		return total
	}
}

func findMax(ranks []float64) (best int, max float64) {
	for i, r := range ranks {
		if r > max || i == 0 {
			best, max = i, r
		}
	}
	return
}
