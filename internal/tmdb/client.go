package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Result is a single hit returned by a title search
type Result struct {
	TmdbID   int
	Title    string
	Overview string
	Year     int
	Rating   float64
}

// Client looks up title metadata in the TMDB API. Search results go through
// an optional on-disk cache.
type Client struct {
	token string
	base  string
	cli   *http.Client
	cache *Cache
}

func NewClient(token, baseURL string, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		token: token,
		base:  baseURL,
		cli:   &http.Client{Timeout: 20 * time.Second},
		cache: cache,
	}
}

// Search finds titles matching the query, most relevant first
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if c.cache != nil {
		if results, ok := c.cache.Get(query); ok {
			return results, nil
		}
	}
	if c.token == "" {
		return nil, fmt.Errorf("TMDB access token not configured")
	}

	u := fmt.Sprintf("%s/search/movie?query=%s&include_adult=false&page=1", c.base, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB returned status: %d", resp.StatusCode)
	}

	var apiResp struct {
		Results []struct {
			ID          int     `json:"id"`
			Title       string  `json:"title"`
			Overview    string  `json:"overview"`
			ReleaseDate string  `json:"release_date"`
			VoteAverage float64 `json:"vote_average"`
		} `json:"results"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("parse TMDB response failed: %w", err)
	}

	results := make([]Result, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		results = append(results, Result{
			TmdbID:   r.ID,
			Title:    r.Title,
			Overview: r.Overview,
			Year:     parseYear(r.ReleaseDate),
			Rating:   r.VoteAverage,
		})
	}

	if c.cache != nil {
		c.cache.Put(query, results)
	}
	return results, nil
}

func parseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, _ := strconv.Atoi(releaseDate[:4])
	return year
}
