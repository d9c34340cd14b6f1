package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `{
	"results": [
		{"id": 78, "title": "Blade Runner", "overview": "Deckard hunts replicants.", "release_date": "1982-06-25", "vote_average": 7.9},
		{"id": 335984, "title": "Blade Runner 2049", "overview": "Officer K digs up the past.", "release_date": "2017-10-04", "vote_average": 7.5},
		{"id": 9999, "title": "Unreleased", "overview": "", "release_date": "", "vote_average": 0}
	]
}`

func TestSearch(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "blade runner", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	c := NewClient("token", srv.URL, nil)
	results, err := c.Search(context.Background(), "blade runner")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token", gotAuth)

	require.Len(t, results, 3)
	assert.Equal(t, Result{TmdbID: 78, Title: "Blade Runner", Overview: "Deckard hunts replicants.", Year: 1982, Rating: 7.9}, results[0])
	assert.Equal(t, 2017, results[1].Year)
	assert.Zero(t, results[2].Year)
}

func TestSearchNoToken(t *testing.T) {
	c := NewClient("", "http://unused", nil)
	_, err := c.Search(context.Background(), "anything")
	assert.Error(t, err)
}

func TestSearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("token", srv.URL, nil)
	_, err := c.Search(context.Background(), "anything")
	assert.Error(t, err)
}

func TestSearchUsesCache(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	c := NewClient("token", srv.URL, cache)

	first, err := c.Search(context.Background(), "blade runner")
	require.NoError(t, err)
	second, err := c.Search(context.Background(), "blade runner")
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
	assert.Equal(t, first, second)
}

func TestCacheTTL(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), time.Nanosecond)
	require.NoError(t, err)
	defer cache.Close()

	cache.Put("query", []Result{{TmdbID: 1, Title: "Stale"}})
	time.Sleep(time.Millisecond)

	_, ok := cache.Get("query")
	assert.False(t, ok)
}

func TestCacheMiss(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"), time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.Get("never seen")
	assert.False(t, ok)
}
