package tmdb

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSearches = []byte("searches")

type cacheEntry struct {
	Results  []Result
	CachedAt time.Time
}

// Cache keeps TMDB search results on disk, so repeated imports of the same
// title do not hit the API again until the TTL expires
type Cache struct {
	db  *bolt.DB
	ttl time.Duration
}

func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSearches)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Get(query string) ([]Result, bool) {
	var e cacheEntry
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSearches).Get([]byte(query))
		if b == nil {
			return fmt.Errorf("miss")
		}
		return gobDecode(b, &e)
	})
	if err != nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(e.CachedAt) > c.ttl {
		return nil, false
	}
	return e.Results, true
}

func (c *Cache) Put(query string, results []Result) {
	data, err := gobEncode(cacheEntry{Results: results, CachedAt: time.Now()})
	if err != nil {
		return
	}
	_ = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSearches).Put([]byte(query), data)
	})
}

func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
