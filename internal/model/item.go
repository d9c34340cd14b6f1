package model

import (
	"fmt"
	"time"
)

// Item represents a single catalog entry. The same value travels through the
// persistent catalog and the in-memory screening queue; the queue treats
// everything beyond ID and Duration as opaque payload.
type Item struct {
	// ID is assigned by the catalog and stable for the item's lifetime
	ID int64 `bson:"_id"`

	Title string
	Genre string
	Year  int

	// Duration of the item in minutes
	Duration int

	// Rating is a viewer score out of 10.0
	Rating float64

	// Price is the licensing fee, used by faceoff scoring
	Price float64

	Difficulty Difficulty

	// Deleted marks the item as removed from the catalog (soft delete)
	Deleted   bool
	DeletedAt time.Time `bson:"deletedat,omitempty"`

	WatchCount int
	Wins       int
	Losses     int

	CreatedAt time.Time
}

// Key returns the compound natural key of the item
func (i Item) Key() Key {
	return Key{Title: i.Title, Genre: i.Genre, Year: i.Year}
}

// Validate checks catalog input invariants
func (i Item) Validate() error {
	if i.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if i.Duration <= 0 {
		return fmt.Errorf("duration must be greater than 0, got %d", i.Duration)
	}
	if i.Rating < 0.0 || i.Rating > 10.0 {
		return fmt.Errorf("rating must be between 0.0 and 10.0, got %.1f", i.Rating)
	}
	if i.Price <= 0 {
		return fmt.Errorf("price must be positive, got %.2f", i.Price)
	}
	if !i.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty: %s", i.Difficulty)
	}
	return nil
}

// Key identifies a catalog item by its compound natural key
type Key struct {
	Title string
	Genre string
	Year  int
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%s, %d)", k.Title, k.Genre, k.Year)
}
