package db

import "errors"

// Catalog error kinds. The playlist and arena propagate these to their
// callers unwrapped.
var (
	ErrItemNotFound = errors.New("item not found in catalog")
	ErrItemRemoved  = errors.New("item has already been removed from catalog")
	ErrItemExists   = errors.New("item already exists in catalog")
)
