package playlist

import "errors"

// Error kinds surfaced by playlist operations. Callers discriminate with
// errors.Is; messages may carry extra detail via wrapping.
var (
	ErrEmpty           = errors.New("playlist is empty")
	ErrInvalidPosition = errors.New("invalid position")
	ErrNotFound        = errors.New("item not found in playlist")
	ErrDuplicate       = errors.New("item is already in the playlist")
	ErrSelfSwap        = errors.New("cannot swap an item with itself")
	ErrFull            = errors.New("playlist is full")
	ErrInvalidItem     = errors.New("invalid item")
)
