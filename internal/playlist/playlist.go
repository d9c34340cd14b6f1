package playlist

import (
	"context"
	"fmt"

	"github.com/kinoline/kinoline/internal/model"
	"go-micro.dev/v4/logger"
)

// Playlist owns an ordered sequence of catalog items and a 1-indexed cursor
// which advances circularly on playback. A zero capacity means unbounded.
//
// Playlist does no locking of its own; callers serialize access.
type Playlist struct {
	items    []model.Item
	cursor   int
	capacity int
	stats    StatsUpdater
}

// New creates an empty unbounded playlist
func New(stats StatsUpdater) *Playlist {
	return &Playlist{cursor: 1, stats: stats}
}

// NewBounded creates a playlist which holds at most capacity items
func NewBounded(capacity int, stats StatsUpdater) *Playlist {
	return &Playlist{cursor: 1, capacity: capacity, stats: stats}
}

// Add appends an item to the end of the playlist
func (p *Playlist) Add(item model.Item) error {
	if item.ID <= 0 || item.Duration < 0 {
		return fmt.Errorf("%w: id=%d, duration=%d", ErrInvalidItem, item.ID, item.Duration)
	}
	if p.capacity > 0 && len(p.items) >= p.capacity {
		return fmt.Errorf("%w: capacity is %d", ErrFull, p.capacity)
	}
	for i := range p.items {
		if p.items[i].ID == item.ID {
			return fmt.Errorf("%w: id %d", ErrDuplicate, item.ID)
		}
	}
	p.items = append(p.items, item)
	return nil
}

// RemoveByID removes the item with the given id
func (p *Playlist) RemoveByID(id int64) error {
	if err := p.checkNotEmpty(); err != nil {
		return err
	}
	i, err := p.indexOf(id)
	if err != nil {
		return err
	}
	p.items = append(p.items[:i], p.items[i+1:]...)
	p.clampCursor()
	return nil
}

// RemoveByPosition removes the item at the given 1-indexed position
func (p *Playlist) RemoveByPosition(pos int) error {
	if err := p.checkNotEmpty(); err != nil {
		return err
	}
	if err := p.checkPosition(pos); err != nil {
		return err
	}
	p.items = append(p.items[:pos-1], p.items[pos:]...)
	p.clampCursor()
	return nil
}

// Clear empties the playlist unconditionally
func (p *Playlist) Clear() {
	if len(p.items) == 0 {
		logger.Warn("Clearing an empty playlist")
	}
	p.items = nil
	p.cursor = 1
}

// Items returns the playlist in order. The slice is a copy, so callers cannot
// disturb the sequence.
func (p *Playlist) Items() ([]model.Item, error) {
	if err := p.checkNotEmpty(); err != nil {
		return nil, err
	}
	return append([]model.Item(nil), p.items...), nil
}

// GetByID returns the item with the given id
func (p *Playlist) GetByID(id int64) (model.Item, error) {
	if err := p.checkNotEmpty(); err != nil {
		return model.Item{}, err
	}
	i, err := p.indexOf(id)
	if err != nil {
		return model.Item{}, err
	}
	return p.items[i], nil
}

// GetByPosition returns the item at the given 1-indexed position
func (p *Playlist) GetByPosition(pos int) (model.Item, error) {
	if err := p.checkNotEmpty(); err != nil {
		return model.Item{}, err
	}
	if err := p.checkPosition(pos); err != nil {
		return model.Item{}, err
	}
	return p.items[pos-1], nil
}

// Current returns the item at the cursor
func (p *Playlist) Current() (model.Item, error) {
	return p.GetByPosition(p.cursor)
}

// Len returns the number of items, 0 for an empty playlist
func (p *Playlist) Len() int {
	return len(p.items)
}

// Cursor returns the current 1-indexed position
func (p *Playlist) Cursor() int {
	return p.cursor
}

// TotalDuration returns the summary duration of all items in minutes
func (p *Playlist) TotalDuration() int {
	total := 0
	for i := range p.items {
		total += p.items[i].Duration
	}
	return total
}

// MoveToPosition places the item with the given id at the 1-indexed position.
// Both arguments are validated before anything is mutated.
func (p *Playlist) MoveToPosition(id int64, pos int) error {
	if err := p.checkNotEmpty(); err != nil {
		return err
	}
	i, err := p.indexOf(id)
	if err != nil {
		return err
	}
	if err = p.checkPosition(pos); err != nil {
		return err
	}
	item := p.items[i]
	p.items = append(p.items[:i], p.items[i+1:]...)
	rest := append([]model.Item{item}, p.items[pos-1:]...)
	p.items = append(p.items[:pos-1], rest...)
	return nil
}

// MoveToBeginning places the item with the given id first
func (p *Playlist) MoveToBeginning(id int64) error {
	return p.MoveToPosition(id, 1)
}

// MoveToEnd places the item with the given id last
func (p *Playlist) MoveToEnd(id int64) error {
	return p.MoveToPosition(id, len(p.items))
}

// Swap exchanges the positions of two items
func (p *Playlist) Swap(firstID, secondID int64) error {
	if err := p.checkNotEmpty(); err != nil {
		return err
	}
	i, err := p.indexOf(firstID)
	if err != nil {
		return err
	}
	j, err := p.indexOf(secondID)
	if err != nil {
		return err
	}
	if firstID == secondID {
		return fmt.Errorf("%w: id %d", ErrSelfSwap, firstID)
	}
	p.items[i], p.items[j] = p.items[j], p.items[i]
	return nil
}

// SetCursor moves the cursor to the given 1-indexed position
func (p *Playlist) SetCursor(pos int) error {
	if err := p.checkNotEmpty(); err != nil {
		return err
	}
	if err := p.checkPosition(pos); err != nil {
		return err
	}
	p.cursor = pos
	return nil
}

// Rewind moves the cursor back to the first position
func (p *Playlist) Rewind() error {
	if err := p.checkNotEmpty(); err != nil {
		return err
	}
	p.cursor = 1
	return nil
}

// ConsumeCurrent plays the item at the cursor: the watch is recorded against
// the catalog, then the cursor advances circularly, wrapping from the last
// position back to 1. On a single-item playlist the cursor stays at 1.
func (p *Playlist) ConsumeCurrent(ctx context.Context) (model.Item, error) {
	if err := p.checkNotEmpty(); err != nil {
		return model.Item{}, err
	}
	current := p.items[p.cursor-1]
	if err := p.stats.RecordWatch(ctx, current.ID); err != nil {
		return model.Item{}, err
	}
	previous := p.cursor
	p.cursor = (p.cursor % len(p.items)) + 1
	logger.Debugf("Played '%s' (id %d), cursor %d -> %d", current.Title, current.ID, previous, p.cursor)
	return current, nil
}

// ConsumeAll rewinds and plays every item once, leaving the cursor back at 1
func (p *Playlist) ConsumeAll(ctx context.Context) ([]model.Item, error) {
	if err := p.checkNotEmpty(); err != nil {
		return nil, err
	}
	p.cursor = 1
	return p.consume(ctx, len(p.items))
}

// ConsumeRemaining plays from the cursor to the end of the playlist. The
// iteration count is fixed up front, so the circular advance cannot revisit
// the front of the list.
func (p *Playlist) ConsumeRemaining(ctx context.Context) ([]model.Item, error) {
	if err := p.checkNotEmpty(); err != nil {
		return nil, err
	}
	return p.consume(ctx, len(p.items)-p.cursor+1)
}

func (p *Playlist) consume(ctx context.Context, count int) ([]model.Item, error) {
	played := make([]model.Item, 0, count)
	for i := 0; i < count; i++ {
		item, err := p.ConsumeCurrent(ctx)
		if err != nil {
			return played, err
		}
		played = append(played, item)
	}
	return played, nil
}

// Removals clamp the cursor eagerly, so it always points at a valid position
// while the playlist is non-empty.
func (p *Playlist) clampCursor() {
	if len(p.items) == 0 {
		p.cursor = 1
		return
	}
	if p.cursor > len(p.items) {
		p.cursor = len(p.items)
	}
}

func (p *Playlist) checkNotEmpty() error {
	if len(p.items) == 0 {
		return ErrEmpty
	}
	return nil
}

func (p *Playlist) checkPosition(pos int) error {
	if pos < 1 || pos > len(p.items) {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	return nil
}

func (p *Playlist) indexOf(id int64) (int, error) {
	for i := range p.items {
		if p.items[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: id %d", ErrNotFound, id)
}
