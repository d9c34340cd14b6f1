package playlist

import (
	"context"
	"testing"

	"github.com/kinoline/kinoline/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type watchRecorder struct {
	watched []int64
	err     error
}

func (w *watchRecorder) RecordWatch(_ context.Context, id int64) error {
	if w.err != nil {
		return w.err
	}
	w.watched = append(w.watched, id)
	return nil
}

func makeItem(id int64, title string, duration int) model.Item {
	return model.Item{ID: id, Title: title, Duration: duration}
}

func fill(t *testing.T, p *Playlist, items ...model.Item) {
	for _, item := range items {
		require.NoError(t, p.Add(item))
	}
}

func TestAdd(t *testing.T) {
	type testCase struct {
		item model.Item
		err  error
		len  int
	}

	testCases := []testCase{
		{item: makeItem(1, "Stalker", 162), len: 1},
		{item: makeItem(2, "Solaris", 167), len: 2},
		{item: makeItem(1, "Stalker", 162), err: ErrDuplicate, len: 2},
		{item: makeItem(0, "Nameless", 90), err: ErrInvalidItem, len: 2},
		{item: model.Item{ID: 3, Title: "Broken", Duration: -5}, err: ErrInvalidItem, len: 2},
		{item: makeItem(3, "Mirror", 107), len: 3},
	}

	p := New(nil)
	for i, tc := range testCases {
		err := p.Add(tc.item)
		assert.ErrorIs(t, err, tc.err, "Test %d failed", i)
		assert.Equal(t, tc.len, p.Len(), "Test %d failed", i)
	}
}

func TestAddBounded(t *testing.T) {
	p := NewBounded(2, nil)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100))

	err := p.Add(makeItem(3, "Third", 100))
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 2, p.Len())
}

func TestRemove(t *testing.T) {
	p := New(nil)

	assert.ErrorIs(t, p.RemoveByID(1), ErrEmpty)
	assert.ErrorIs(t, p.RemoveByPosition(1), ErrEmpty)

	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))

	assert.ErrorIs(t, p.RemoveByID(42), ErrNotFound)
	assert.ErrorIs(t, p.RemoveByPosition(0), ErrInvalidPosition)
	assert.ErrorIs(t, p.RemoveByPosition(4), ErrInvalidPosition)

	require.NoError(t, p.RemoveByID(2))
	require.NoError(t, p.RemoveByPosition(1))

	items, err := p.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].ID)
}

func TestRemoveClampsCursor(t *testing.T) {
	p := New(nil)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))

	require.NoError(t, p.SetCursor(3))
	require.NoError(t, p.RemoveByPosition(3))
	assert.Equal(t, 2, p.Cursor())

	current, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(2), current.ID)

	require.NoError(t, p.RemoveByID(1))
	require.NoError(t, p.RemoveByID(2))
	assert.Equal(t, 1, p.Cursor())
	assert.ErrorIs(t, p.RemoveByID(3), ErrEmpty)
}

func TestClear(t *testing.T) {
	p := New(nil)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100))
	require.NoError(t, p.SetCursor(2))

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 1, p.Cursor())

	// clearing again is allowed
	p.Clear()
	assert.Equal(t, 0, p.Len())
}

func TestGet(t *testing.T) {
	p := New(nil)

	_, err := p.GetByID(1)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = p.Current()
	assert.ErrorIs(t, err, ErrEmpty)

	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100))

	item, err := p.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Second", item.Title)

	item, err = p.GetByPosition(1)
	require.NoError(t, err)
	assert.Equal(t, "First", item.Title)

	_, err = p.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.GetByPosition(3)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestItemsReturnsCopy(t *testing.T) {
	p := New(nil)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100))

	items, err := p.Items()
	require.NoError(t, err)
	items[0], items[1] = items[1], items[0]

	unchanged, err := p.Items()
	require.NoError(t, err)
	assert.Equal(t, int64(1), unchanged[0].ID)
}

func TestTotalDuration(t *testing.T) {
	p := New(nil)
	assert.Equal(t, 0, p.TotalDuration())

	fill(t, p, makeItem(1, "First", 180), makeItem(2, "Second", 155))
	assert.Equal(t, 335, p.TotalDuration())
}

func TestMoveToPosition(t *testing.T) {
	type testCase struct {
		id    int64
		pos   int
		err   error
		order []int64
	}

	testCases := []testCase{
		{id: 3, pos: 1, order: []int64{3, 1, 2, 4}},
		{id: 3, pos: 4, order: []int64{1, 2, 4, 3}},
		{id: 1, pos: 2, order: []int64{2, 1, 4, 3}},
		{id: 42, pos: 1, err: ErrNotFound, order: []int64{2, 1, 4, 3}},
		{id: 1, pos: 5, err: ErrInvalidPosition, order: []int64{2, 1, 4, 3}},
	}

	p := New(nil)
	fill(t, p,
		makeItem(1, "First", 100),
		makeItem(2, "Second", 100),
		makeItem(3, "Third", 100),
		makeItem(4, "Fourth", 100),
	)

	for i, tc := range testCases {
		err := p.MoveToPosition(tc.id, tc.pos)
		assert.ErrorIs(t, err, tc.err, "Test %d failed", i)

		items, err := p.Items()
		require.NoError(t, err)
		actual := make([]int64, len(items))
		for j := range items {
			actual[j] = items[j].ID
		}
		assert.Equal(t, tc.order, actual, "Test %d failed", i)
	}
}

func TestMoveShortcuts(t *testing.T) {
	p := New(nil)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))

	require.NoError(t, p.MoveToEnd(1))
	require.NoError(t, p.MoveToBeginning(3))

	items, err := p.Items()
	require.NoError(t, err)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[2].ID)
}

func TestSwap(t *testing.T) {
	p := New(nil)

	assert.ErrorIs(t, p.Swap(1, 2), ErrEmpty)

	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))

	assert.ErrorIs(t, p.Swap(1, 42), ErrNotFound)
	assert.ErrorIs(t, p.Swap(2, 2), ErrSelfSwap)

	require.NoError(t, p.Swap(1, 3))
	items, _ := p.Items()
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[2].ID)

	// swapping back restores the original order
	require.NoError(t, p.Swap(1, 3))
	items, _ = p.Items()
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestCursorControls(t *testing.T) {
	p := New(nil)

	assert.ErrorIs(t, p.SetCursor(1), ErrEmpty)
	assert.ErrorIs(t, p.Rewind(), ErrEmpty)

	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100))

	assert.ErrorIs(t, p.SetCursor(3), ErrInvalidPosition)
	require.NoError(t, p.SetCursor(2))
	assert.Equal(t, 2, p.Cursor())

	require.NoError(t, p.Rewind())
	assert.Equal(t, 1, p.Cursor())
}

func TestConsumeCurrentWrapsAround(t *testing.T) {
	recorder := &watchRecorder{}
	p := New(recorder)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))

	// a full pass visits every item exactly once and returns the cursor to 1
	for _, want := range []int64{1, 2, 3} {
		item, err := p.ConsumeCurrent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, item.ID)
	}
	assert.Equal(t, 1, p.Cursor())
	assert.Equal(t, []int64{1, 2, 3}, recorder.watched)
}

func TestConsumeCurrentSingleItem(t *testing.T) {
	recorder := &watchRecorder{}
	p := New(recorder)
	fill(t, p, makeItem(7, "Only", 100))

	for i := 0; i < 3; i++ {
		item, err := p.ConsumeCurrent(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), item.ID)
		assert.Equal(t, 1, p.Cursor())
	}
	assert.Equal(t, []int64{7, 7, 7}, recorder.watched)
}

func TestConsumeCurrentRecordFailure(t *testing.T) {
	recorder := &watchRecorder{err: assert.AnError}
	p := New(recorder)
	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100))

	_, err := p.ConsumeCurrent(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	// the cursor does not advance when the watch cannot be recorded
	assert.Equal(t, 1, p.Cursor())
}

func TestConsumeAll(t *testing.T) {
	recorder := &watchRecorder{}
	p := New(recorder)

	_, err := p.ConsumeAll(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)

	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))
	require.NoError(t, p.SetCursor(3))

	played, err := p.ConsumeAll(context.Background())
	require.NoError(t, err)
	require.Len(t, played, 3)
	assert.Equal(t, []int64{1, 2, 3}, recorder.watched)
	assert.Equal(t, 1, p.Cursor())
}

func TestConsumeRemaining(t *testing.T) {
	recorder := &watchRecorder{}
	p := New(recorder)

	_, err := p.ConsumeRemaining(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)

	fill(t, p, makeItem(1, "First", 100), makeItem(2, "Second", 100), makeItem(3, "Third", 100))
	require.NoError(t, p.SetCursor(2))

	played, err := p.ConsumeRemaining(context.Background())
	require.NoError(t, err)
	require.Len(t, played, 2)
	assert.Equal(t, []int64{2, 3}, recorder.watched)
	assert.Equal(t, 1, p.Cursor())
}
