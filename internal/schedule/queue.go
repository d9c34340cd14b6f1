package schedule

import (
	"container/list"
	"time"
)

// queue keeps ordered tasks separately from time-scheduled ones. Timed tasks
// are held sorted by their due time.
type queue struct {
	ordered *list.List
	timed   *list.List
}

func newQueue() queue {
	return queue{
		ordered: list.New(),
		timed:   list.New(),
	}
}

func (q queue) push(t *Task) {
	switch t.run {
	case runInOrder:
		q.ordered.PushBack(t)

	case runImmediately:
		q.ordered.PushFront(t)

	case runAfter:
		t.scheduledAt = time.Now().Add(t.dur)
		q.scheduleTask(t)

	case runAt:
		t.scheduledAt = t.tm
		q.scheduleTask(t)
	}
}

func (q queue) scheduleTask(t *Task) {
	for cur := q.timed.Front(); cur != nil; cur = cur.Next() {
		if t.scheduledAt.Before(cur.Value.(*Task).scheduledAt) {
			q.timed.InsertBefore(t, cur)
			return
		}
	}
	q.timed.PushBack(t)
}

func (q queue) pop(now time.Time) *Task {
	cur := q.timed.Front()
	if cur != nil {
		t := cur.Value.(*Task)
		if t.scheduledAt.Before(now) {
			q.timed.Remove(cur)
			return t
		}
	}

	cur = q.ordered.Front()
	if cur != nil {
		t := cur.Value.(*Task)
		q.ordered.Remove(cur)
		return t
	}

	return nil
}

func (q queue) cancel(group string) {
	for _, l := range []*list.List{q.ordered, q.timed} {
		cur := l.Front()
		for cur != nil {
			next := cur.Next()
			if cur.Value.(*Task).Group == group {
				l.Remove(cur)
			}
			cur = next
		}
	}
}
