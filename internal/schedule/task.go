package schedule

import (
	"context"
	"time"
)

type runPolicy int

const (
	runInOrder runPolicy = iota
	runImmediately
	runAt
	runAfter
)

type OpResult int

const (
	OpResultDone OpResult = iota
	OpResultRetry
	OpResultRetryAfter
)

type Result struct {
	Result OpResult
	After  time.Duration
}

type ExecuteFn func(ctx context.Context) Result

// Task is a unit of background work. Tasks of the same group can be canceled
// together.
type Task struct {
	Group string
	Fn    ExecuteFn

	run runPolicy
	dur time.Duration
	tm  time.Time

	timeout time.Duration

	scheduledAt time.Time
}

func NewTask(group string, fn ExecuteFn) *Task {
	return &Task{Group: group, Fn: fn, timeout: maxTaskTimeout}
}

func (t *Task) Immediately() *Task {
	t.run = runImmediately
	return t
}

func (t *Task) At(tm time.Time) *Task {
	t.run = runAt
	t.tm = tm
	return t
}

func (t *Task) After(dur time.Duration) *Task {
	t.run = runAfter
	t.dur = dur
	return t
}

func (t *Task) WithTimeout(timeout time.Duration) *Task {
	t.timeout = timeout
	return t
}
