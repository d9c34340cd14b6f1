package schedule

import (
	"context"
	"sync"
	"time"
)

const maxNotifications = 1000
const tickInterval = 10 * time.Second
const maxTaskTimeout = 10 * time.Minute

// Scheduler runs background tasks one at a time on a dedicated goroutine
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup

	notifies chan struct{}

	mu            sync.Mutex
	q             queue
	running       *Task
	cancelRunning bool
}

func New() *Scheduler {
	s := Scheduler{
		notifies: make(chan struct{}, maxNotifications),
		q:        newQueue(),
	}

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process()
	}()

	return &s
}

// Add enqueues the task according to its run policy
func (s *Scheduler) Add(t *Task) {
	s.mu.Lock()
	s.q.push(t)
	s.mu.Unlock()
	s.notify()
}

// Cancel discards all queued tasks of the group. The result of a currently
// running task of the group is ignored.
func (s *Scheduler) Cancel(group string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.q.cancel(group)
	if s.running != nil && s.running.Group == group {
		s.cancelRunning = true
	}
}

// Stop shuts the scheduler down and waits for the worker to exit
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) notify() {
	select {
	case s.notifies <- struct{}{}:
	default:
	}
}

func (s *Scheduler) process() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.notifies:
			s.processQueue()
		case <-ticker.C:
			s.processQueue()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) processQueue() {
	for {
		now := time.Now()
		s.mu.Lock()
		t := s.q.pop(now)
		s.running = t
		s.cancelRunning = false
		s.mu.Unlock()

		if t == nil {
			return
		}

		tCtx, tCancel := context.WithTimeout(s.ctx, t.timeout)
		result := t.Fn(tCtx)
		tCancel()

		s.mu.Lock()
		canceled := s.cancelRunning
		s.running = nil
		s.mu.Unlock()

		if canceled || s.ctx.Err() != nil {
			if s.ctx.Err() != nil {
				return
			}
			continue
		}

		switch result.Result {
		case OpResultRetry:
			s.Add(t.Immediately())
		case OpResultRetryAfter:
			s.Add(t.After(result.After))
		}
	}
}
