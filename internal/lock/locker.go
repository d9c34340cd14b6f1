package lock

import (
	"context"
	"sync"
	"time"
)

// Locker hands out mutexes keyed by an arbitrary string (a resource group
// like "screening", or a single item key). Locks are created on demand and
// dropped once the last holder releases them.
type Locker interface {
	Lock(key string) Unlocker
	ContextLock(ctx context.Context, key string) (Unlocker, error)
}

type Unlocker interface {
	Unlock()
}

const retryInterval = 100 * time.Millisecond

type keyLock struct {
	mu     sync.Mutex
	ref    uint64
	parent *locker
	key    string
}

// Unlock implements Unlocker.
func (l *keyLock) Unlock() {
	l.parent.release(l)
	l.mu.Unlock()
}

type locker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewLocker() Locker {
	return &locker{locks: map[string]*keyLock{}}
}

func (l *locker) getOrCreate(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	result, ok := l.locks[key]
	if !ok {
		result = &keyLock{parent: l, key: key}
		l.locks[key] = result
	}
	result.ref++
	return result
}

// Lock implements Locker.
func (l *locker) Lock(key string) Unlocker {
	kl := l.getOrCreate(key)
	kl.mu.Lock()
	return kl
}

// ContextLock implements Locker.
func (l *locker) ContextLock(ctx context.Context, key string) (Unlocker, error) {
	kl := l.getOrCreate(key)
	if kl.mu.TryLock() {
		return kl, nil
	}

	for {
		select {
		case <-ctx.Done():
			l.release(kl)
			return nil, ctx.Err()
		case <-time.After(retryInterval):
			if kl.mu.TryLock() {
				return kl, nil
			}
		}
	}
}

func (l *locker) release(kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.ref--
	if kl.ref == 0 {
		delete(l.locks, kl.key)
	}
}
