package lock

import (
	"context"
	"time"
)

// TimedLock acquires the key lock or gives up after the timeout
func TimedLock(ctx context.Context, l Locker, key string, timeout time.Duration) (Unlocker, error) {
	tCtx, tCancel := context.WithTimeout(ctx, timeout)
	defer tCancel()

	return l.ContextLock(tCtx, key)
}
