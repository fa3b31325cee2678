package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker coordinates session access across multiple replicas.
// The in-process session manager handles single-replica serialization; a
// locker extends the same guarantee to horizontally scaled deployments.
type DistributedLocker interface {
	// Lock blocks until the lock for key is acquired, the context is canceled,
	// or the TTL expires. The returned UnlockFunc MUST be called to release.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
