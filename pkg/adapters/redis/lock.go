package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/nsfeld/salescoach/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Locker implements ports.DistributedLocker using Redis SET NX PX. Used when
// several engine replicas share one session store.
type Locker struct {
	client *backend.Client
	prefix string
}

// NewLocker creates a Redis locker.
func NewLocker(client *backend.Client, prefix string) *Locker {
	return &Locker{client: client, prefix: prefix}
}

// Lock acquires the lock for key, polling with backoff until success or
// context cancellation. The returned UnlockFunc releases only its own lock
// (value-checked via Lua), so a stale holder cannot free a successor's lock.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	val := fmt.Sprintf("%d", time.Now().UnixNano())

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			ok, err := l.client.SetNX(ctx, lockKey, val, ttl).Result()
			if err != nil {
				return nil, fmt.Errorf("redis error acquiring lock: %w", err)
			}
			if !ok {
				continue
			}
			return func(ctx context.Context) error {
				script := `
					if redis.call("get", KEYS[1]) == ARGV[1] then
						return redis.call("del", KEYS[1])
					else
						return 0
					end
				`
				return l.client.Eval(ctx, script, []string{lockKey}, val).Err()
			}, nil
		}
	}
}
