package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nsfeld/salescoach/pkg/adapters/memory"
	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(memory.NewStore())
	ctx := context.Background()
	count := 1000

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("session-%d", i)
		_ = mgr.Save(ctx, key, domain.NewSession(key, "arena", "practice", nil))
		_ = mgr.Delete(ctx, key)
	}

	// Reference counting must garbage collect every lock entry.
	mgr.mu.Lock()
	remaining := len(mgr.locks)
	mgr.mu.Unlock()
	assert.Zero(t, remaining, "lock entries leaked")
}

func TestManager_SerializesSameKey(t *testing.T) {
	mgr := NewManager(memory.NewStore())
	ctx := context.Background()

	var inside int
	var maxInside int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = mgr.WithLock(ctx, "same-key", func(context.Context) error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside, "critical section entered concurrently")
}

func TestManager_LoadMissing(t *testing.T) {
	mgr := NewManager(memory.NewStore())
	_, err := mgr.Load(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
