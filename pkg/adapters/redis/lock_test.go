package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisadapter "github.com/nsfeld/salescoach/pkg/adapters/redis"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_LockUnlock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	locker := redisadapter.NewLocker(client, "test:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "s1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:lock:s1"))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("test:lock:s1"))
}

func TestLocker_Contention(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	locker := redisadapter.NewLocker(client, "test:")
	ctx := context.Background()

	unlock1, err := locker.Lock(ctx, "shared", 5*time.Second)
	require.NoError(t, err)

	// Second holder blocks until its context times out.
	ctxTimeout, cancel := context.WithTimeout(ctx, 400*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctxTimeout, "shared", 5*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Released lock can be re-acquired.
	require.NoError(t, unlock1(ctx))
	unlock2, err := locker.Lock(ctx, "shared", 5*time.Second)
	require.NoError(t, err)
	defer unlock2(ctx)
}
