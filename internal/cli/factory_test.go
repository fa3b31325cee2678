package cli

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	salescoach "github.com/nsfeld/salescoach"
	"github.com/nsfeld/salescoach/internal/config"
	"github.com/nsfeld/salescoach/internal/logging"
)

func TestBuildEngineMemory(t *testing.T) {
	engine, cleanup, err := BuildEngine(config.Default(), logging.NewNop(), salescoach.Hooks{})
	require.NoError(t, err)
	defer cleanup()

	res, err := engine.Start(context.Background(), "k1", "master_path", nil)
	require.NoError(t, err)
	assert.Equal(t, "greeting", res.Stage)
}

func TestBuildEngineRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Store.Driver = "redis"
	cfg.Store.Redis.Addr = mr.Addr()
	cfg.Store.Redis.Lock = true

	engine, cleanup, err := BuildEngine(cfg, logging.NewNop(), salescoach.Hooks{})
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	_, err = engine.Start(ctx, "k1", "objections", nil)
	require.NoError(t, err)

	res, err := engine.Turn(ctx, "k1", "Понимаю вас! Давайте разберёмся, что именно смущает?")
	require.NoError(t, err)
	assert.Equal(t, 1, res.TurnCount)
}

func TestBuildEngineWithStoreMiddleware(t *testing.T) {
	t.Setenv("TEST_STORE_KEY", base64.StdEncoding.EncodeToString(make([]byte, 32)))

	cfg := config.Default()
	cfg.Store.MaskPII = true
	cfg.Store.EncryptionKeyEnv = "TEST_STORE_KEY"

	engine, cleanup, err := BuildEngine(cfg, logging.NewNop(), salescoach.Hooks{})
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	_, err = engine.Start(ctx, "k1", "master_path", nil)
	require.NoError(t, err)
	_, err = engine.Turn(ctx, "k1", "Здравствуйте! Мой номер +7 916 123-45-67, запишите.")
	require.NoError(t, err)

	snap, err := engine.Snapshot(ctx, "k1")
	require.NoError(t, err)
	for _, msg := range snap.Messages {
		assert.NotContains(t, msg.Text, "123-45-67")
	}
}

func TestBuildEngineBadKey(t *testing.T) {
	cfg := config.Default()
	cfg.Store.EncryptionKeyEnv = "MISSING_STORE_KEY"
	_, _, err := BuildEngine(cfg, logging.NewNop(), salescoach.Hooks{})
	assert.Error(t, err)
}

func TestBuildEngineBadDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "tape"
	_, _, err := BuildEngine(cfg, logging.NewNop(), salescoach.Hooks{})
	assert.Error(t, err)
}
