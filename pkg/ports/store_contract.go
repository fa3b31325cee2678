package ports

import (
	"context"
	"testing"
	"time"

	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract verifies that a SessionStore implementation adheres
// to the interface contract. Every adapter's test suite runs it.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		session := domain.NewSession(key, "master_path", "greeting", map[string]string{"client_type": "calm"})
		session.History = append(session.History,
			domain.Message{Role: domain.RoleManager, Text: "Добрый день!", Timestamp: time.Now().UTC()},
			domain.Message{Role: domain.RoleClient, Text: "Здравствуйте.", Timestamp: time.Now().UTC()},
		)
		session.TurnCount = 1
		session.Scores = domain.ScoreVector{domain.MetricWarmth: 7.5}

		require.NoError(t, store.Save(ctx, key, session))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, session.ModuleID, loaded.ModuleID)
		assert.Equal(t, session.CurrentStage, loaded.CurrentStage)
		assert.Equal(t, session.TurnCount, loaded.TurnCount)
		assert.Len(t, loaded.History, 2)
		assert.Equal(t, "Добрый день!", loaded.History[0].Text)
		assert.InDelta(t, 7.5, loaded.Scores[domain.MetricWarmth], 0.001)
		assert.Equal(t, "calm", loaded.Params["client_type"])
	})

	t.Run("Load Returns Isolated Copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		loaded.History[0].Text = "mutated"
		loaded.Scores[domain.MetricWarmth] = 0

		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Добрый день!", again.History[0].Text)
		assert.InDelta(t, 7.5, again.Scores[domain.MetricWarmth], 0.001)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, domain.NewSession(key, "arena", "practice", nil)))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		require.NoError(t, store.Save(ctx, id1, domain.NewSession(id1, "exam", "round_1", nil)))
		require.NoError(t, store.Save(ctx, id2, domain.NewSession(id2, "exam", "round_1", nil)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
