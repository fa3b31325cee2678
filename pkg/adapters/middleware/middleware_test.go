package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsfeld/salescoach/pkg/adapters/memory"
	"github.com/nsfeld/salescoach/pkg/adapters/middleware"
	"github.com/nsfeld/salescoach/pkg/domain"
)

func generateKey(t *testing.T) []byte {
	t.Helper()
	k := make([]byte, 32)
	_, err := io.ReadFull(rand.Reader, k)
	require.NoError(t, err)
	return k
}

func sampleSession() *domain.Session {
	sess := domain.NewSession("s1", "master_path", "greeting", nil)
	sess.History = append(sess.History,
		domain.Message{Role: domain.RoleManager, Text: "Мой номер +7 916 123-45-67, почта ivan@example.com"},
		domain.Message{Role: domain.RoleClient, Text: "Хорошо, записала"},
	)
	sess.TurnCount = 1
	return sess
}

func TestPIIMiddleware_MasksContacts(t *testing.T) {
	inner := memory.NewStore()
	store := middleware.NewPIIMiddleware(nil)(inner)
	ctx := context.Background()

	original := sampleSession()
	require.NoError(t, store.Save(ctx, "s1", original))

	// the engine's copy keeps the raw text
	assert.Contains(t, original.History[0].Text, "ivan@example.com")

	stored, err := inner.Load(ctx, "s1")
	require.NoError(t, err)
	assert.NotContains(t, stored.History[0].Text, "ivan@example.com")
	assert.NotContains(t, stored.History[0].Text, "123-45-67")
	assert.Contains(t, stored.History[0].Text, "***")
	assert.Equal(t, "Хорошо, записала", stored.History[1].Text)
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	inner := memory.NewStore()
	key := generateKey(t)
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(inner)
	ctx := context.Background()

	original := sampleSession()
	require.NoError(t, store.Save(ctx, "s1", original))

	// the underlying store only sees the envelope
	envelope, err := inner.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, envelope.History)
	assert.NotEmpty(t, envelope.Params["__encrypted__"])
	assert.Equal(t, "master_path", envelope.ModuleID, "routing fields stay readable")

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, original.History, loaded.History)
	assert.Equal(t, 1, loaded.TurnCount)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	inner := memory.NewStore()
	oldKey, newKey := generateKey(t), generateKey(t)
	ctx := context.Background()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(inner)
	require.NoError(t, oldStore.Save(ctx, "s1", sampleSession()))

	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(inner)

	loaded, err := rotated.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.TurnCount)

	// without the fallback the old ciphertext is unreadable
	strict := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey})(inner)
	_, err = strict.Load(ctx, "s1")
	assert.Error(t, err)
}

func TestEncryptionMiddleware_RejectsPlaintext(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, inner.Save(ctx, "s1", sampleSession()))

	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})(inner)
	_, err := store.Load(ctx, "s1")
	assert.Error(t, err)
}

func TestChainOrder(t *testing.T) {
	inner := memory.NewStore()
	key := generateKey(t)
	store := middleware.Chain(inner,
		middleware.NewPIIMiddleware(nil),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}),
	)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", sampleSession()))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.NotContains(t, loaded.History[0].Text, "ivan@example.com",
		"PII is masked before encryption, so the decrypted copy is scrubbed too")
}
