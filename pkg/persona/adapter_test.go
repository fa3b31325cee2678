package persona

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend scripts live backend behavior for adapter tests.
type stubBackend struct {
	reply     string
	err       error
	delay     time.Duration
	available bool
	calls     int
}

func (s *stubBackend) Available() bool { return s.available }

func (s *stubBackend) Reply(ctx context.Context, _ ports.PersonaRequest) (string, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func clientReq() ports.PersonaRequest {
	return ports.PersonaRequest{
		Role:   ports.PersonaClient,
		Stage:  "greeting",
		Scores: domain.ScoreVector{domain.MetricWarmth: 8, domain.MetricQuestions: 7},
	}
}

func TestAdapter_LiveReplyPassedThrough(t *testing.T) {
	live := &stubBackend{reply: "Здравствуйте! Очень интересно.", available: true}
	a := NewAdapter(live)

	text := a.Generate(context.Background(), clientReq())
	assert.Equal(t, "Здравствуйте! Очень интересно.", text)
	assert.Equal(t, 1, live.calls)
}

func TestAdapter_TimeoutFallsBack(t *testing.T) {
	live := &stubBackend{reply: "never delivered", delay: time.Second, available: true}
	fallbacks := 0
	a := NewAdapter(live,
		WithTimeout(20*time.Millisecond),
		WithFallbackHook(func(ports.PersonaRole) { fallbacks++ }),
	)

	start := time.Now()
	text := a.Generate(context.Background(), clientReq())

	assert.NotEmpty(t, text)
	assert.NotEqual(t, "never delivered", text)
	assert.Equal(t, 1, fallbacks)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "a hung backend must not hang the turn")
}

func TestAdapter_ErrorAbsorbed(t *testing.T) {
	live := &stubBackend{err: errors.New("boom"), available: true}
	a := NewAdapter(live)

	text := a.Generate(context.Background(), clientReq())
	assert.NotEmpty(t, text)
}

func TestAdapter_EmptyReplyFallsBack(t *testing.T) {
	live := &stubBackend{reply: "   ", available: true}
	a := NewAdapter(live)

	text := a.Generate(context.Background(), clientReq())
	assert.NotEmpty(t, strings.TrimSpace(text))
}

func TestAdapter_NilBackendUsesFallback(t *testing.T) {
	a := NewAdapter(nil)
	for _, role := range []ports.PersonaRole{ports.PersonaClient, ports.PersonaCoach} {
		req := clientReq()
		req.Role = role
		text := a.Generate(context.Background(), req)
		assert.NotEmpty(t, text, "role %s", role)
	}
}

func TestAdapter_TruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("тёплое слово ", 50) // multi-byte runes
	live := &stubBackend{reply: long, available: true}
	a := NewAdapter(live, WithMaxReplyChars(40))

	text := a.Generate(context.Background(), clientReq())
	require.True(t, strings.HasSuffix(text, "…"))
	// Valid UTF-8 after the cut proves no code point was split.
	assert.True(t, strings.ToValidUTF8(text, "") == text)
	assert.LessOrEqual(t, len([]rune(text)), 41)
}

func TestFallback_Deterministic(t *testing.T) {
	f := NewFallback()
	req := ports.PersonaRequest{
		Role:   ports.PersonaCoach,
		Hint:   "Собери детали истории.",
		Scores: domain.ScoreVector{domain.MetricWarmth: 3, domain.MetricQuestions: 2},
	}
	a, err := f.Reply(context.Background(), req)
	require.NoError(t, err)
	b, err := f.Reply(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Собери детали истории.")
}

func TestFallback_ClientBands(t *testing.T) {
	f := NewFallback()
	ctx := context.Background()

	warm, _ := f.Reply(ctx, ports.PersonaRequest{Role: ports.PersonaClient, Scores: domain.ScoreVector{"warmth": 9}})
	cold, _ := f.Reply(ctx, ports.PersonaRequest{Role: ports.PersonaClient, Scores: domain.ScoreVector{"warmth": 1}})
	assert.NotEqual(t, warm, cold)
}
