package persona

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nsfeld/salescoach/internal/logging"
	"github.com/nsfeld/salescoach/pkg/ports"
)

// ErrBackendUnavailable marks a live backend failure. It never leaves this
// package: Adapter converts it into fallback output.
var ErrBackendUnavailable = errors.New("persona backend unavailable")

const (
	// defaultTimeout bounds a single backend call. A hung backend must never
	// hang a turn.
	defaultTimeout = 4 * time.Second

	// defaultMaxReplyChars caps reply length, counted in code points.
	defaultMaxReplyChars = 1200
)

// Adapter fronts an optional live backend with the deterministic fallback.
// It implements ports.PersonaBackend itself, so callers hold a single value
// that is always available and never returns an error.
type Adapter struct {
	live     ports.PersonaBackend // may be nil
	fallback *Fallback
	timeout  time.Duration
	maxChars int
	logger   *slog.Logger

	// onFallback is invoked whenever the fallback path is taken; used for
	// metrics. Never nil.
	onFallback func(role ports.PersonaRole)
}

// AdapterOption configures the adapter.
type AdapterOption func(*Adapter)

// WithTimeout overrides the backend call ceiling.
func WithTimeout(d time.Duration) AdapterOption {
	return func(a *Adapter) { a.timeout = d }
}

// WithMaxReplyChars overrides the reply length budget (code points).
func WithMaxReplyChars(n int) AdapterOption {
	return func(a *Adapter) { a.maxChars = n }
}

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) AdapterOption {
	return func(a *Adapter) { a.logger = logger }
}

// WithFallbackHook registers a callback fired on every fallback reply.
func WithFallbackHook(fn func(role ports.PersonaRole)) AdapterOption {
	return func(a *Adapter) { a.onFallback = fn }
}

// SetFallbackHook replaces the fallback callback after construction. The
// engine uses it to attach metrics to an adapter built elsewhere.
func (a *Adapter) SetFallbackHook(fn func(role ports.PersonaRole)) {
	if fn != nil {
		a.onFallback = fn
	}
}

// NewAdapter wraps a live backend (nil for fallback-only operation).
func NewAdapter(live ports.PersonaBackend, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		live:       live,
		fallback:   NewFallback(),
		timeout:    defaultTimeout,
		maxChars:   defaultMaxReplyChars,
		logger:     logging.NewNop(),
		onFallback: func(ports.PersonaRole) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Available always reports true: the adapter degrades, it does not fail.
func (a *Adapter) Available() bool { return true }

// Reply returns backend text when the live backend answers in time, and
// deterministic fallback text otherwise. The error is always nil; the
// signature satisfies ports.PersonaBackend.
func (a *Adapter) Reply(ctx context.Context, req ports.PersonaRequest) (string, error) {
	return a.Generate(ctx, req), nil
}

// Generate is Reply without the vestigial error.
func (a *Adapter) Generate(ctx context.Context, req ports.PersonaRequest) string {
	text, err := a.tryLive(ctx, req)
	if err != nil {
		if !errors.Is(err, ErrBackendUnavailable) {
			a.logger.Warn("persona backend failed, using fallback",
				"role", string(req.Role),
				"err", err,
			)
		}
		a.onFallback(req.Role)
		text, _ = a.fallback.Reply(ctx, req)
	}
	return truncate(text, a.maxChars)
}

func (a *Adapter) tryLive(ctx context.Context, req ports.PersonaRequest) (string, error) {
	if a.live == nil || !a.live.Available() {
		return "", ErrBackendUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.live.Reply(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrBackendUnavailable
	}
	return text, nil
}

// truncate cuts at a code-point boundary so multi-byte text is never corrupted.
func truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return strings.TrimSpace(string(runes[:maxChars])) + "…"
}
