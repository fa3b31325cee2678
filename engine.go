package salescoach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/nsfeld/salescoach/internal/logging"
	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/modules"
	"github.com/nsfeld/salescoach/pkg/persona"
	"github.com/nsfeld/salescoach/pkg/ports"
	"github.com/nsfeld/salescoach/pkg/scoring"
	"github.com/nsfeld/salescoach/pkg/session"
)

// Hooks receive engine lifecycle events. All fields are optional; nil hooks
// are skipped. Implementations must be fast and must not block the turn.
type Hooks struct {
	// OnTurn fires after every successfully persisted turn.
	OnTurn func(moduleID string, scores domain.ScoreVector, overall float64)

	// OnCompleted fires when a session reaches a terminal stage.
	OnCompleted func(moduleID string, grade domain.Grade)

	// OnFallback fires whenever a persona reply came from the deterministic
	// fallback instead of the live backend.
	OnFallback func(role ports.PersonaRole)
}

// Engine is the high-level entry point of the training system. It owns the
// turn pipeline: load, score, advance, generate counterpart text, persist.
type Engine struct {
	sessions *session.Manager
	registry *modules.Registry
	persona  *persona.Adapter
	hooks    Hooks
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the builtin module registry.
func WithRegistry(r *modules.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithPersona injects a custom persona adapter (default: deterministic
// fallback only, no live backend).
func WithPersona(p *persona.Adapter) Option {
	return func(e *Engine) { e.persona = p }
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock overrides the time source. Tests use it for stable timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine on top of a session manager. The manager carries the
// store and the per-key locking discipline; the engine never touches the
// store directly.
func New(sessions *session.Manager, opts ...Option) *Engine {
	e := &Engine{
		sessions: sessions,
		logger:   logging.NewNop(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = modules.Builtin()
	}
	if e.persona == nil {
		e.persona = persona.NewAdapter(nil, persona.WithLogger(e.logger))
	}
	// route adapter fallbacks into the engine hooks
	if e.hooks.OnFallback != nil {
		e.persona.SetFallbackHook(e.hooks.OnFallback)
	}
	return e
}

// Modules returns the IDs of the registered training modules, sorted.
func (e *Engine) Modules() []string { return e.registry.IDs() }

// Module returns the definition of one registered module.
func (e *Engine) Module(id string) (*modules.Module, error) { return e.registry.Get(id) }

// Start creates a session for the given module, or resumes an existing one.
// Starting is idempotent: a second call with the same key returns the stored
// session untouched, with Resumed set.
func (e *Engine) Start(ctx context.Context, key, moduleID string, params map[string]string) (*domain.StartResult, error) {
	mod, err := e.registry.Get(moduleID)
	if err != nil {
		return nil, err
	}

	var out *domain.StartResult
	err = e.sessions.WithLock(ctx, key, func(ctx context.Context) error {
		existing, err := e.sessions.Store().Load(ctx, key)
		switch {
		case err == nil:
			if existing.ModuleID != moduleID {
				return fmt.Errorf("session %q belongs to module %q", key, existing.ModuleID)
			}
			out = startResult(existing, true)
			return nil
		case !isNotFound(err):
			return err
		}

		if mod.ResolveParams != nil {
			params = mod.ResolveParams(params)
		}
		sess := domain.NewSession(key, moduleID, mod.Graph.Initial(), params)
		now := e.now()
		sess.CreatedAt, sess.UpdatedAt = now, now

		sess.Opening = append(sess.Opening, domain.Message{
			Role:      domain.RoleCoach,
			Text:      mod.Intro(sess.Params),
			Timestamp: now,
		})
		if mod.OpeningClient != nil {
			if line := mod.OpeningClient(sess.Params); line != "" {
				sess.Opening = append(sess.Opening, domain.Message{
					Role:      domain.RoleClient,
					Text:      line,
					Timestamp: now,
				})
			}
		}

		if err := e.sessions.Store().Save(ctx, key, sess); err != nil {
			return err
		}
		e.logger.Info("session started", "key", key, "module", moduleID, "stage", sess.CurrentStage)
		out = startResult(sess, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Turn processes one trainee utterance: score, merge, advance when the module
// predicate allows, generate the client reply and coach feedback, persist the
// updated session exactly once. A failed turn leaves stored state untouched.
func (e *Engine) Turn(ctx context.Context, key, utterance string) (*domain.TurnResult, error) {
	var out *domain.TurnResult
	err := e.sessions.WithLock(ctx, key, func(ctx context.Context) error {
		sess, err := e.sessions.Store().Load(ctx, key)
		if err != nil {
			return err
		}
		if sess.Status != domain.StatusActive {
			return fmt.Errorf("%w: session %q is %s", domain.ErrSessionCompleted, key, sess.Status)
		}
		mod, err := e.registry.Get(sess.ModuleID)
		if err != nil {
			return err
		}

		dialogue := sess.Dialogue()
		scores := scoring.Evaluate(utterance, dialogue, mod.Metrics)
		overall := scores.Overall()
		turn := sess.TurnCount + 1

		prevStage := sess.CurrentStage
		words := len(strings.Fields(utterance))
		if mod.Ready(scores, overall, turn, words) {
			if next := mod.Graph.Successor(sess.CurrentStage); next != "" {
				sess.CurrentStage = next
			}
		}

		stage, _ := mod.Graph.Stage(sess.CurrentStage)
		clientReply := e.persona.Generate(ctx, ports.PersonaRequest{
			Role:      ports.PersonaClient,
			Profile:   mod.ClientProfile,
			Stage:     stage.Description,
			Hint:      stage.Hint,
			History:   dialogue,
			Utterance: utterance,
			Scores:    scores,
		})
		coachFeedback := e.persona.Generate(ctx, ports.PersonaRequest{
			Role:      ports.PersonaCoach,
			Profile:   mod.CoachProfile,
			Stage:     stage.Description,
			Hint:      stage.Hint,
			History:   dialogue,
			Utterance: utterance,
			Scores:    scores,
		})

		now := e.now()
		sess.MergeScores(scores, sess.TurnCount)
		sess.History = append(sess.History,
			domain.Message{Role: domain.RoleManager, Text: utterance, Timestamp: now},
			domain.Message{Role: domain.RoleClient, Text: clientReply, Timestamp: now},
		)
		sess.TurnCount++
		final := mod.Graph.IsTerminal(sess.CurrentStage)
		if final {
			sess.Status = domain.StatusCompleted
		}
		sess.UpdatedAt = now

		if err := e.sessions.Store().Save(ctx, key, sess); err != nil {
			return err
		}

		e.logger.Info("turn processed",
			"key", key, "module", sess.ModuleID, "turn", sess.TurnCount,
			"stage", sess.CurrentStage, "overall", round1(overall), "final", final)
		if e.hooks.OnTurn != nil {
			e.hooks.OnTurn(sess.ModuleID, scores, overall)
		}
		if final && e.hooks.OnCompleted != nil {
			e.hooks.OnCompleted(sess.ModuleID, domain.GradeFor(sess.Scores))
		}

		out = &domain.TurnResult{
			Stage:            sess.CurrentStage,
			PreviousStage:    prevStage,
			CounterpartReply: clientReply,
			CoachFeedback:    coachFeedback,
			Scores:           scores.Rounded(),
			Overall:          round1(overall),
			IsFinal:          final,
			TurnCount:        sess.TurnCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Result returns the aggregate outcome of a session. It never mutates state
// and works for active, completed and abandoned sessions alike.
func (e *Engine) Result(ctx context.Context, key string) (*domain.FinalResult, error) {
	sess, err := e.sessions.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return &domain.FinalResult{
		Status:      sess.Status,
		FinalScores: sess.Scores.Rounded(),
		Grade:       domain.GradeFor(sess.Scores),
		History:     sess.Dialogue(),
		TurnCount:   sess.TurnCount,
	}, nil
}

// Snapshot returns the introspection view of a session: current stage,
// progress estimate and the full message log.
func (e *Engine) Snapshot(ctx context.Context, key string) (*domain.Snapshot, error) {
	sess, err := e.sessions.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	snap := &domain.Snapshot{
		Key:       sess.Key,
		ModuleID:  sess.ModuleID,
		Stage:     sess.CurrentStage,
		Status:    sess.Status,
		TurnCount: sess.TurnCount,
		Messages:  sess.Dialogue(),
		Scores:    sess.Scores.Rounded(),
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
		UpdatedAt: sess.UpdatedAt.Format(time.RFC3339),
	}
	if mod, err := e.registry.Get(sess.ModuleID); err == nil {
		if st, ok := mod.Graph.Stage(sess.CurrentStage); ok {
			snap.StageDesc = st.Description
		}
		snap.ProgressPercent = mod.Graph.Progress(sess.CurrentStage)
	}
	return snap, nil
}

// Abandon marks an active session as abandoned. Abandoning twice is a no-op;
// a completed session cannot be abandoned.
func (e *Engine) Abandon(ctx context.Context, key string) error {
	return e.sessions.WithLock(ctx, key, func(ctx context.Context) error {
		sess, err := e.sessions.Store().Load(ctx, key)
		if err != nil {
			return err
		}
		switch sess.Status {
		case domain.StatusAbandoned:
			return nil
		case domain.StatusCompleted:
			return fmt.Errorf("%w: session %q is completed", domain.ErrSessionCompleted, key)
		}
		sess.Status = domain.StatusAbandoned
		sess.UpdatedAt = e.now()
		if err := e.sessions.Store().Save(ctx, key, sess); err != nil {
			return err
		}
		e.logger.Info("session abandoned", "key", key, "module", sess.ModuleID)
		return nil
	})
}

func startResult(sess *domain.Session, resumed bool) *domain.StartResult {
	out := &domain.StartResult{
		Stage:   sess.CurrentStage,
		Status:  sess.Status,
		Resumed: resumed,
	}
	for _, msg := range sess.Opening {
		switch msg.Role {
		case domain.RoleCoach:
			if out.CoachMessage == "" {
				out.CoachMessage = msg.Text
			}
		case domain.RoleClient:
			if out.ClientMessage == "" {
				out.ClientMessage = msg.Text
			}
		}
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
