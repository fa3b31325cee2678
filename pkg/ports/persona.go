package ports

import (
	"context"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// PersonaRole selects which counterpart the backend should play.
type PersonaRole string

const (
	// PersonaClient produces in-character client replies.
	PersonaClient PersonaRole = "client"
	// PersonaCoach produces coaching feedback on the trainee's message.
	PersonaCoach PersonaRole = "coach"
)

// PersonaRequest carries everything a backend needs to produce a reply.
type PersonaRequest struct {
	Role PersonaRole

	// Profile is the module-supplied persona description (system prompt text).
	Profile string

	// Stage and Hint describe where the conversation currently is.
	Stage string
	Hint  string

	// History is the dialogue so far, oldest first.
	History []domain.Message

	// Utterance is the trainee message being answered.
	Utterance string

	// Scores is the heuristic evaluation of Utterance; coach replies are
	// conditioned on it.
	Scores domain.ScoreVector
}

// PersonaBackend generates counterpart text. Implementations may call out to
// a generative service; errors are absorbed by the persona adapter and never
// reach the engine.
type PersonaBackend interface {
	// Reply produces text for the requested role.
	Reply(ctx context.Context, req PersonaRequest) (string, error)

	// Available reports whether the backend is configured and reachable
	// enough to be worth calling.
	Available() bool
}
