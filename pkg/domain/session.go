package domain

import "time"

// SessionStatus is the lifecycle state of a training session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusAbandoned SessionStatus = "abandoned"
)

// Message roles. The trainee is the "manager" (sales manager in training);
// the persona backend plays "client" and "coach".
const (
	RoleManager = "manager"
	RoleClient  = "client"
	RoleCoach   = "coach"
)

// Message is one utterance in a session. Insertion order is significant.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the persisted state of one trainee-counterpart dialogue.
//
// Invariants maintained by the engine:
//   - CurrentStage is always a member of the owning module's stage graph.
//   - History holds exactly TurnCount trainee/client message pairs; the
//     module's scripted opening lines live in Opening and are not counted.
//   - Sessions are mutated exactly once per turn and never deleted.
type Session struct {
	Key          string            `json:"key"`
	ModuleID     string            `json:"module_id"`
	CurrentStage string            `json:"current_stage"`
	TurnCount    int               `json:"turn_count"`
	Opening      []Message         `json:"opening,omitempty"`
	History      []Message         `json:"history"`
	Scores       ScoreVector       `json:"cumulative_scores"`
	Status       SessionStatus     `json:"status"`
	Params       map[string]string `json:"params,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewSession creates an active session at the module's initial stage.
func NewSession(key, moduleID, initialStage string, params map[string]string) *Session {
	now := time.Now().UTC()
	return &Session{
		Key:          key,
		ModuleID:     moduleID,
		CurrentStage: initialStage,
		Scores:       ScoreVector{},
		Status:       StatusActive,
		Params:       params,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MergeScores folds a turn's score vector into the running per-metric mean.
// n is the number of turns already aggregated before this one.
func (s *Session) MergeScores(turn ScoreVector, n int) {
	if s.Scores == nil {
		s.Scores = ScoreVector{}
	}
	for metric, value := range turn {
		prev := s.Scores[metric]
		s.Scores[metric] = prev + (value-prev)/float64(n+1)
	}
}

// Dialogue returns the opening lines followed by the turn history: the full
// conversation as the trainee saw it, suitable as persona backend context.
func (s *Session) Dialogue() []Message {
	out := make([]Message, 0, len(s.Opening)+len(s.History))
	out = append(out, s.Opening...)
	out = append(out, s.History...)
	return out
}

// Clone returns a deep copy safe for independent mutation. Store adapters use
// it so callers can never reach shared internal state.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Opening = append([]Message(nil), s.Opening...)
	clone.History = append([]Message(nil), s.History...)
	clone.Scores = make(ScoreVector, len(s.Scores))
	for k, v := range s.Scores {
		clone.Scores[k] = v
	}
	if s.Params != nil {
		clone.Params = make(map[string]string, len(s.Params))
		for k, v := range s.Params {
			clone.Params[k] = v
		}
	}
	return &clone
}
