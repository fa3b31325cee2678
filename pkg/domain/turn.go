package domain

// TurnResult is the value returned for every processed turn. It is derived
// per call and never persisted verbatim.
type TurnResult struct {
	Stage            string      `json:"stage"`
	PreviousStage    string      `json:"previous_stage"`
	CounterpartReply string      `json:"counterpart_reply"`
	CoachFeedback    string      `json:"coach_feedback"`
	Scores           ScoreVector `json:"scores"`
	Overall          float64     `json:"overall"`
	IsFinal          bool        `json:"is_final"`
	TurnCount        int         `json:"turn_count"`
}

// StartResult is the snapshot returned by Start.
type StartResult struct {
	Stage         string        `json:"stage"`
	CoachMessage  string        `json:"coach_message"`
	ClientMessage string        `json:"client_message,omitempty"`
	Status        SessionStatus `json:"status"`
	Resumed       bool          `json:"resumed"`
}

// FinalResult is the non-mutating aggregate view returned by Result.
type FinalResult struct {
	Status      SessionStatus `json:"status"`
	FinalScores ScoreVector   `json:"final_scores"`
	Grade       Grade         `json:"grade"`
	History     []Message     `json:"history"`
	TurnCount   int           `json:"turn_count"`
}

// Snapshot is the introspection view of a session: current position plus
// message statistics.
type Snapshot struct {
	Key             string        `json:"key"`
	ModuleID        string        `json:"module_id"`
	Stage           string        `json:"stage"`
	StageDesc       string        `json:"stage_description,omitempty"`
	ProgressPercent int           `json:"progress_percent"`
	Status          SessionStatus `json:"status"`
	TurnCount       int           `json:"turn_count"`
	Messages        []Message     `json:"messages"`
	Scores          ScoreVector   `json:"scores"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       string        `json:"updated_at"`
}
