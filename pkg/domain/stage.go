package domain

import "fmt"

// Stage is a single phase of a training module's conversation.
type Stage struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Hint is the coach guidance shown (or fed to the persona backend) while
	// the trainee works through this stage.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`

	// Next lists successor candidates in declaration order. When the module's
	// readiness predicate is satisfied, the engine moves to the first entry.
	Next []string `json:"next,omitempty" yaml:"next,omitempty"`

	// Terminal marks a sink stage. Entering it completes the session.
	Terminal bool `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

// StageGraph is an immutable set of stages with a designated initial stage.
// Built once per module at process start; never mutated afterwards.
type StageGraph struct {
	stages []Stage
	index  map[string]int
}

// NewStageGraph validates and builds a graph. The first stage is the initial
// one. Every successor must exist and at least one stage must be terminal.
func NewStageGraph(stages ...Stage) (*StageGraph, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("stage graph needs at least one stage")
	}
	index := make(map[string]int, len(stages))
	for i, st := range stages {
		if st.Name == "" {
			return nil, fmt.Errorf("stage %d has no name", i)
		}
		if _, dup := index[st.Name]; dup {
			return nil, fmt.Errorf("duplicate stage %q", st.Name)
		}
		index[st.Name] = i
	}
	terminal := false
	for _, st := range stages {
		if st.Terminal {
			terminal = true
		}
		for _, next := range st.Next {
			if _, ok := index[next]; !ok {
				return nil, fmt.Errorf("stage %q links to unknown stage %q", st.Name, next)
			}
		}
	}
	if !terminal {
		return nil, fmt.Errorf("stage graph has no terminal stage")
	}
	return &StageGraph{stages: stages, index: index}, nil
}

// MustStageGraph is NewStageGraph that panics on error. Module definitions are
// static, so a bad graph is a programming error caught at startup.
func MustStageGraph(stages ...Stage) *StageGraph {
	g, err := NewStageGraph(stages...)
	if err != nil {
		panic(err)
	}
	return g
}

// LinearStages builds the common case: each stage links to the following one
// and the last stage is terminal.
func LinearStages(names ...string) []Stage {
	stages := make([]Stage, len(names))
	for i, name := range names {
		stages[i] = Stage{Name: name}
		if i < len(names)-1 {
			stages[i].Next = []string{names[i+1]}
		} else {
			stages[i].Terminal = true
		}
	}
	return stages
}

// Initial returns the entry stage name.
func (g *StageGraph) Initial() string { return g.stages[0].Name }

// Contains reports whether the named stage belongs to the graph.
func (g *StageGraph) Contains(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Stage returns the named stage definition.
func (g *StageGraph) Stage(name string) (Stage, bool) {
	i, ok := g.index[name]
	if !ok {
		return Stage{}, false
	}
	return g.stages[i], true
}

// Successor returns the first declared successor of the named stage, or ""
// when the stage is a sink.
func (g *StageGraph) Successor(name string) string {
	st, ok := g.Stage(name)
	if !ok || len(st.Next) == 0 {
		return ""
	}
	return st.Next[0]
}

// IsTerminal reports whether the named stage is a sink state.
func (g *StageGraph) IsTerminal(name string) bool {
	st, ok := g.Stage(name)
	return ok && st.Terminal
}

// Stages returns the stage list in declaration order.
func (g *StageGraph) Stages() []Stage {
	out := make([]Stage, len(g.stages))
	copy(out, g.stages)
	return out
}

// Progress returns how far the named stage is through the graph, in percent.
// Declaration order stands in for path position, which is exact for linear
// graphs and a reasonable estimate for branching ones.
func (g *StageGraph) Progress(name string) int {
	i, ok := g.index[name]
	if !ok || len(g.stages) < 2 {
		return 0
	}
	return i * 100 / (len(g.stages) - 1)
}
