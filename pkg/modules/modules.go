/*
Package modules defines the training scenarios.

A module is pure configuration: a stage graph, a metric subset, a stage
advancement rule and persona texts. Modules share 100% of the session engine
and scoring code; nothing here contains orchestration logic.
*/
package modules

import (
	"fmt"
	"sort"

	"github.com/nsfeld/salescoach/pkg/domain"
)

// ReadyFunc decides whether the session may advance to the next stage after
// a turn. turn is 1-based (the turn just scored), words is the trainee
// utterance word count.
type ReadyFunc func(scores domain.ScoreVector, overall float64, turn, words int) bool

// Module is one training scenario. Instances are immutable after registration.
type Module struct {
	ID    string
	Title string

	Graph   *domain.StageGraph
	Metrics []string

	// Ready is the stage advancement predicate. Thresholds are explicit
	// per-module configuration, documented next to each definition.
	Ready ReadyFunc

	// ClientProfile and CoachProfile extend the persona system prompts.
	ClientProfile string
	CoachProfile  string

	// Intro builds the coach's opening message from the resolved params.
	Intro func(params map[string]string) string

	// OpeningClient builds a scripted first client line ("" when the module
	// opens with the trainee speaking first).
	OpeningClient func(params map[string]string) string

	// ResolveParams validates caller params and fills defaults (e.g. picks a
	// scenario when none was requested). Never mutates its argument.
	ResolveParams func(params map[string]string) map[string]string
}

// Registry holds the modules available to the engine. Populated once at
// process start; read-only afterwards.
type Registry struct {
	modules map[string]*Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register adds a module. Duplicate IDs are a programming error.
func (r *Registry) Register(m *Module) error {
	if m.ID == "" || m.Graph == nil || len(m.Metrics) == 0 || m.Ready == nil {
		return fmt.Errorf("module %q is incomplete", m.ID)
	}
	if _, dup := r.modules[m.ID]; dup {
		return fmt.Errorf("module %q already registered", m.ID)
	}
	r.modules[m.ID] = m
	return nil
}

// Get returns the module for an ID.
func (r *Registry) Get(id string) (*Module, error) {
	m, ok := r.modules[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownModule, id)
	}
	return m, nil
}

// IDs returns registered module IDs, sorted for stable output.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.modules))
	for id := range r.modules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Builtin returns a registry with every training module the system ships.
func Builtin() *Registry {
	r := NewRegistry()
	for _, m := range []*Module{
		MasterPath(),
		Objections(),
		Upsell(),
		Arena(),
		Exam(),
		ScriptLab(),
	} {
		if err := r.Register(m); err != nil {
			panic(err) // static definitions; unreachable unless miswired
		}
	}
	return r
}

// resolve copies params and applies defaults from the choice table: when key
// is missing or holds an unknown value, the first declared choice is used.
// Deterministic default selection keeps start idempotent and testable.
func resolve(params map[string]string, key string, choices []string) map[string]string {
	out := make(map[string]string, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	for _, c := range choices {
		if out[key] == c {
			return out
		}
	}
	out[key] = choices[0]
	return out
}
