package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsfeld/salescoach/pkg/domain"
)

func TestBuiltinRegistry(t *testing.T) {
	r := Builtin()

	assert.Equal(t, []string{"arena", "exam", "master_path", "objections", "script_lab", "upsell"}, r.IDs())

	for _, id := range r.IDs() {
		m, err := r.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, m.ID)
		assert.NotEmpty(t, m.Title)
		assert.NotNil(t, m.Graph)
		assert.NotEmpty(t, m.Metrics)
		assert.NotNil(t, m.Ready)
		assert.NotNil(t, m.Intro, "module %s", id)

		for _, metric := range m.Metrics {
			assert.Contains(t, domain.AllMetrics, metric, "module %s", id)
		}
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	_, err := Builtin().Get("poker_night")
	assert.ErrorIs(t, err, domain.ErrUnknownModule)
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(MasterPath()))
	assert.Error(t, r.Register(MasterPath()))
}

func TestRegistryRejectsIncomplete(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&Module{ID: "empty"}))
}

func TestResolveDefaultsDeterministic(t *testing.T) {
	choices := []string{"alpha", "beta"}

	got := resolve(nil, "kind", choices)
	assert.Equal(t, "alpha", got["kind"])

	got = resolve(map[string]string{"kind": "bogus"}, "kind", choices)
	assert.Equal(t, "alpha", got["kind"])

	in := map[string]string{"kind": "beta"}
	got = resolve(in, "kind", choices)
	assert.Equal(t, "beta", got["kind"])

	// input map must stay untouched
	in2 := map[string]string{}
	resolve(in2, "kind", choices)
	assert.Empty(t, in2)
}

func TestMasterPathGraph(t *testing.T) {
	m := MasterPath()

	assert.Equal(t, "greeting", m.Graph.Initial())
	assert.True(t, m.Graph.IsTerminal("final"))

	// the path is strictly linear
	stage := m.Graph.Initial()
	seen := []string{stage}
	for !m.Graph.IsTerminal(stage) {
		next := m.Graph.Successor(stage)
		require.NotEmpty(t, next, "stage %s has no successor", stage)
		stage = next
		seen = append(seen, stage)
	}
	assert.Len(t, seen, 7)
}

func TestMasterPathReady(t *testing.T) {
	m := MasterPath()

	assert.False(t, m.Ready(nil, 6.0, 1, 20), "low overall must not advance")
	assert.False(t, m.Ready(nil, 8.0, 1, 5), "short answers must not advance")
	assert.True(t, m.Ready(nil, 6.5, 1, 15))
}

func TestObjectionsOpening(t *testing.T) {
	m := Objections()

	params := m.ResolveParams(nil)
	assert.Equal(t, "price", params["objection_type"])

	opening := m.OpeningClient(params)
	assert.NotEmpty(t, opening)

	// each scenario opens with its own scripted line
	other := m.OpeningClient(m.ResolveParams(map[string]string{"objection_type": "distrust"}))
	assert.NotEqual(t, opening, other)
}

func TestObjectionsReady(t *testing.T) {
	m := Objections()

	assert.False(t, m.Ready(nil, 9.0, 1, 30), "first turn never resolves the objection")
	assert.False(t, m.Ready(nil, 6.5, 3, 30))
	assert.True(t, m.Ready(nil, 7.0, 2, 30))
}

func TestUpsellScenarios(t *testing.T) {
	m := Upsell()

	for _, id := range upsellScenarioIDs {
		params := m.ResolveParams(map[string]string{"scenario": id})
		assert.Equal(t, id, params["scenario"])
		assert.NotEmpty(t, m.OpeningClient(params), "scenario %s", id)
		assert.NotEmpty(t, m.Intro(params), "scenario %s", id)
	}

	assert.Equal(t, "texts_warmup", m.ResolveParams(nil)["scenario"])
	assert.False(t, m.Ready(nil, 8.0, 1, 20))
	assert.True(t, m.Ready(nil, 7.0, 2, 20))
}

func TestArenaRunsEightTurns(t *testing.T) {
	m := Arena()

	assert.Equal(t, domain.AllMetrics, m.Metrics)
	for turn := 1; turn < 8; turn++ {
		assert.False(t, m.Ready(nil, 10, turn, 100), "turn %d", turn)
	}
	assert.True(t, m.Ready(nil, 0, 8, 1))

	assert.Equal(t, "calm", m.ResolveParams(nil)["client_type"])
}

func TestExamAlwaysAdvances(t *testing.T) {
	m := Exam()

	assert.True(t, m.Ready(nil, 0, 1, 0))

	// five rounds then the terminal verdict
	stage := m.Graph.Initial()
	steps := 0
	for !m.Graph.IsTerminal(stage) {
		next := m.Graph.Successor(stage)
		require.NotEmpty(t, next)
		stage = next
		steps++
	}
	assert.Equal(t, 5, steps)
	assert.Equal(t, "verdict", stage)
}

func TestScriptLabOneShot(t *testing.T) {
	m := ScriptLab()

	assert.True(t, m.Ready(nil, 0, 1, 0))
	assert.Equal(t, "reviewed", m.Graph.Successor("draft"))
	assert.True(t, m.Graph.IsTerminal("reviewed"))
}
