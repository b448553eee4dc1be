package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/playzone/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Description() string { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func TestRegisterCreateLookup(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	require.True(t, Exists("stub_a"))
	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	info, ok := Lookup("stub_a")
	require.True(t, ok)
	assert.Equal(t, GameInfo{ID: "stub_a", Title: "Stub stub_a", Description: "a stub"}, info)

	_, err = Create("nope")
	assert.Error(t, err)
	assert.False(t, Exists("nope"))
}

func TestRegisterPanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	})
	assert.Panics(t, func() {
		Register("stub_mismatch", func() Game { return &stubGame{id: "other"} })
	})
	assert.False(t, Exists("stub_mismatch"))
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
