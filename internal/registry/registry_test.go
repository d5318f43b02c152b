package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ProposedName(t *testing.T) {
	r := New[string]("module")

	name := r.Register("a", "encoder")
	assert.Equal(t, "encoder", name)

	got, ok := r.Get("encoder")
	require.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestRegister_CollisionIsDeterministic(t *testing.T) {
	r := New[string]("module")

	first := r.Register("a", "m")
	second := r.Register("b", "m")
	third := r.Register("c", "m")

	assert.Equal(t, "m", first)
	assert.Equal(t, "m1", second)
	assert.Equal(t, "m2", third)
	assert.NotEqual(t, first, second)
}

func TestRegister_GeneratedNames(t *testing.T) {
	r := New[int]("graph")

	assert.Equal(t, "graph0", r.Register(0, ""))
	assert.Equal(t, "graph1", r.Register(1, ""))
}

func TestRegistry_NeverShrinks(t *testing.T) {
	r := New[int]("module")
	r.Register(1, "x")
	r.Register(2, "y")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"x", "y"}, r.Names())
	assert.True(t, r.Has("x"))
	assert.False(t, r.Has("z"))
}
