package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

func TestSnapshot_MatchesGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("C", "B", 2))

	s := g.Snapshot()
	assert.True(t, s.Directed())
	assert.Equal(t, g.Vertices(), s.Vertices())
	assert.Equal(t, 3, s.VertexCount())
	assert.Equal(t, 3, s.EdgeCount())
	assert.True(t, s.HasVertex("C"))
	assert.False(t, s.HasVertex("Z"))

	arcs, err := s.Arcs("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: "B", Cost: 1}, {To: "C", Cost: 4}}, arcs)

	rev, err := s.Reverse("B")
	require.NoError(t, err)
	var preds []string
	for id, c := range rev {
		preds = append(preds, id)
		assert.Positive(t, c)
	}
	assert.Equal(t, []string{"A", "C"}, preds)
}

func TestSnapshot_UnknownNode(t *testing.T) {
	s := core.NewGraph().Snapshot()
	_, err := s.Neighbors("X")
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = s.Reverse("X")
	require.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = s.Arcs("X")
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestSnapshot_IsImmutableAndCached(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	s1 := g.Snapshot()
	assert.Same(t, s1, g.Snapshot(), "unchanged graph must reuse its snapshot")

	require.NoError(t, g.AddEdge("A", "C", 1))
	s2 := g.Snapshot()
	assert.NotSame(t, s1, s2)

	old, err := s1.Arcs("A")
	require.NoError(t, err)
	assert.Len(t, old, 1, "older snapshot must not observe later mutations")
	assert.False(t, s1.HasVertex("C"))

	cur, err := s2.Arcs("A")
	require.NoError(t, err)
	assert.Len(t, cur, 2)
}

func TestSnapshot_Components(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "B", 1)) // weakly joins C to A
	require.NoError(t, g.AddEdge("X", "Y", 1))
	require.NoError(t, g.AddVertex("Z"))

	s := g.Snapshot()
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"X", "Y"}, {"Z"}}, s.Components())
	assert.True(t, s.SameComponent("A", "C"))
	assert.False(t, s.SameComponent("A", "X"))
	assert.False(t, s.SameComponent("A", "missing"))
	assert.True(t, s.SameComponent("Z", "Z"))
}
