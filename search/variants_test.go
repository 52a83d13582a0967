package search_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

// chain builds the directed chain A→B→C→D with unit costs.
func chain(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.FromTriples([]core.Triple{
		{From: "A", To: "B", Cost: 1},
		{From: "B", To: "C", Cost: 1},
		{From: "C", To: "D", Cost: 1},
	}, opts...)
	require.NoError(t, err)

	return g
}

func TestDepthLimited(t *testing.T) {
	g := chain(t)

	res, err := search.DepthLimited(g, "A", "D", 2)
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.True(t, res.Cutoff)
	assert.Equal(t, 2, res.NodesExpanded)

	res, err = search.DepthLimited(g, "A", "D", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, search.DepthFirst, res.Strategy)

	res, err = search.DepthLimited(g, "A", "A", 0)
	require.NoError(t, err)
	assert.True(t, res.Found())

	_, err = search.DepthLimited(g, "A", "D", -1)
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// shortcut builds A→B→C→G plus the shortcut A→C. Depth-first explores B
// first and reaches C at depth 2 before the depth-1 route through the shortcut.
func shortcut(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromTriples([]core.Triple{
		{From: "A", To: "B", Cost: 1},
		{From: "B", To: "C", Cost: 1},
		{From: "A", To: "C", Cost: 1},
		{From: "C", To: "G", Cost: 1},
	})
	require.NoError(t, err)

	return g
}

func TestDepthLimited_ShallowerRouteReopens(t *testing.T) {
	g := shortcut(t)

	res, err := search.DepthLimited(g, "A", "G", 2)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{"A", "C", "G"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
	// C closed at depth 2 via B is pruned, then re-expanded from depth 1.
	assert.True(t, res.Cutoff)
	assert.Equal(t, 3, res.NodesExpanded)

	res, err = search.IterativeDeepening(g, "A", "G", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "G"}, res.Path)
	// limits 0..2 expand 0+1+3 vertices
	assert.Equal(t, 4, res.NodesExpanded)
}

func TestIterativeDeepening(t *testing.T) {
	g := chain(t)

	res, err := search.IterativeDeepening(g, "A", "D", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	// limits 0..3 expand 0+1+2+3 vertices
	assert.Equal(t, 6, res.NodesExpanded)

	res, err = search.IterativeDeepening(g, "A", "D", 2)
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.True(t, res.Cutoff)
	assert.Equal(t, 3, res.NodesExpanded)

	_, err = search.IterativeDeepening(g, "A", "D", -1)
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.IterativeDeepening(nil, "A", "D", 1)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

func TestIterativeDeepening_StopsWithoutCutoff(t *testing.T) {
	g := chain(t)
	require.NoError(t, g.AddVertex("E"))

	res, err := search.IterativeDeepening(g, "A", "E", 10)
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.False(t, res.Cutoff)
	assert.Equal(t, 6, res.NodesExpanded)
}

func TestIterativeDeepening_MinimalHops(t *testing.T) {
	g := triangle(t)
	res, err := search.IterativeDeepening(g, "A", "C", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Path)
}

func TestBidirectional(t *testing.T) {
	g := chain(t, core.WithUndirected())

	res, err := search.Bidirectional(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, 4, res.NodesExpanded)
	assert.Equal(t, search.GoalFound, res.State)

	// Directed: the backward half must walk incoming arcs.
	res, err = search.Bidirectional(chain(t), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)

	res, err = search.Bidirectional(chain(t), "D", "A")
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.Nil(t, res.Path)

	res, err = search.Bidirectional(g, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Path)
	assert.Equal(t, 0, res.NodesExpanded)
}

func TestBidirectional_Errors(t *testing.T) {
	g := chain(t)
	_, err := search.Bidirectional(nil, "A", "D")
	assert.ErrorIs(t, err, search.ErrNilGraph)
	_, err = search.Bidirectional(g, "A", "Z")
	assert.ErrorIs(t, err, search.ErrUnknownNode)
	_, err = search.Bidirectional(g, "A", "D", search.WithDepthLimit(-3))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Bidirectional(g, "A", "D", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAll(t *testing.T) {
	g, h := diamond(t)
	queries := []search.Query{
		{Name: "bfs", Start: "S", Goal: "G", Strategy: search.BreadthFirst},
		{Name: "ucs", Start: "S", Goal: "G", Strategy: search.UniformCost},
		{Name: "astar", Start: "S", Goal: "G", Strategy: search.AStar, Options: []search.Option{search.WithHeuristic(h)}},
		{Name: "short", Start: "A", Goal: "B", Strategy: search.UniformCost},
	}

	results, err := search.RunAll(context.Background(), g, queries, 2)
	require.NoError(t, err)
	require.Len(t, results, len(queries))
	assert.Equal(t, []string{"S", "B", "G"}, results[0].Path)
	assert.Equal(t, 7.0, results[1].Cost)
	assert.Equal(t, 7.0, results[2].Cost)
	assert.Equal(t, []string{"A", "B"}, results[3].Path)

	queries = append(queries, search.Query{Name: "bad", Start: "S", Goal: "nowhere"})
	_, err = search.RunAll(context.Background(), g, queries, 0)
	assert.ErrorIs(t, err, search.ErrUnknownNode)
	assert.ErrorContains(t, err, `query "bad"`)

	_, err = search.RunAll(context.Background(), nil, queries, 1)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

func TestAudit(t *testing.T) {
	g, h := diamond(t)
	require.NoError(t, g.AddVertex("Z"))

	rep, err := search.Audit(g, "G", h)
	require.NoError(t, err)
	assert.True(t, rep.Admissible)
	assert.True(t, rep.Consistent)
	assert.Empty(t, rep.Overestimates)
	assert.Equal(t, []string{"Z"}, rep.Unreachable)

	bad := heuristic.Table(map[string]float64{"S": 100})
	rep, err = search.Audit(g, "G", bad)
	require.NoError(t, err)
	assert.False(t, rep.Admissible)
	assert.Equal(t, []search.Overestimate{{Node: "S", Estimate: 100, TrueCost: 7}}, rep.Overestimates)
	assert.False(t, rep.Consistent)
	require.Len(t, rep.Inconsistent, 2)
	assert.Equal(t, "S", rep.Inconsistent[0].From)
	assert.Equal(t, "A", rep.Inconsistent[0].To)
	assert.Equal(t, 100.0, rep.Inconsistent[0].Drop)

	_, err = search.Audit(g, "missing", h)
	assert.ErrorIs(t, err, search.ErrUnknownNode)
	_, err = search.Audit(nil, "G", h)
	assert.ErrorIs(t, err, search.ErrNilGraph)
	_, err = search.Audit(g, "G", func(string, string) float64 { return -2 })
	assert.ErrorIs(t, err, search.ErrBadEstimate)
}

// randomGraph returns a connected-ish undirected graph with n vertices and random costs.
func randomGraph(t testing.TB, rng *rand.Rand, n, extra int, unit bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithUndirected())
	cost := func() float64 {
		if unit {
			return 1
		}
		return float64(1 + rng.Intn(9))
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", rng.Intn(i)), fmt.Sprintf("v%d", i), cost()))
	}
	for i := 0; i < extra; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", a), fmt.Sprintf("v%d", b), cost()))
	}

	return g
}

// TestSearch_OptimalityProperties checks UCS and A* against exact costs from an
// independent reverse sweep, and BFS hop counts against unit-cost UCS.
func TestSearch_OptimalityProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		g := randomGraph(t, rng, 30, 40, false)
		goal := fmt.Sprintf("v%d", rng.Intn(30))
		start := fmt.Sprintf("v%d", rng.Intn(30))

		ucs, err := search.Search(g, start, goal, search.UniformCost)
		require.NoError(t, err)
		require.True(t, ucs.Found())
		assertValidPath(t, g, ucs.Path, start, goal, ucs.Cost)

		astar, err := search.Search(g, start, goal, search.AStar, search.WithHeuristic(heuristic.Zero))
		require.NoError(t, err)
		assert.InDelta(t, ucs.Cost, astar.Cost, 1e-9)

		// Zero is trivially admissible; the report must agree.
		rep, err := search.Audit(g, goal, nil)
		require.NoError(t, err)
		assert.True(t, rep.Admissible)

		unit := randomGraph(t, rng, 25, 30, true)
		b, err := search.Search(unit, "v0", "v24", search.BreadthFirst)
		require.NoError(t, err)
		u, err := search.Search(unit, "v0", "v24", search.UniformCost)
		require.NoError(t, err)
		assert.Equal(t, len(u.Path), len(b.Path))
	}
}
