package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleSearch contrasts the cheapest route with the fewest-hops route on a
// triangle where the direct edge is expensive.
func ExampleSearch() {
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "C", 5)

	for _, s := range []search.Strategy{search.UniformCost, search.BreadthFirst} {
		res, err := search.Search(g, "A", "C", s)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: path=%v cost=%g expanded=%d state=%s\n",
			s, res.Path, res.Cost, res.NodesExpanded, res.State)
	}
	// Output:
	// uniform-cost: path=[A B C] cost=2 expanded=2 state=GOAL_FOUND
	// breadth-first: path=[A C] cost=5 expanded=2 state=GOAL_FOUND
}

// ExampleSearch_astar guides the search with straight-line distance.
func ExampleSearch_astar() {
	coords := heuristic.Coordinates{
		"S": {X: 0, Y: 0},
		"M": {X: 1, Y: 1},
		"N": {X: 1, Y: -1},
		"G": {X: 2, Y: 0},
	}
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge("S", "M", 1.5)
	_ = g.AddEdge("S", "N", 1.5)
	_ = g.AddEdge("M", "G", 1.5)
	_ = g.AddEdge("N", "G", 2)

	res, err := search.Search(g, "S", "G", search.AStar,
		search.WithHeuristic(coords.Estimate(heuristic.Euclidean)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [S M G] 3
}

// ExampleSearch_unreachable shows that a missing route is a result, not an error.
func ExampleSearch_unreachable() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("Z")

	res, err := search.Search(g, "A", "Z", search.BreadthFirst)
	fmt.Println(res.State, res.Path == nil, err)
	// Output:
	// EXHAUSTED true <nil>
}

// ExampleIterativeDeepening finds a route on a chain; expansions add up over
// the depth limits 0..3.
func ExampleIterativeDeepening() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	res, _ := search.IterativeDeepening(g, "A", "D", 10)
	fmt.Println(res.Path, res.NodesExpanded)
	// Output:
	// [A B C D] 6
}

// ExampleBidirectional meets in the middle of a chain.
func ExampleBidirectional() {
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	res, _ := search.Bidirectional(g, "A", "D")
	fmt.Println(res.Path, res.Cost, res.NodesExpanded)
	// Output:
	// [A B C D] 3 4
}

// ExampleRunAll runs two queries over the same snapshot.
func ExampleRunAll() {
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "C", 5)

	results, err := search.RunAll(context.Background(), g, []search.Query{
		{Name: "cheap", Start: "A", Goal: "C", Strategy: search.UniformCost},
		{Name: "short", Start: "A", Goal: "C", Strategy: search.BreadthFirst},
	}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Println(r.Path)
	}
	// Output:
	// [A B C]
	// [A C]
}

// ExampleAudit reports a heuristic that overestimates at one vertex.
func ExampleAudit() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "G", 1)

	rep, _ := search.Audit(g, "G", heuristic.Table(map[string]float64{"A": 3, "B": 1}))
	fmt.Println(rep.Admissible, rep.Overestimates)
	fmt.Println(rep.Consistent, len(rep.Inconsistent))
	// Output:
	// false [{A 3 2}]
	// false 1
}
