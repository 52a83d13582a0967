// SPDX-License-Identifier: MIT

// Package search is a generic graph search driver: one state machine, five
// interchangeable frontier disciplines, and a handful of derived variants.
//
// Overview:
//
//   - A run moves through INIT → RUNNING → {GOAL_FOUND, EXHAUSTED}. It seeds
//     the frontier with the start vertex, then repeatedly pops a record, closes
//     it, goal-tests it, and expands it.
//   - The strategy decides only the frontier discipline:
//     BreadthFirst (FIFO), DepthFirst (LIFO), UniformCost (by cost),
//     AStar (by cost + estimate), GreedyBestFirst (by estimate).
//   - Ties pop in insertion order, so identical inputs yield identical paths.
//   - Stale frontier entries are dropped lazily at pop time; a vertex is
//     expanded at most once per run.
//
// Variants:
//
//   - DepthLimited: depth-first under a depth ceiling, with Result.Cutoff.
//   - IterativeDeepening: DepthLimited for limits 0..maxDepth.
//   - Bidirectional: forward and backward breadth-first halves meeting in the
//     middle.
//   - RunAll: independent queries over one snapshot on a bounded worker pool.
//   - Audit: checks a heuristic for admissibility and consistency against a goal.
//
// Guarantees:
//
//   - BreadthFirst returns a path with the fewest arcs.
//   - UniformCost returns a cost-minimal path; AStar too, given an admissible
//     heuristic. Consistency is not required: AStar re-opens a closed vertex
//     when a cheaper route appears. Both reject graphs holding a negative arc
//     (ErrNegativeCost).
//   - DepthLimited finds every goal within the limit, and IterativeDeepening
//     returns a path with the fewest arcs.
//   - Every returned path starts at start, ends at goal, and follows graph arcs.
//   - "No path" is Result.State == Exhausted with a nil Path, not an error.
//
// Options:
//
//   - WithHeuristic(h)           estimate-to-goal function
//   - WithDepthLimit(d)          do not expand records at depth >= d
//   - WithContext(ctx)           cancellation, logger lookup, span parent
//   - WithLogger(l)              explicit slog logger
//   - WithOnExpand(fn)           hook before each expansion; an error aborts
//   - WithReachabilityPrecheck() fail fast when start and goal are in
//     different weak components
//
// Observability:
//
//   - Every run opens an OpenTelemetry span "search.Search" and records
//     Prometheus metrics lvsearch_runs_total, lvsearch_errors_total,
//     lvsearch_nodes_expanded and lvsearch_run_duration_seconds.
//   - Logs go to the slog logger from WithLogger, else from the context
//     (see internal/ctxlog), else nowhere.
//
// Example:
//
//	g := core.NewGraph(core.WithUndirected())
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 1)
//	_ = g.AddEdge("A", "C", 5)
//	res, err := search.Search(g, "A", "C", search.UniformCost)
//	// res.Path == [A B C], res.Cost == 2
package search
