// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Directed reports whether AddEdge inserts one arc (true) or an arc plus its mirror (false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed     bool
	VertexCount  int
	EdgeCount    int
	ArcCount     int // stored arcs, mirrors included
	NegativeArcs int
}

// Stats produces a deterministic, read-only snapshot of configuration and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count arcs across all adjacency lists.
//
// Returns:
//   - *GraphStats: immutable-by-convention summary.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:     g.directed,
		VertexCount:  len(g.order),
		EdgeCount:    g.edgeCount,
		NegativeArcs: g.negative,
	}
	for _, arcs := range g.adjacency {
		stats.ArcCount += len(arcs)
	}

	return &stats
}
