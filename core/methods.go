// SPDX-License-Identifier: MIT
//
// Package core: Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) mutation of the Graph
// defined in types.go, plus the read-side queries. Adjacency is stored as
// map[vertexID][]Arc so insertion order survives and iteration is deterministic.

package core

import (
	"fmt"
	"iter"
	"math"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// AddEdge inserts the arc from→to with the given cost, creating both endpoints
// when needed. On an undirected graph the mirror arc to→from is inserted too
// (self-loops are stored once).
//
// Negative costs are accepted here; cost-aware searches reject them before running.
// Returns ErrEmptyVertexID or ErrBadCost.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %s→%s cost=%v", ErrBadCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.appendArc(from, to, cost)
	if !g.directed && from != to {
		g.appendArc(to, from, cost)
	}
	g.edgeCount++

	return nil
}

// AddTriples inserts each triple with AddEdge, stopping at the first failure.
// Triples inserted before the failure stay in the graph.
func (g *Graph) AddTriples(triples ...Triple) error {
	for i, t := range triples {
		if err := g.AddEdge(t.From, t.To, t.Cost); err != nil {
			return fmt.Errorf("core: triple %d: %w", i, err)
		}
	}

	return nil
}

// FromTriples builds a new Graph from (node, node, cost) triples.
func FromTriples(triples []Triple, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.AddTriples(triples...); err != nil {
		return nil, err
	}

	return g, nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Arcs returns a copy of the outgoing arcs of id in insertion order.
// Returns ErrUnknownNode if id was never added.
// Complexity: O(d).
func (g *Graph) Arcs(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	arcs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// Neighbors returns a lazy sequence of (neighbor, cost) pairs for id.
// The sequence is finite and restartable: every range over it replays the
// arcs captured when Neighbors was called, in insertion order.
// Returns ErrUnknownNode if id was never added.
func (g *Graph) Neighbors(id string) (iter.Seq2[string, float64], error) {
	arcs, err := g.Arcs(id)
	if err != nil {
		return nil, err
	}

	return arcSeq(arcs), nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of AddEdge insertions (mirrors are not counted). O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasNegativeCost reports whether any stored arc has a negative cost. O(1).
func (g *Graph) HasNegativeCost() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.negative > 0
}

// Internal helper methods:
////////////////////

// ensureVertex registers id if absent. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
	g.version++
}

// appendArc stores one arc. Caller holds the write lock.
func (g *Graph) appendArc(from, to string, cost float64) {
	g.adjacency[from] = append(g.adjacency[from], Arc{To: to, Cost: cost})
	if cost < 0 {
		g.negative++
	}
	g.version++
}

// arcSeq adapts a slice of arcs to iter.Seq2.
func arcSeq(arcs []Arc) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, a := range arcs {
			if !yield(a.To, a.Cost) {
				return
			}
		}
	}
}
