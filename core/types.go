// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrUnknownNode indicates an operation referenced a vertex that was never added.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrBadCost indicates an edge cost that is NaN or ±Inf.
	ErrBadCost = errors.New("core: edge cost must be a finite number")
)

// Arc is one outgoing (neighbor, cost) pair in a vertex's adjacency list.
type Arc struct {
	// To is the neighbor vertex ID.
	To string

	// Cost is the cost of traversing this arc.
	Cost float64
}

// Triple is the (node, node, cost) construction unit accepted by FromTriples.
type Triple struct {
	From string
	To   string
	Cost float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge inserts a single directed arc (true)
// or an arc plus its mirror (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithUndirected is shorthand for WithDirected(false).
func WithUndirected() GraphOption {
	return WithDirected(false)
}

// Graph is the in-memory search graph.
//
// Adjacency lists keep insertion order: the order in which arcs were added is
// the order in which Neighbors yields them, and therefore the tie-break order
// every search strategy relies on.
// mu guards every field below it; version increments on each mutation and
// keys the cached Snapshot.
type Graph struct {
	mu sync.RWMutex

	directed bool // AddEdge mirrors arcs when false

	order     []string         // vertex IDs in insertion order
	adjacency map[string][]Arc // vertex ID → outgoing arcs in insertion order
	edgeCount int              // arcs inserted by AddEdge calls (mirrors not counted)
	negative  int              // number of arcs with Cost < 0

	version  uint64    // bumped on each mutation
	snapshot *Snapshot // cached view for version snapVer
	snapVer  uint64
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		adjacency: make(map[string][]Arc),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
