// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Immutable read-only views (Snapshot) of a Graph.
// Determinism:
//   - Vertices() keeps insertion order; arcs keep insertion order per vertex.
// Concurrency:
//   - A Snapshot is never mutated after construction and may be shared by any
//     number of goroutines. Building one takes the Graph write lock once.

package core

import (
	"fmt"
	"iter"
	"sync"

	"github.com/benbjohnson/immutable"
)

// Snapshot is an immutable view of a Graph at one version.
//
// Out-arcs and in-arcs are held in persistent maps so a snapshot costs nothing
// to share between concurrent search runs. In-arcs exist for backward searches
// (bidirectional search, heuristic audits); on undirected graphs they equal out-arcs.
type Snapshot struct {
	directed  bool
	order     *immutable.List[string]
	out       *immutable.Map[string, *immutable.List[Arc]]
	in        *immutable.Map[string, *immutable.List[Arc]]
	edgeCount int
	negative  bool

	compOnce sync.Once
	comp     map[string]int // vertex ID → weak component index
	compN    int
}

// Snapshot returns an immutable view of the current graph state.
// The view is cached and reused until the next mutation.
// Complexity: O(V + E) on the first call after a mutation, O(1) otherwise.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.snapshot != nil && g.snapVer == g.version {
		return g.snapshot
	}

	order := immutable.NewList[string]()
	out := immutable.NewMap[string, *immutable.List[Arc]](nil)
	inArcs := make(map[string][]Arc, len(g.order))
	for _, id := range g.order {
		order = order.Append(id)
		list := immutable.NewList[Arc]()
		for _, a := range g.adjacency[id] {
			list = list.Append(a)
			inArcs[a.To] = append(inArcs[a.To], Arc{To: id, Cost: a.Cost})
		}
		out = out.Set(id, list)
	}
	in := immutable.NewMap[string, *immutable.List[Arc]](nil)
	for _, id := range g.order {
		list := immutable.NewList[Arc]()
		for _, a := range inArcs[id] {
			list = list.Append(a)
		}
		in = in.Set(id, list)
	}

	g.snapshot = &Snapshot{
		directed:  g.directed,
		order:     order,
		out:       out,
		in:        in,
		edgeCount: g.edgeCount,
		negative:  g.negative > 0,
	}
	g.snapVer = g.version

	return g.snapshot
}

// Directed reports whether the source graph stored one arc per AddEdge call.
func (s *Snapshot) Directed() bool { return s.directed }

// HasVertex reports whether id is present in the snapshot.
func (s *Snapshot) HasVertex(id string) bool {
	_, ok := s.out.Get(id)
	return ok
}

// VertexCount returns the number of vertices.
func (s *Snapshot) VertexCount() int { return s.order.Len() }

// EdgeCount returns the number of AddEdge insertions captured by the snapshot.
func (s *Snapshot) EdgeCount() int { return s.edgeCount }

// HasNegativeCost reports whether any arc has a negative cost.
func (s *Snapshot) HasNegativeCost() bool { return s.negative }

// Vertices returns all vertex IDs in insertion order.
func (s *Snapshot) Vertices() []string {
	ids := make([]string, 0, s.order.Len())
	for i := 0; i < s.order.Len(); i++ {
		ids = append(ids, s.order.Get(i))
	}

	return ids
}

// Neighbors returns the lazy, restartable (neighbor, cost) sequence for id.
// Returns ErrUnknownNode if id is absent.
func (s *Snapshot) Neighbors(id string) (iter.Seq2[string, float64], error) {
	list, ok := s.out.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return listSeq(list), nil
}

// Reverse returns the lazy (predecessor, cost) sequence of arcs entering id.
// Returns ErrUnknownNode if id is absent.
func (s *Snapshot) Reverse(id string) (iter.Seq2[string, float64], error) {
	list, ok := s.in.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return listSeq(list), nil
}

// Arcs returns the outgoing arcs of id as a fresh slice.
func (s *Snapshot) Arcs(id string) ([]Arc, error) {
	list, ok := s.out.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	arcs := make([]Arc, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		arcs = append(arcs, list.Get(i))
	}

	return arcs, nil
}

// listSeq walks an immutable arc list without copying it.
func listSeq(list *immutable.List[Arc]) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for i := 0; i < list.Len(); i++ {
			a := list.Get(i)
			if !yield(a.To, a.Cost) {
				return
			}
		}
	}
}
