// SPDX-License-Identifier: MIT
//
// Package core provides the thread-safe in-memory Graph consumed by every search
// strategy in lvsearch, with a minimal, composable API surface.
//
// The Graph maps each vertex ID to an ordered list of (neighbor, cost) arcs:
//
//   - Directed by default: AddEdge(a, b, c) inserts the single arc a→b.
//   - WithUndirected(): AddEdge also inserts the mirror b→a (self-loops stored once).
//   - Insertion order is preserved everywhere: Vertices(), Arcs(), Neighbors().
//     Search strategies break ties by this order, which makes runs reproducible.
//   - Costs are float64; NaN/±Inf are rejected, negative costs are stored and
//     flagged (HasNegativeCost) so cost-aware searches can refuse them up front.
//
// Snapshots:
//
//	Snapshot() freezes the graph into an immutable view backed by persistent maps.
//	A search run reads only its snapshot, so the graph is immutable for the whole
//	run even if other goroutines keep calling AddEdge. Snapshots are cached per
//	graph version; repeated runs on an unmodified graph share one snapshot.
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	AddEdge(from, to string, cost float64) error            // O(1) amortized
//	AddTriples(triples ...Triple) error                     // O(k)
//	FromTriples(triples []Triple, opts ...GraphOption)      // O(k)
//	HasVertex(id string) bool                               // O(1)
//	Neighbors(id string) (iter.Seq2[string, float64], error)// O(d) to materialize
//	Arcs(id string) ([]Arc, error)                          // O(d)
//	Vertices() []string                                     // O(V)
//	Snapshot() *Snapshot                                    // O(V+E) once per version
//
// Snapshot Methods:
//
//	Neighbors / Reverse / Arcs / Vertices / HasVertex
//	Components() [][]string        // weak components via union-find
//	SameComponent(a, b string) bool
//
// Errors:
//
//	ErrEmptyVertexID – zero-length vertex ID
//	ErrUnknownNode   – vertex never added (wrapped with the ID)
//	ErrBadCost       – NaN or infinite cost
package core
