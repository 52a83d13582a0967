// Package lvsearch is an in-memory graph search engine: one driver, five
// frontier disciplines, and the variants built on top of them.
//
// What is in the box?
//
//	• Graph model: directed or undirected, weighted arcs, deterministic
//	  adjacency order, immutable snapshots for searches
//	• Frontiers: FIFO, LIFO and cost-ordered priority queues with lazy
//	  deletion and stable ties
//	• Driver: breadth-first, depth-first, uniform-cost, A* and greedy
//	  best-first under a single INIT → RUNNING → GOAL_FOUND | EXHAUSTED loop
//	• Variants: depth-limited, iterative deepening, bidirectional
//	• Heuristics: zero, coordinate metrics, lookup tables, admissibility audit
//	• Inputs: occupancy grids and HCL graph files with named queries
//
// Packages:
//
//	core/       — Graph, Arc, Snapshot, connected components
//	frontier/   — Record, Frontier, FIFO/LIFO/Priority implementations
//	heuristic/  — Func, metrics, coordinate and table heuristics
//	search/     — Search, DepthLimited, IterativeDeepening, Bidirectional,
//	              RunAll, Audit, ReconstructPath
//	gridgraph/  — 2D grids as graphs, octile/Manhattan heuristics, Bridge
//	graphfile/  — HCL documents: nodes, edges, queries
//
// Quick ASCII example:
//
//	    S──1──A──2──B
//	     \         /
//	      └───4───┘
//
// UniformCost from S to B returns [S A B] with cost 3; BreadthFirst returns
// [S B] with cost 4. "No path" is a normal result with state EXHAUSTED, not
// an error.
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
