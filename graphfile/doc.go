// SPDX-License-Identifier: MIT

// Package graphfile loads graphs and search queries from HCL documents.
//
// A document has an optional top-level "directed" flag (default true) and
// three block types:
//
//	directed = false
//
//	node "A" {        # optional; declares a vertex and its position
//	  x = 0
//	  y = 0
//	}
//
//	edge "A" "B" {    # endpoints are created on demand
//	  cost = 1
//	}
//
//	query "shortest" {
//	  start       = "A"
//	  goal        = "C"
//	  strategy    = "astar"      # bfs, dfs, ucs, astar, greedy (see search.ParseStrategy)
//	  heuristic   = "euclidean"  # zero, euclidean, manhattan, chebyshev, octile
//	  weight      = 1.5          # optional heuristic multiplier
//	  depth_limit = 10           # optional
//	  precheck    = true         # optional reachability precheck
//	}
//
// Expressions may read var.<name> values supplied with WithVariables and call
// abs, ceil, floor, max, min, format, lower and upper.
//
// Errors:
//
//   - ErrParse: the source is not valid HCL or cannot be read.
//   - ErrDecode: the HCL does not match the schema or an expression fails.
//   - ErrInvalidDocument: duplicate names, half-set coordinates, bad costs,
//     unknown strategies or heuristics, or query endpoints missing from the graph.
package graphfile
