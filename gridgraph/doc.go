// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of cells as a search graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassableThreshold.
//   - ToCoreGraph turns passable cells into vertices "x,y" with symmetric arcs:
//     cost 1 for orthogonal moves, √2 for diagonal ones (Conn8 only).
//   - Heuristic/Metric give the matching admissible estimate:
//     Manhattan for Conn4, Octile for Conn8.
//   - Bridge finds the fewest impassable cells to convert to join two cells,
//     as a uniform-cost search over a 0/1 conversion graph.
//   - Islands are the weak components of the converted graph
//     (core.Snapshot.Components).
//
// Why:
//
//   - Game maps and robot planning: grid pathfinding with A*.
//   - Resource planning: connect facilities with minimal upgrades.
//
// Complexity:
//
//   - ToCoreGraph: O(W×H×d + E), Memory: O(W×H + E)   (d = 4 or 8).
//   - Bridge:      O(W×H×d·log(W×H)), Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.PassableThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrBadCellID: an ID is not of the form "x,y".
package gridgraph
