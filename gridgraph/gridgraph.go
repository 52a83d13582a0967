// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		neighborOffsets:   offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and at or above the threshold.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.PassableThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets in N-first clockwise order.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// stepCost is 1 for orthogonal moves and √2 for diagonal ones.
func stepCost(d [2]int) float64 {
	if d[0] != 0 && d[1] != 0 {
		return math.Sqrt2
	}

	return 1
}

// CellID formats the vertex identifier "x,y" for cell (x,y).
func CellID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseCellID is the inverse of CellID.
func ParseCellID(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}

	return x, y, nil
}

// ToCoreGraph converts the passable cells into a directed *core.Graph with
// symmetric arcs. Vertices are added row-major; each vertex lists its arcs in
// NeighborOffsets order.
// Complexity: O(W×H×d) time and memory, d = 4 or 8.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			if err := g.AddVertex(CellID(x, y)); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			uID := CellID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				if err := g.AddEdge(uID, CellID(nx, ny), stepCost(d)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Coordinates returns the planar position of every passable cell.
func (gg *GridGraph) Coordinates() heuristic.Coordinates {
	coords := make(heuristic.Coordinates)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Passable(x, y) {
				coords[CellID(x, y)] = heuristic.Point{X: float64(x), Y: float64(y)}
			}
		}
	}

	return coords
}

// Metric returns the exact free-space distance for the grid's connectivity:
// Manhattan for Conn4, Octile for Conn8.
func (gg *GridGraph) Metric() heuristic.Metric {
	if gg.Conn == Conn8 {
		return heuristic.Octile
	}

	return heuristic.Manhattan
}

// Heuristic returns an admissible, consistent estimate for searches over
// ToCoreGraph. IDs that are not "x,y" estimate 0.
func (gg *GridGraph) Heuristic() heuristic.Func {
	metric := gg.Metric()

	return func(node, goal string) float64 {
		nx, ny, err := ParseCellID(node)
		if err != nil {
			return 0
		}
		gx, gy, err := ParseCellID(goal)
		if err != nil {
			return 0
		}

		return metric(
			heuristic.Point{X: float64(nx), Y: float64(ny)},
			heuristic.Point{X: float64(gx), Y: float64(gy)},
		)
	}
}
