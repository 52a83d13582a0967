// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Bridge finds a minimum-conversion route between two cells: the fewest
// impassable cells that must be turned passable so that from and to are
// connected. Entering a passable cell costs 0, entering an impassable one
// costs 1; the start cell itself is never counted.
//
// Returns the cell IDs of the route (from and to included) and the number of
// conversions. If the route is not found, path is nil and the error is nil.
//
// Behavior:
//  1. Validate both cell IDs (ErrBadCellID, ErrOutOfBounds).
//  2. Build the conversion graph over every cell with NeighborOffsets arcs.
//  3. Run uniform-cost search from→to; opts are forwarded to search.Search.
//
// Complexity: O(W·H·d·log(W·H)).
func (gg *GridGraph) Bridge(from, to string, opts ...search.Option) (path []string, conversions int, err error) {
	for _, id := range []string{from, to} {
		x, y, err := ParseCellID(id)
		if err != nil {
			return nil, 0, err
		}
		if !gg.InBounds(x, y) {
			return nil, 0, fmt.Errorf("%w: %q in %d×%d grid", ErrOutOfBounds, id, gg.Width, gg.Height)
		}
	}

	g, err := gg.conversionGraph()
	if err != nil {
		return nil, 0, err
	}
	res, err := search.Search(g, from, to, search.UniformCost, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Found() {
		return nil, 0, nil
	}

	return res.Path, int(math.Round(res.Cost)), nil
}

// conversionGraph has an arc between every pair of adjacent cells, priced by
// whether the target cell is passable.
func (gg *GridGraph) conversionGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			uID := CellID(x, y)
			if err := g.AddVertex(uID); err != nil {
				return nil, err
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				step := 0.0
				if !gg.Passable(nx, ny) {
					step = 1
				}
				if err := g.AddEdge(uID, CellID(nx, ny), step); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
