// SPDX-License-Identifier: MIT

package heuristic

import (
	"math"
)

// Point is a planar position attached to a vertex.
type Point struct {
	X, Y float64
}

// Metric measures the distance between two points.
type Metric func(a, b Point) float64

// Coordinates maps vertex IDs to planar positions.
type Coordinates map[string]Point

// Estimate turns the coordinate table into a Func under metric m.
// Vertices without a position estimate 0.
func (c Coordinates) Estimate(m Metric) Func {
	return func(node, goal string) float64 {
		a, okA := c[node]
		b, okB := c[goal]
		if !okA || !okB {
			return 0
		}

		return m(a, b)
	}
}

// Euclidean is the straight-line distance.
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Manhattan is the L1 distance; admissible for unit-cost 4-connected grids.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Chebyshev is the L∞ distance; admissible for unit-cost 8-connected grids.
func Chebyshev(a, b Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

// Octile is exact on 8-connected grids with orthogonal cost 1 and diagonal cost √2.
func Octile(a, b Point) float64 {
	dx, dy := math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)

	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// MetricByName resolves "euclidean", "manhattan", "chebyshev" or "octile".
func MetricByName(name string) (Metric, bool) {
	switch name {
	case "euclidean":
		return Euclidean, true
	case "manhattan":
		return Manhattan, true
	case "chebyshev":
		return Chebyshev, true
	case "octile":
		return Octile, true
	default:
		return nil, false
	}
}
