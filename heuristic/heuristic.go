// SPDX-License-Identifier: MIT
//
// Package heuristic defines the pluggable estimate-to-goal contract used by
// informed search, plus the common estimates built from tables and coordinates.
//
// Contract:
//
//	Func(node, goal) must return a non-negative, finite number. For A* to return
//	cost-optimal paths the estimate must never exceed the true remaining cost
//	(admissibility). Admissibility is a caller obligation: search drivers do not
//	check it, and an inadmissible estimate only forfeits the optimality guarantee.
package heuristic

import (
	"math"
)

// Func estimates the remaining cost from node to goal.
type Func func(node, goal string) float64

// Zero is the trivially admissible estimate. A* with Zero behaves like uniform-cost search.
func Zero(string, string) float64 { return 0 }

// Table returns an estimate toward one fixed goal, read from a precomputed table.
// Nodes missing from the table estimate 0. The goal argument is ignored, so the
// table must have been built for the goal being searched.
func Table(estimates map[string]float64) Func {
	copied := make(map[string]float64, len(estimates))
	for k, v := range estimates {
		copied[k] = v
	}

	return func(node, _ string) float64 {
		return copied[node]
	}
}

// Scale multiplies every estimate of f by k.
// k > 1 trades optimality for fewer expansions (weighted A*).
func Scale(f Func, k float64) Func {
	return func(node, goal string) float64 {
		return k * f(node, goal)
	}
}

// Max returns the pointwise maximum of several estimates.
// The maximum of admissible estimates is admissible.
func Max(fs ...Func) Func {
	return func(node, goal string) float64 {
		best := 0.0
		for _, f := range fs {
			best = math.Max(best, f(node, goal))
		}

		return best
	}
}
