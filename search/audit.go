// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// auditEpsilon absorbs floating-point noise in cost comparisons.
const auditEpsilon = 1e-9

// Overestimate is a vertex whose estimate exceeds its true cost to goal.
type Overestimate struct {
	Node     string
	Estimate float64
	TrueCost float64
}

// Inconsistency is an arc u→v with h(u) > cost(u,v) + h(v).
type Inconsistency struct {
	From, To string
	Cost     float64
	Drop     float64 // h(From) - h(To)
}

// AuditReport describes how a heuristic relates to the true costs to a goal.
type AuditReport struct {
	Goal string

	// Admissible is true when no vertex that reaches goal is overestimated.
	Admissible    bool
	Overestimates []Overestimate

	// Consistent is true when every arc satisfies the triangle inequality.
	Consistent   bool
	Inconsistent []Inconsistency

	// Unreachable lists vertices with no route to goal, in insertion order.
	Unreachable []string
}

// Audit checks h against exact costs-to-goal computed by a uniform-cost sweep
// over incoming arcs from goal.
//
// Errors: ErrNilGraph, ErrUnknownNode, ErrNegativeCost, ErrBadEstimate.
func Audit(g *core.Graph, goal string, h heuristic.Func) (*AuditReport, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		h = heuristic.Zero
	}
	s := g.Snapshot()
	if !s.HasVertex(goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
	}
	if s.HasNegativeCost() {
		from, to, c := firstNegativeArc(s)
		return nil, fmt.Errorf("%w: arc %s→%s has cost %g", ErrNegativeCost, from, to, c)
	}

	dist := costsToGoal(s, goal)

	est := make(map[string]float64, s.VertexCount())
	for _, id := range s.Vertices() {
		v := h(id, goal)
		if math.IsNaN(v) || v < 0 {
			return nil, fmt.Errorf("%w: h(%q)=%g", ErrBadEstimate, id, v)
		}
		est[id] = v
	}

	rep := &AuditReport{Goal: goal, Admissible: true, Consistent: true}
	for _, id := range s.Vertices() {
		d, ok := dist[id]
		if !ok {
			rep.Unreachable = append(rep.Unreachable, id)
		} else if est[id] > d+auditEpsilon {
			rep.Admissible = false
			rep.Overestimates = append(rep.Overestimates, Overestimate{Node: id, Estimate: est[id], TrueCost: d})
		}

		arcs, _ := s.Arcs(id)
		for _, a := range arcs {
			if est[id] > a.Cost+est[a.To]+auditEpsilon {
				rep.Consistent = false
				rep.Inconsistent = append(rep.Inconsistent, Inconsistency{
					From: id, To: a.To, Cost: a.Cost, Drop: est[id] - est[a.To],
				})
			}
		}
	}

	return rep, nil
}

// costsToGoal runs uniform-cost search from goal over reversed arcs.
func costsToGoal(s *core.Snapshot, goal string) map[string]float64 {
	dist := map[string]float64{}
	pq := frontier.NewPriority(frontier.ByCost, func(id string) bool {
		_, done := dist[id]
		return done
	})
	pq.Push(frontier.Record{ID: goal})
	for {
		rec, ok := pq.Pop()
		if !ok {
			return dist
		}
		dist[rec.ID] = rec.Cost
		preds, _ := s.Reverse(rec.ID)
		for from, c := range preds {
			if _, done := dist[from]; !done {
				pq.Push(frontier.Record{ID: from, Cost: rec.Cost + c})
			}
		}
	}
}
