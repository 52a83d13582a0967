// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// Bidirectional runs two breadth-first searches, forward from start along
// outgoing arcs and backward from goal along incoming arcs, alternating one
// expansion each. The run stops at the first vertex closed by one side that
// the other side has already closed, and the joined route is returned.
//
// The joined route is not guaranteed to be hop- or cost-minimal. Heuristic
// and depth-limit options are ignored. Result.Strategy is BreadthFirst.
func Bidirectional(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	s := g.Snapshot()

	return observed(o, "bidirectional", start, goal, func(ctx context.Context, logger *slog.Logger) (*Result, error) {
		if !s.HasVertex(start) {
			return nil, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
		}
		if !s.HasVertex(goal) {
			return nil, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
		}
		if start == goal {
			return &Result{Path: []string{start}, State: GoalFound, Strategy: BreadthFirst}, nil
		}
		if o.Precheck && !s.SameComponent(start, goal) {
			return &Result{State: Exhausted, Strategy: BreadthFirst}, nil
		}

		fwd := newSide(start, s.Neighbors)
		bwd := newSide(goal, s.Reverse)
		for {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			for _, pair := range [2][2]*side{{fwd, bwd}, {bwd, fwd}} {
				this, other := pair[0], pair[1]
				rec, ok := this.front.Pop()
				if !ok {
					return &Result{
						State:         Exhausted,
						NodesExpanded: fwd.expanded + bwd.expanded,
						Strategy:      BreadthFirst,
					}, nil
				}
				this.close(rec)
				if other.closed[rec.ID] {
					logger.Debug("bidirectional_meet", slog.String("at", rec.ID))

					return join(fwd, bwd, rec.ID, start, goal)
				}
				if err := this.expand(rec, o.OnExpand); err != nil {
					return nil, err
				}
			}
		}
	})
}

// side is one direction of a bidirectional run.
type side struct {
	next     func(id string) (iter.Seq2[string, float64], error)
	front    *frontier.FIFO
	closed   map[string]bool
	seen     map[string]bool
	parent   map[string]string
	cost     map[string]float64
	expanded int
}

func newSide(root string, next func(string) (iter.Seq2[string, float64], error)) *side {
	sd := &side{
		next:   next,
		closed: map[string]bool{},
		seen:   map[string]bool{root: true},
		parent: map[string]string{},
		cost:   map[string]float64{},
	}
	sd.front = frontier.NewFIFO(func(id string) bool { return sd.closed[id] })
	sd.front.Push(frontier.Record{ID: root})

	return sd
}

func (sd *side) close(rec frontier.Record) {
	sd.closed[rec.ID] = true
	sd.cost[rec.ID] = rec.Cost
	if rec.HasParent {
		sd.parent[rec.ID] = rec.Parent
	}
}

func (sd *side) expand(rec frontier.Record, hook func(frontier.Record) error) error {
	if hook != nil {
		if err := hook(rec); err != nil {
			return fmt.Errorf("search: expand hook at %q: %w", rec.ID, err)
		}
	}
	seq, err := sd.next(rec.ID)
	if err != nil {
		return err
	}
	for to, c := range seq {
		if sd.seen[to] {
			continue
		}
		sd.seen[to] = true
		sd.front.Push(frontier.Record{
			ID:        to,
			Cost:      rec.Cost + c,
			Parent:    rec.ID,
			HasParent: true,
			Depth:     rec.Depth + 1,
		})
	}
	sd.expanded++

	return nil
}

// join splices start → meet from the forward side with meet → goal from the
// backward side, whose backpointers already point toward goal.
func join(fwd, bwd *side, meet, start, goal string) (*Result, error) {
	head, err := ReconstructPath(fwd.parent, start, meet)
	if err != nil {
		return nil, err
	}
	tail, err := ReconstructPath(bwd.parent, goal, meet)
	if err != nil {
		return nil, err
	}
	slices.Reverse(tail)

	return &Result{
		Path:          append(head, tail[1:]...),
		Cost:          fwd.cost[meet] + bwd.cost[meet],
		NodesExpanded: fwd.expanded + bwd.expanded,
		State:         GoalFound,
		Strategy:      BreadthFirst,
	}, nil
}
