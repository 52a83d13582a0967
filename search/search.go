// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// discovery decides whether a newly generated successor record is pushed.
type discovery int

const (
	// pushOnce: only the first discovery of a vertex enters the frontier.
	pushOnce discovery = iota
	// pushAlways: every generation enters the frontier; stale copies are skipped on pop.
	pushAlways
	// pushImproved: a vertex re-enters only with a strictly lower cost.
	pushImproved
)

// Search finds a path from start to goal in g under the given strategy.
//
// The run works on an immutable snapshot of g taken at call time, so
// concurrent writers never affect it. "No path" is a successful result with
// State == Exhausted, never an error.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOptionViolation if an Option is invalid.
//   - ErrUnknownStrategy if strategy is outside the defined set.
//   - ErrUnknownNode if start or goal is absent.
//   - ErrNegativeCost for UniformCost/AStar on a graph holding a negative arc.
//   - ErrMissingHeuristic for GreedyBestFirst without WithHeuristic.
//   - ErrBadEstimate if the heuristic returns a negative or NaN value.
//   - ctx.Err() if the context is canceled mid-run.
//
// Complexity: O((V + E) log V) for the priority strategies, O(V + E) for
// breadth-first; depth-first may push a vertex once per incoming arc. A* with
// an inconsistent heuristic may re-expand vertices, and a depth-limited
// depth-first run may re-expand a vertex once per shallower depth reached.
func Search(g *core.Graph, start, goal string, strategy Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	return searchSnapshot(g.Snapshot(), start, goal, strategy, o)
}

// searchSnapshot is Search on an already-taken snapshot.
func searchSnapshot(s *core.Snapshot, start, goal string, strategy Strategy, o Options) (*Result, error) {
	return observed(o, strategy.String(), start, goal, func(ctx context.Context, logger *slog.Logger) (*Result, error) {
		r, err := newRunner(s, start, goal, strategy, o)
		if err != nil {
			return nil, err
		}

		return r.run(ctx, logger)
	})
}

// runner holds the mutable state of one run.
type runner struct {
	snap     *core.Snapshot
	start    string
	goal     string
	strategy Strategy
	opts     Options
	h        heuristic.Func
	policy   discovery

	front     frontier.Frontier
	visited   map[string]bool    // expanded (closed) vertices
	closedAt  map[string]int     // depth at which a vertex was last closed
	best      map[string]float64 // lowest cost at which a vertex was pushed
	parent    map[string]string  // backpointers, written when a vertex is closed
	estimates map[string]float64 // memoized heuristic values

	// depthAware lets a depth-limited depth-first run close a vertex again when
	// it is reached at a smaller depth. Stale records are then filtered by run,
	// not by the frontier.
	depthAware bool

	state    State
	expanded int
	cutoff   bool
}

// validate checks the request against the snapshot before any work is done.
func validate(s *core.Snapshot, start, goal string, strategy Strategy, o Options) error {
	if !strategy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if !s.HasVertex(start) {
		return fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	if !s.HasVertex(goal) {
		return fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
	}
	if strategy.costOrdered() && s.HasNegativeCost() {
		from, to, c := firstNegativeArc(s)
		return fmt.Errorf("%w: arc %s→%s has cost %g", ErrNegativeCost, from, to, c)
	}
	if strategy == GreedyBestFirst && o.Heuristic == nil {
		return fmt.Errorf("%w: %s", ErrMissingHeuristic, strategy)
	}

	return nil
}

// firstNegativeArc locates a negative arc in vertex insertion order.
func firstNegativeArc(s *core.Snapshot) (string, string, float64) {
	for _, id := range s.Vertices() {
		arcs, _ := s.Arcs(id)
		for _, a := range arcs {
			if a.Cost < 0 {
				return id, a.To, a.Cost
			}
		}
	}

	return "", "", 0
}

func newRunner(s *core.Snapshot, start, goal string, strategy Strategy, o Options) (*runner, error) {
	if err := validate(s, start, goal, strategy, o); err != nil {
		return nil, err
	}

	r := &runner{
		snap:      s,
		start:     start,
		goal:      goal,
		strategy:  strategy,
		opts:      o,
		h:         o.Heuristic,
		visited:   make(map[string]bool),
		closedAt:  make(map[string]int),
		best:      make(map[string]float64),
		parent:    make(map[string]string),
		estimates: make(map[string]float64),
		state:     Init,
	}

	switch strategy {
	case BreadthFirst:
		r.front, r.policy, r.h = frontier.NewFIFO(r.isVisited), pushOnce, nil
	case DepthFirst:
		r.front, r.policy, r.h = frontier.NewLIFO(r.isVisited), pushAlways, nil
		if o.DepthLimit >= 0 {
			r.front, r.depthAware = frontier.NewLIFO(nil), true
		}
	case UniformCost:
		r.front, r.policy, r.h = frontier.NewPriority(frontier.ByCost, r.isVisited), pushImproved, nil
	case AStar:
		if r.h == nil {
			r.h = heuristic.Zero
		}
		r.front, r.policy = frontier.NewPriority(frontier.ByCostPlusEstimate, r.isVisited), pushImproved
	case GreedyBestFirst:
		r.front, r.policy = frontier.NewPriority(frontier.ByEstimate, r.isVisited), pushOnce
	}

	return r, nil
}

func (r *runner) isVisited(id string) bool { return r.visited[id] }

// estimate returns h(id, goal), memoized and validated.
func (r *runner) estimate(id string) (float64, error) {
	if r.h == nil {
		return 0, nil
	}
	if v, ok := r.estimates[id]; ok {
		return v, nil
	}
	v := r.h(id, r.goal)
	if math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("%w: h(%q)=%g", ErrBadEstimate, id, v)
	}
	r.estimates[id] = v

	return v, nil
}

// run drives INIT → RUNNING → {GOAL_FOUND, EXHAUSTED}.
func (r *runner) run(ctx context.Context, logger *slog.Logger) (*Result, error) {
	if r.opts.Precheck && !r.snap.SameComponent(r.start, r.goal) {
		logger.Debug("search_precheck_unreachable",
			slog.String("start", r.start),
			slog.String("goal", r.goal),
		)
		r.state = Exhausted

		return r.result(nil, 0), nil
	}

	est, err := r.estimate(r.start)
	if err != nil {
		return nil, err
	}
	r.front.Push(frontier.Record{ID: r.start, Estimate: est})
	r.best[r.start] = 0
	r.state = Running

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, ok := r.front.Pop()
		if !ok {
			r.state = Exhausted

			return r.result(nil, 0), nil
		}

		if r.depthAware && r.visited[rec.ID] && rec.Depth >= r.closedAt[rec.ID] {
			continue
		}
		r.visited[rec.ID] = true
		r.closedAt[rec.ID] = rec.Depth
		if rec.HasParent {
			r.parent[rec.ID] = rec.Parent
		}

		if rec.ID == r.goal {
			path, err := ReconstructPath(r.parent, r.start, r.goal)
			if err != nil {
				return nil, err
			}
			r.state = GoalFound

			return r.result(path, rec.Cost), nil
		}

		if r.opts.DepthLimit >= 0 && rec.Depth >= r.opts.DepthLimit {
			if r.hasOpenSuccessor(rec.ID) {
				r.cutoff = true
			}
			continue
		}

		if err := r.expand(rec); err != nil {
			return nil, err
		}
	}
}

// hasOpenSuccessor reports whether id has an arc to a not yet closed vertex.
func (r *runner) hasOpenSuccessor(id string) bool {
	seq, err := r.snap.Neighbors(id)
	if err != nil {
		return false
	}
	for to := range seq {
		if !r.visited[to] {
			return true
		}
	}

	return false
}

// reopens reports whether a closed vertex reached again must be expanded again.
//
// A* re-opens on a strictly cheaper route, so an admissible but inconsistent
// heuristic still yields a cost-minimal path. A depth-limited depth-first run
// re-opens on a strictly shallower route, so no goal within the limit is missed.
// Uniform-cost never needs it: with non-negative costs a closed vertex is final.
func (r *runner) reopens(id string, cost float64, depth int) bool {
	switch {
	case r.strategy == AStar:
		b, seen := r.best[id]
		return !seen || cost < b
	case r.depthAware:
		return depth < r.closedAt[id]
	default:
		return false
	}
}

// expand generates the successors of rec and pushes the admissible ones.
func (r *runner) expand(rec frontier.Record) error {
	if r.opts.OnExpand != nil {
		if err := r.opts.OnExpand(rec); err != nil {
			return fmt.Errorf("search: expand hook at %q: %w", rec.ID, err)
		}
	}

	seq, err := r.snap.Neighbors(rec.ID)
	if err != nil {
		return err
	}

	var batch []frontier.Record
	for to, c := range seq {
		cost := rec.Cost + c
		if r.visited[to] && !r.reopens(to, cost, rec.Depth+1) {
			continue
		}
		switch r.policy {
		case pushOnce:
			if _, seen := r.best[to]; seen {
				continue
			}
		case pushImproved:
			if b, seen := r.best[to]; seen && cost >= b {
				continue
			}
		}

		est, err := r.estimate(to)
		if err != nil {
			return err
		}
		r.best[to] = cost
		if r.strategy == AStar {
			delete(r.visited, to)
		}
		batch = append(batch, frontier.Record{
			ID:        to,
			Cost:      cost,
			Parent:    rec.ID,
			HasParent: true,
			Estimate:  est,
			Depth:     rec.Depth + 1,
		})
	}

	// LIFO pops the last push first; reversing keeps exploration in adjacency order.
	if r.strategy == DepthFirst {
		for i := len(batch) - 1; i >= 0; i-- {
			r.front.Push(batch[i])
		}
	} else {
		for _, next := range batch {
			r.front.Push(next)
		}
	}
	r.expanded++

	return nil
}

func (r *runner) result(path []string, cost float64) *Result {
	return &Result{
		Path:          path,
		Cost:          cost,
		NodesExpanded: r.expanded,
		State:         r.state,
		Cutoff:        r.cutoff,
		Strategy:      r.strategy,
	}
}
