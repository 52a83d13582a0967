// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// DepthLimited runs depth-first search that never expands a record at depth
// >= limit. Such records are still goal-tested, so limit 0 finds only
// start == goal.
//
// A vertex first closed through a deep route is expanded again when a
// shallower route reaches it, so every goal within limit hops is found.
//
// Result.Cutoff reports whether the ceiling pruned a vertex that still had
// unexplored successors; Exhausted with Cutoff == false means the goal is
// unreachable at any depth.
func DepthLimited(g *core.Graph, start, goal string, limit int, opts ...Option) (*Result, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, limit)
	}

	return Search(g, start, goal, DepthFirst, append(opts[:len(opts):len(opts)], WithDepthLimit(limit))...)
}

// IterativeDeepening repeats DepthLimited with limits 0, 1, …, maxDepth and
// returns the first run that finds the goal. It stops early when a run ends
// without cutoff, since deeper limits would explore nothing new.
//
// The first iteration that finds the goal does so at the smallest limit that
// admits it, so the returned path has the fewest arcs.
//
// NodesExpanded accumulates across all iterations. A WithDepthLimit option
// passed in opts is overridden per iteration.
func IterativeDeepening(g *core.Graph, start, goal string, maxDepth int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, maxDepth)
	}
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Snapshot()
	var (
		last  *Result
		total int
	)
	for limit := 0; limit <= maxDepth; limit++ {
		o.DepthLimit = limit
		res, err := searchSnapshot(snap, start, goal, DepthFirst, o)
		if err != nil {
			return nil, err
		}
		total += res.NodesExpanded
		res.NodesExpanded = total
		if res.Found() || !res.Cutoff {
			return res, nil
		}
		last = res
	}

	return last, nil
}
