// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/core"
)

// RunAll executes independent queries against one snapshot of g with at most
// workers runs in flight (workers <= 0 means GOMAXPROCS). Results are returned
// in query order.
//
// The first failing query cancels the rest and its error is returned, prefixed
// by the query name. Each query sees ctx (or the group's derived context)
// unless its own Options override it.
func RunAll(ctx context.Context, g *core.Graph, queries []Query, workers int) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	snap := g.Snapshot()
	results := make([]*Result, len(queries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, q := range queries {
		eg.Go(func() error {
			o := buildOptions(append([]Option{WithContext(egCtx)}, q.Options...))
			if o.err != nil {
				return fmt.Errorf("query %q: %w", q.Name, o.err)
			}
			res, err := searchSnapshot(snap, q.Start, q.Goal, q.Strategy, o)
			if err != nil {
				return fmt.Errorf("query %q: %w", q.Name, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
