// SPDX-License-Identifier: MIT

package graphfile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/internal/ctxlog"
	"github.com/katalvlaran/lvsearch/search"
)

// Load parses and decodes the HCL graph file at path.
func Load(path string, opts ...Option) (*Document, error) {
	cfg := applyOptions(opts)
	logger := ctxlog.FromContext(cfg.ctx)
	logger.Debug("Decoding graph file.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, diags)
	}

	return decode(file, path, cfg)
}

// Parse decodes an in-memory HCL graph document; filename is used in diagnostics.
func Parse(src []byte, filename string, opts ...Option) (*Document, error) {
	cfg := applyOptions(opts)
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	return decode(file, filename, cfg)
}

// Run executes every query of the document through search.RunAll and returns
// the results in query order.
func (d *Document) Run(ctx context.Context, workers int) ([]*search.Result, error) {
	return search.RunAll(ctx, d.Graph, d.Queries, workers)
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// evalContext exposes var.* and a small numeric/string function library.
func evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"abs":    stdlib.AbsoluteFunc,
			"ceil":   stdlib.CeilFunc,
			"floor":  stdlib.FloorFunc,
			"max":    stdlib.MaxFunc,
			"min":    stdlib.MinFunc,
			"format": stdlib.FormatFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

func decode(file *hcl.File, filename string, cfg config) (*Document, error) {
	logger := ctxlog.FromContext(cfg.ctx)

	var raw hclDocument
	if diags := gohcl.DecodeBody(file.Body, evalContext(cfg.vars), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}

	doc, err := build(&raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Debug("Successfully decoded graph file.",
		"path", filename,
		"vertices", doc.Graph.VertexCount(),
		"edges", doc.Graph.EdgeCount(),
		"queries", len(doc.Queries),
	)

	return doc, nil
}

// build turns the decoded blocks into a Document, validating as it goes.
func build(raw *hclDocument) (*Document, error) {
	var gopts []core.GraphOption
	if raw.Directed != nil {
		gopts = append(gopts, core.WithDirected(*raw.Directed))
	}
	g := core.NewGraph(gopts...)
	coords := make(heuristic.Coordinates)

	seen := make(map[string]bool, len(raw.Nodes))
	for _, n := range raw.Nodes {
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrInvalidDocument, n.ID)
		}
		seen[n.ID] = true
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("%w: node %q: %w", ErrInvalidDocument, n.ID, err)
		}
		switch {
		case n.X != nil && n.Y != nil:
			coords[n.ID] = heuristic.Point{X: *n.X, Y: *n.Y}
		case n.X != nil || n.Y != nil:
			return nil, fmt.Errorf("%w: node %q must set both x and y", ErrInvalidDocument, n.ID)
		}
	}

	for _, e := range raw.Edges {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("%w: edge %q→%q: %w", ErrInvalidDocument, e.From, e.To, err)
		}
	}

	queries := make([]search.Query, 0, len(raw.Queries))
	names := make(map[string]bool, len(raw.Queries))
	for _, rq := range raw.Queries {
		if names[rq.Name] {
			return nil, fmt.Errorf("%w: duplicate query %q", ErrInvalidDocument, rq.Name)
		}
		names[rq.Name] = true
		q, err := buildQuery(g, coords, rq)
		if err != nil {
			return nil, fmt.Errorf("%w: query %q: %w", ErrInvalidDocument, rq.Name, err)
		}
		queries = append(queries, q)
	}

	return &Document{Graph: g, Coordinates: coords, Queries: queries}, nil
}

func buildQuery(g *core.Graph, coords heuristic.Coordinates, rq hclQuery) (search.Query, error) {
	strategy, err := search.ParseStrategy(rq.Strategy)
	if err != nil {
		return search.Query{}, err
	}
	for _, id := range []string{rq.Start, rq.Goal} {
		if !g.HasVertex(id) {
			return search.Query{}, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
	}

	q := search.Query{Name: rq.Name, Start: rq.Start, Goal: rq.Goal, Strategy: strategy}

	var h heuristic.Func
	if rq.Heuristic != nil {
		if h, err = heuristicByName(*rq.Heuristic, coords); err != nil {
			return search.Query{}, err
		}
	}
	if rq.Weight != nil {
		w := *rq.Weight
		if math.IsNaN(w) || w < 0 {
			return search.Query{}, fmt.Errorf("weight must be non-negative, got %g", w)
		}
		if h == nil {
			return search.Query{}, errors.New("weight needs a heuristic")
		}
		h = heuristic.Scale(h, w)
	}
	if h != nil {
		q.Options = append(q.Options, search.WithHeuristic(h))
	} else if strategy == search.GreedyBestFirst {
		return search.Query{}, search.ErrMissingHeuristic
	}

	if rq.DepthLimit != nil {
		if *rq.DepthLimit < 0 {
			return search.Query{}, fmt.Errorf("%w: depth_limit %d", search.ErrOptionViolation, *rq.DepthLimit)
		}
		q.Options = append(q.Options, search.WithDepthLimit(*rq.DepthLimit))
	}
	if rq.Precheck != nil && *rq.Precheck {
		q.Options = append(q.Options, search.WithReachabilityPrecheck())
	}

	return q, nil
}

// heuristicByName resolves "zero" or a coordinate metric name.
func heuristicByName(name string, coords heuristic.Coordinates) (heuristic.Func, error) {
	if name == "zero" {
		return heuristic.Zero, nil
	}
	m, ok := heuristic.MetricByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}

	return coords.Estimate(m), nil
}
