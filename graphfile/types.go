// SPDX-License-Identifier: MIT

package graphfile

import (
	"context"
	"errors"
	"maps"

	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for graph file loading.
var (
	// ErrParse is returned when the source is not valid HCL.
	ErrParse = errors.New("graphfile: parse failed")
	// ErrDecode is returned when valid HCL does not match the document schema.
	ErrDecode = errors.New("graphfile: decode failed")
	// ErrInvalidDocument is returned when a decoded document is inconsistent
	// (duplicate names, unknown strategy or heuristic, dangling query endpoints).
	ErrInvalidDocument = errors.New("graphfile: invalid document")
)

// Document is a loaded graph file: the graph, optional vertex positions, and
// the queries to run against it, in file order.
type Document struct {
	Graph       *core.Graph
	Coordinates heuristic.Coordinates
	Queries     []search.Query
}

// Option configures Parse and Load.
type Option func(*config)

type config struct {
	ctx  context.Context
	vars map[string]cty.Value
}

func defaultConfig() config {
	return config{ctx: context.Background(), vars: map[string]cty.Value{}}
}

// WithContext supplies the context whose logger (see ctxlog) receives decode logs.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithVariables exposes values to expressions as var.<name>.
// Later calls add to, and override, earlier ones.
func WithVariables(vars map[string]cty.Value) Option {
	return func(c *config) {
		maps.Copy(c.vars, vars)
	}
}

// hclDocument is the top-level structure of a graph file for decoding.
type hclDocument struct {
	Directed *bool      `hcl:"directed,optional"`
	Nodes    []hclNode  `hcl:"node,block"`
	Edges    []hclEdge  `hcl:"edge,block"`
	Queries  []hclQuery `hcl:"query,block"`
}

type hclNode struct {
	ID string   `hcl:"id,label"`
	X  *float64 `hcl:"x,optional"`
	Y  *float64 `hcl:"y,optional"`
}

type hclEdge struct {
	From string  `hcl:"from,label"`
	To   string  `hcl:"to,label"`
	Cost float64 `hcl:"cost"`
}

type hclQuery struct {
	Name       string   `hcl:"name,label"`
	Start      string   `hcl:"start"`
	Goal       string   `hcl:"goal"`
	Strategy   string   `hcl:"strategy"`
	Heuristic  *string  `hcl:"heuristic,optional"`
	Weight     *float64 `hcl:"weight,optional"`
	DepthLimit *int     `hcl:"depth_limit,optional"`
	Precheck   *bool    `hcl:"precheck,optional"`
}
