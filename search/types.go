// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownNode is returned when start or goal is not in the graph.
	// It is the core sentinel, re-exported so callers need not import core.
	ErrUnknownNode = core.ErrUnknownNode

	// ErrNegativeCost is returned by uniform-cost and A* runs on graphs holding a
	// negative arc; detected before the run starts.
	ErrNegativeCost = errors.New("search: negative edge cost not allowed for cost-ordered strategy")

	// ErrUnknownStrategy is returned for a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrMissingHeuristic is returned when greedy best-first runs without a heuristic.
	ErrMissingHeuristic = errors.New("search: strategy requires a heuristic")

	// ErrBadEstimate is returned when a heuristic yields a negative or NaN estimate.
	ErrBadEstimate = errors.New("search: heuristic estimate must be a non-negative number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBrokenChain is returned when backpointers do not lead back to the start.
	ErrBrokenChain = errors.New("search: backpointer chain does not reach start")
)

// Strategy selects the frontier discipline of a run.
type Strategy int

const (
	// BreadthFirst expands in FIFO order; paths are minimal in edge count.
	BreadthFirst Strategy = iota
	// DepthFirst expands in LIFO order; no optimality guarantee.
	DepthFirst
	// UniformCost expands by cost-so-far; paths are cost-minimal.
	UniformCost
	// AStar expands by cost-so-far plus estimate; cost-minimal with an admissible heuristic.
	// A closed vertex reached again more cheaply is re-opened, so consistency is not required.
	AStar
	// GreedyBestFirst expands by estimate alone.
	GreedyBestFirst
)

var strategyNames = [...]string{
	BreadthFirst:    "breadth-first",
	DepthFirst:      "depth-first",
	UniformCost:     "uniform-cost",
	AStar:           "astar",
	GreedyBestFirst: "greedy-best-first",
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s >= BreadthFirst && s <= GreedyBestFirst
}

// costOrdered reports whether s relies on non-negative costs for correctness.
func (s Strategy) costOrdered() bool {
	return s == UniformCost || s == AStar
}

// ParseStrategy resolves a strategy name or common alias (case-insensitive):
// bfs, dfs, ucs, dijkstra, a*, greedy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "breadth-first", "bfs":
		return BreadthFirst, nil
	case "depth-first", "dfs":
		return DepthFirst, nil
	case "uniform-cost", "ucs", "dijkstra":
		return UniformCost, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "greedy-best-first", "greedy":
		return GreedyBestFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// State is a run's position in the driver state machine.
type State int

const (
	// Init: frontier not yet seeded.
	Init State = iota
	// Running: popping and expanding.
	Running
	// GoalFound: terminal success.
	GoalFound
	// Exhausted: terminal failure, no path within the explored space.
	Exhausted
)

// String returns the upper-case state name.
func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case Running:
		return "RUNNING"
	case GoalFound:
		return "GOAL_FOUND"
	case Exhausted:
		return "EXHAUSTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NoDepthLimit disables the depth ceiling.
const NoDepthLimit = -1

// Option configures a run via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of one run.
type Options struct {
	// Ctx allows cancellation between expansions and carries the logger and span parent.
	Ctx context.Context

	// Heuristic estimates remaining cost. Required by GreedyBestFirst; A* falls
	// back to heuristic.Zero when nil; ignored by uninformed strategies.
	Heuristic heuristic.Func

	// DepthLimit, if >= 0, stops expansion of records at that depth.
	// NoDepthLimit (the default) disables the ceiling.
	DepthLimit int

	// Logger overrides the logger found in Ctx.
	Logger *slog.Logger

	// OnExpand is called right before a record's successors are generated.
	// Returning an error aborts the run.
	OnExpand func(r frontier.Record) error

	// Precheck short-circuits to EXHAUSTED when start and goal lie in different
	// weak components.
	Precheck bool

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no heuristic, no depth limit, no hooks, no precheck
//   - logger taken from the context (discarding when absent)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: NoDepthLimit,
	}
}

// WithContext sets a custom context for cancellation, logging and tracing.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic installs the estimate-to-goal function.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithDepthLimit caps expansion depth.
//
//	d >= 0: records at depth d are goal-tested but not expanded
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithLogger sets the structured logger for the run.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(r frontier.Record) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithReachabilityPrecheck enables the weak-component fast failure.
func WithReachabilityPrecheck() Option {
	return func(o *Options) {
		o.Precheck = true
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result holds the outcome of a run.
//   - Path: start → goal vertex IDs, nil when no path was found.
//   - Cost: sum of arc costs along Path (0 when not found).
//   - NodesExpanded: expansions (successor generations); a re-opened vertex
//     counts once per expansion.
//   - State: GoalFound or Exhausted.
//   - Cutoff: the depth ceiling pruned at least one expandable record.
type Result struct {
	Path          []string
	Cost          float64
	NodesExpanded int
	State         State
	Cutoff        bool
	Strategy      Strategy
}

// Found reports whether the run reached the goal.
func (r *Result) Found() bool { return r != nil && r.State == GoalFound }

// Query is one independent run request for RunAll.
type Query struct {
	Name     string
	Start    string
	Goal     string
	Strategy Strategy
	Options  []Option
}
