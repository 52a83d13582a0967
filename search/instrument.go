// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsearch/internal/ctxlog"
)

var (
	// runsTotal counts finished runs by strategy and terminal state.
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvsearch_runs_total",
		Help: "Total search runs by strategy and terminal state",
	}, []string{"strategy", "state"})

	// errorsTotal counts runs rejected or aborted, by reason.
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvsearch_errors_total",
		Help: "Total search errors by reason",
	}, []string{"reason"})

	nodesExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvsearch_nodes_expanded",
		Help:    "Vertices expanded per search run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	}, []string{"strategy"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvsearch_run_duration_seconds",
		Help:    "Search run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"strategy"})
)

const tracerName = "github.com/katalvlaran/lvsearch/search"

// errorReason maps an error onto a low-cardinality metric label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrNilGraph):
		return "nil_graph"
	case errors.Is(err, ErrUnknownNode):
		return "unknown_node"
	case errors.Is(err, ErrNegativeCost):
		return "negative_cost"
	case errors.Is(err, ErrUnknownStrategy):
		return "unknown_strategy"
	case errors.Is(err, ErrMissingHeuristic):
		return "missing_heuristic"
	case errors.Is(err, ErrBadEstimate):
		return "bad_estimate"
	case errors.Is(err, ErrOptionViolation):
		return "option_violation"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}

// observed wraps one run with a span, structured logs and metrics.
// label names the run kind for metrics, logs and the span ("search.<label>").
func observed(
	o Options,
	label, start, goal string,
	run func(ctx context.Context, logger *slog.Logger) (*Result, error),
) (*Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(o.Ctx, "search."+label,
		trace.WithAttributes(
			attribute.String("search.strategy", label),
			attribute.String("search.start", start),
			attribute.String("search.goal", goal),
		),
	)
	defer span.End()

	logger := o.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	logger = logger.With(slog.String("strategy", label))
	logger.Debug("search_start", slog.String("start", start), slog.String("goal", goal))

	began := time.Now()
	res, err := run(ctx, logger)
	elapsed := time.Since(began)
	runDuration.WithLabelValues(label).Observe(elapsed.Seconds())

	if err != nil {
		errorsTotal.WithLabelValues(errorReason(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		logger.Warn("search_failed",
			slog.String("start", start),
			slog.String("goal", goal),
			slog.Any("error", err),
		)

		return nil, err
	}

	runsTotal.WithLabelValues(label, res.State.String()).Inc()
	nodesExpanded.WithLabelValues(label).Observe(float64(res.NodesExpanded))
	span.SetAttributes(
		attribute.String("search.state", res.State.String()),
		attribute.Int("search.nodes_expanded", res.NodesExpanded),
		attribute.Int("search.path_len", len(res.Path)),
		attribute.Float64("search.cost", res.Cost),
	)
	span.SetStatus(codes.Ok, res.State.String())
	logger.Debug("search_complete",
		slog.String("start", start),
		slog.String("goal", goal),
		slog.String("state", res.State.String()),
		slog.Int("nodes_expanded", res.NodesExpanded),
		slog.Float64("cost", res.Cost),
		slog.Duration("duration", elapsed),
	)

	return res, nil
}
