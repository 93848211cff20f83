package coaction

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/coactgraph/builder"
	"github.com/katalvlaran/coactgraph/metrics"
	"github.com/katalvlaran/coactgraph/pairs"
)

// Option configures detection and graph building.
type Option func(*options)

type options struct {
	workers   int
	pairMode  pairs.Mode
	edgeOrder builder.EdgeOrder
	logger    *slog.Logger
	metrics   *metrics.Collector
}

const defaultWorkers = 1

func newOptions(opts ...Option) options {
	o := options{
		workers:   defaultWorkers,
		pairMode:  pairs.Directed,
		edgeOrder: builder.ByPair,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers sets the number of goroutines scanning key groups. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("coaction: WithWorkers(%d)", n))
	}
	return func(o *options) { o.workers = n }
}

// WithPairMode selects directed (default) or canonical pair identity.
// Canonical detection also produces undirected graphs in BuildGraph and Run.
// Panics on a Mode other than pairs.Directed or pairs.Canonical.
func WithPairMode(m pairs.Mode) Option {
	if !m.Valid() {
		panic(fmt.Sprintf("coaction: WithPairMode(%s)", m))
	}
	return func(o *options) { o.pairMode = m }
}

// WithEdgeOrder selects the edge order of built graphs.
func WithEdgeOrder(order builder.EdgeOrder) Option {
	return func(o *options) { o.edgeOrder = order }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("coaction: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics attaches Prometheus collectors. nil disables metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}
