package coaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/coactgraph/builder"
	"github.com/katalvlaran/coactgraph/core"
	"github.com/katalvlaran/coactgraph/event"
	"github.com/katalvlaran/coactgraph/metrics"
	"github.com/katalvlaran/coactgraph/pairs"
)

// BuildGraph keeps pairs with count >= minRepeat, drops self-loops and
// returns a frozen graph. Directed coactions yield a directed graph;
// canonical coactions yield an undirected one.
//
// Errors: builder.ErrNilCounts for a nil c or nil counts,
// pairs.ErrUnknownMode for an invalid c.Mode, builder.ErrNegativeThreshold.
func BuildGraph(c *Coactions, minRepeat int64, opts ...Option) (*core.Graph, error) {
	o := newOptions(opts...)
	if c == nil {
		return nil, fmt.Errorf("coaction: %w", builder.ErrNilCounts)
	}
	g, _, err := buildGraph(c.Counts, c.Mode, minRepeat, "", o)
	return g, err
}

func buildGraph(counts pairs.Counts, pm pairs.Mode, minRepeat int64, mode string, o options) (*core.Graph, builder.Summary, error) {
	if !pm.Valid() {
		return nil, builder.Summary{}, fmt.Errorf("coaction: pair mode %s: %w", pm, pairs.ErrUnknownMode)
	}
	started := time.Now()
	g, sum, err := builder.BuildWithSummary(counts, minRepeat,
		builder.WithDirected(pm == pairs.Directed),
		builder.WithEdgeOrder(o.edgeOrder),
	)
	if err != nil {
		return nil, builder.Summary{}, fmt.Errorf("coaction: %w", err)
	}
	o.metrics.ObserveStage(metrics.StageBuild, time.Since(started))
	if mode != "" {
		o.metrics.ObserveBuild(mode, sum.Kept, sum.DroppedLoops, sum.DroppedBelow)
	}

	return g, sum, nil
}

// Report is the outcome of one Run.
type Report struct {
	RunID    uuid.UUID
	Mode     Mode
	PairMode pairs.Mode

	// Events and Keys describe the input; Emissions is the number of
	// window pairings before accumulation.
	Events    int
	Keys      int
	Emissions int64

	Counts  pairs.Counts
	Graph   *core.Graph
	Stats   core.Stats
	Summary builder.Summary

	Duration time.Duration
}

// Run detects co-occurrences with mode.WindowSeconds and builds the graph with
// mode.MinRepeat.
func Run(ctx context.Context, events []event.Event, mode Mode, opts ...Option) (*Report, error) {
	return RunSource(ctx, event.NewSliceSource(events), mode, opts...)
}

// RunSource is Run over a streamed source.
func RunSource(ctx context.Context, src event.Source, mode Mode, opts ...Option) (*Report, error) {
	o := newOptions(opts...)
	started := time.Now()
	rep := &Report{RunID: uuid.New(), Mode: mode, PairMode: o.pairMode}
	o.logger = o.logger.With("run_id", rep.RunID.String(), "mode", mode.Name)

	counts, det, err := detectSource(ctx, src, mode.WindowSeconds, o)
	if err != nil {
		return nil, err
	}
	g, sum, err := buildGraph(counts, o.pairMode, mode.MinRepeat, mode.Name, o)
	if err != nil {
		return nil, err
	}

	rep.Events, rep.Keys, rep.Emissions = det.events, det.keys, det.emissions
	rep.Counts, rep.Graph, rep.Summary = counts, g, sum
	if rep.Stats, err = g.Stats(); err != nil {
		return nil, fmt.Errorf("coaction: %w", err)
	}
	rep.Duration = time.Since(started)
	o.logger.Info("coaction graph built",
		"vertices", rep.Stats.VertexCount,
		"edges", rep.Stats.EdgeCount,
		"dropped_loops", sum.DroppedLoops,
		"dropped_below", sum.DroppedBelow,
		"duration", rep.Duration,
	)

	return rep, nil
}
