// SPDX-License-Identifier: MIT
//
// File: detect.go
// Role: Parallel co-occurrence detection over an event index.
// Concurrency:
//   - Groups are partitioned by stride: worker i takes groups i, i+n, i+2n...
//   - Worker i writes only arena slot i, emitted[i] and the groups it owns.
//   - The single merge happens after errgroup.Wait.

package coaction

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coactgraph/accumulate"
	"github.com/katalvlaran/coactgraph/event"
	"github.com/katalvlaran/coactgraph/index"
	"github.com/katalvlaran/coactgraph/metrics"
	"github.com/katalvlaran/coactgraph/pairs"
	"github.com/katalvlaran/coactgraph/window"
)

// Coactions is the result of detection: the global pair counts together with
// the pair mode they were keyed with. BuildGraph derives the graph's
// directedness from Mode, so counts and graph cannot disagree.
type Coactions struct {
	pairs.Counts
	Mode pairs.Mode
}

// DetectCoactions groups events by key, scans every group with the given
// window and returns the global pair counts.
func DetectCoactions(ctx context.Context, events []event.Event, windowSeconds int64, opts ...Option) (*Coactions, error) {
	return DetectFromSource(ctx, event.NewSliceSource(events), windowSeconds, opts...)
}

// DetectFromSource is DetectCoactions over a streamed source. The caller
// keeps ownership of src. Group buffers are released as soon as they are
// scanned.
func DetectFromSource(ctx context.Context, src event.Source, windowSeconds int64, opts ...Option) (*Coactions, error) {
	o := newOptions(opts...)
	counts, _, err := detectSource(ctx, src, windowSeconds, o)
	if err != nil {
		return nil, err
	}

	return &Coactions{Counts: counts, Mode: o.pairMode}, nil
}

// DetectIndex scans an already built index. Groups of idx are sorted in
// place but otherwise left intact.
func DetectIndex(ctx context.Context, idx *index.Index, windowSeconds int64, opts ...Option) (*Coactions, error) {
	o := newOptions(opts...)
	counts, det, err := detect(ctx, idx, windowSeconds, o, false)
	o.metrics.ObserveDetection(det.events, det.keys, det.emissions, err)
	if err != nil {
		return nil, err
	}

	return &Coactions{Counts: counts, Mode: o.pairMode}, nil
}

// detection carries volume figures for logging, metrics and reports.
type detection struct {
	events    int
	keys      int
	emissions int64
}

func detectSource(ctx context.Context, src event.Source, windowSeconds int64, o options) (pairs.Counts, detection, error) {
	started := time.Now()
	idx, err := index.FromSource(ctx, src)
	if err != nil {
		o.metrics.ObserveDetection(0, 0, 0, err)
		return nil, detection{}, fmt.Errorf("coaction: %w", err)
	}
	o.metrics.ObserveStage(metrics.StageIndex, time.Since(started))

	counts, det, err := detect(ctx, idx, windowSeconds, o, true)
	o.metrics.ObserveDetection(det.events, det.keys, det.emissions, err)

	return counts, det, err
}

func detect(ctx context.Context, idx *index.Index, windowSeconds int64, o options, release bool) (pairs.Counts, detection, error) {
	grouper, err := window.New(windowSeconds, o.pairMode)
	if err != nil {
		return nil, detection{}, fmt.Errorf("coaction: %w", err)
	}

	started := time.Now()
	groups := idx.Groups()
	workers := o.workers
	if workers > len(groups) {
		workers = len(groups)
	}
	if workers < 1 {
		workers = 1
	}

	arena := accumulate.NewArena(workers)
	emitted := make([]int64, workers)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			out := arena.Slot(w)
			for i := w; i < len(groups); i += workers {
				if err := egCtx.Err(); err != nil {
					return err
				}
				g := groups[i]
				g.Sort()
				n, err := grouper.ScanInto(g.Entries, out)
				if err != nil {
					return fmt.Errorf("key %q: %w", g.Key, err)
				}
				emitted[w] += n
				if release {
					g.Entries = nil
				}
			}
			o.logger.Debug("coaction shard done", "worker", w, "pairs", len(out), "emissions", emitted[w])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, detection{}, fmt.Errorf("coaction: window=%d: %w", windowSeconds, err)
	}
	o.metrics.ObserveStage(metrics.StageWindow, time.Since(started))

	merged := time.Now()
	counts, err := arena.Reduce()
	if err != nil {
		return nil, detection{}, fmt.Errorf("coaction: %w", err)
	}
	o.metrics.ObserveStage(metrics.StageMerge, time.Since(merged))

	det := detection{events: idx.Events(), keys: len(groups)}
	for _, n := range emitted {
		det.emissions += n
	}
	o.logger.Info("coaction detection done",
		"window_seconds", windowSeconds,
		"pair_mode", o.pairMode.String(),
		"events", det.events,
		"keys", det.keys,
		"pairs", len(counts),
		"emissions", det.emissions,
		"workers", workers,
		"duration", time.Since(started),
	)

	return counts, det, nil
}
