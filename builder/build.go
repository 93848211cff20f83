// SPDX-License-Identifier: MIT
// Package: coactgraph/builder
//
// build.go: threshold/self-loop filtering and graph materialization.
//
// Determinism:
//   • Survivors are kept in a btree ordered by the configured EdgeOrder, so
//     the edge sequence never depends on map iteration order.
// Complexity:
//   • O(P log P) for P input pairs.

package builder

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/coactgraph/core"
	"github.com/katalvlaran/coactgraph/pairs"
)

// Summary reports what Build kept and dropped.
type Summary struct {
	// Pairs is the number of distinct pairs considered (after folding for
	// undirected builds).
	Pairs int
	// DroppedLoops counts pairs with A == B.
	DroppedLoops int
	// DroppedBelow counts non-loop pairs with count < threshold.
	DroppedBelow int
	// Kept is the number of edges in the graph.
	Kept int
}

// Build materializes a frozen graph from counts. See package doc for the
// exact filtering order.
//
// Errors:
//   - ErrNilCounts, ErrNegativeThreshold (wrapped with MethodBuild).
//   - pairs.ErrCountOverflow when folding an undirected build overflows.
//
// Determinism: identical counts, threshold and options always yield the
// same vertex set and the same edge sequence.
func Build(counts pairs.Counts, threshold int64, opts ...BuilderOption) (*core.Graph, error) {
	g, _, err := BuildWithSummary(counts, threshold, opts...)
	return g, err
}

// BuildWithSummary is Build plus a Summary of the filtering.
// On error the graph is nil and the summary is zero.
func BuildWithSummary(counts pairs.Counts, threshold int64, opts ...BuilderOption) (*core.Graph, Summary, error) {
	if counts == nil {
		return nil, Summary{}, wrapf(MethodBuild, ErrNilCounts, "counts")
	}
	if threshold < 0 {
		return nil, Summary{}, wrapf(MethodBuild, ErrNegativeThreshold, "threshold=%d", threshold)
	}
	cfg := newBuilderConfig(opts...)

	src := counts
	if !cfg.directed {
		folded, err := counts.Canonical()
		if err != nil {
			return nil, Summary{}, wrapf(MethodBuild, err, "fold undirected")
		}
		src = folded
	}

	sum := Summary{Pairs: len(src)}
	kept := btree.NewBTreeG[pairs.Entry](lessFor(cfg.order))
	for p, n := range src {
		switch {
		case p.IsLoop():
			sum.DroppedLoops++
		case n < threshold || n < 1:
			// a non-positive count never co-occurred, whatever the threshold
			sum.DroppedBelow++
		default:
			kept.Set(pairs.Entry{Pair: p, Count: n})
		}
	}

	g := core.NewGraph(core.WithDirected(cfg.directed))
	var err error
	kept.Scan(func(e pairs.Entry) bool {
		err = g.AddEdge(e.Pair.A, e.Pair.B, e.Count)
		return err == nil
	})
	if err != nil {
		return nil, Summary{}, wrapf(MethodBuild, err, "edge")
	}
	g.Freeze()
	sum.Kept = g.EdgeCount()

	return g, sum, nil
}

func lessFor(order EdgeOrder) func(a, b pairs.Entry) bool {
	if order == ByWeightDesc {
		return func(a, b pairs.Entry) bool {
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return pairs.Less(a.Pair, b.Pair)
		}
	}
	return func(a, b pairs.Entry) bool { return pairs.Less(a.Pair, b.Pair) }
}
