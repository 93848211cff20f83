// SPDX-License-Identifier: MIT
// Package: coactgraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • directed = true     (temporal pair order preserved)
//   • order    = ByPair   (edges sorted by (From, To) asc)

package builder

// EdgeOrder selects the order edges are inserted into the graph.
type EdgeOrder uint8

const (
	// ByPair sorts edges by From asc, then To asc.
	ByPair EdgeOrder = iota
	// ByWeightDesc sorts edges by weight desc, ties by From asc, then To asc.
	ByWeightDesc
)

// builderConfig aggregates all knobs used by Build. Passed by value.
type builderConfig struct {
	directed bool
	order    EdgeOrder
}

// newBuilderConfig resolves defaults and applies options left to right.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		directed: true,
		order:    ByPair,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
