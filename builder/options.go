// SPDX-License-Identifier: MIT
// Package: coactgraph/builder
//
// options.go: functional options for Build.

package builder

import "fmt"

// BuilderOption customizes Build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithDirected selects a directed (true, default) or undirected graph.
// Undirected builds fold (a,b) and (b,a) before thresholding.
func WithDirected(directed bool) BuilderOption {
	return func(c *builderConfig) { c.directed = directed }
}

// WithEdgeOrder selects the edge insertion order. Panics on unknown values.
func WithEdgeOrder(order EdgeOrder) BuilderOption {
	if order != ByPair && order != ByWeightDesc {
		panic(fmt.Sprintf("builder: WithEdgeOrder(%d)", order))
	}
	return func(c *builderConfig) { c.order = order }
}
