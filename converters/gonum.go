// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph → gonum simple weighted graphs.
// Determinism:
//   - Nodes are added in ascending actor order, edges in core insertion order.

package converters

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/coactgraph/core"
)

// ErrNilGraph indicates a nil *core.Graph argument.
var ErrNilGraph = errors.New("converters: nil graph")

// Weight returned by gonum for absent edges and self lookups.
const (
	selfWeight   = 0
	absentWeight = 0
)

// ToGonum converts g according to its directedness.
func ToGonum(g *core.Graph) (graph.Weighted, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return ToGonumDirected(g)
	}

	return ToGonumUndirected(g)
}

// ToGonumDirected copies g into a weighted directed gonum graph. Undirected
// core graphs yield one arc per stored edge, in its stored orientation.
// Complexity: O(V+E).
func ToGonumDirected(g *core.Graph) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst := simple.NewWeightedDirectedGraph(selfWeight, absentWeight)
	for _, id := range g.Vertices() {
		dst.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), float64(e.Weight)))
	}

	return dst, nil
}

// ToGonumUndirected copies g into a weighted undirected gonum graph. For a
// directed core graph holding both a→b and b→a, the weights are summed.
// Complexity: O(V+E).
func ToGonumUndirected(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst := simple.NewWeightedUndirectedGraph(selfWeight, absentWeight)
	for _, id := range g.Vertices() {
		dst.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		if prev, ok := dst.Weight(e.From, e.To); ok {
			w += prev
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
	}

	return dst, nil
}
