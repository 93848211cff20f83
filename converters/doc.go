// Package converters provides adapters from core.Graph to gonum/graph, so
// coaction graphs can be handed to external analytics (centrality,
// components, community detection) without this module implementing any of
// them.
//
// Actor ids map one-to-one onto gonum node ids; edge weights become float64.
// Directed core graphs convert to simple.WeightedDirectedGraph, undirected
// ones to simple.WeightedUndirectedGraph.
package converters
