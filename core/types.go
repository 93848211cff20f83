// SPDX-License-Identifier: MIT
//
// Package core defines Graph and Edge, construction options, sentinel errors
// and the NewGraph constructor.
//
// All methods take mu (sync.RWMutex): writes during construction, reads
// afterwards. A frozen Graph is only ever read.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight below 1.
	ErrBadWeight = errors.New("core: edge weight must be >= 1")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrFrozen indicates a mutation of a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrWeightOverflow indicates that the summed edge weight exceeds int64.
	ErrWeightOverflow = errors.New("core: total weight overflow")
)

// Edge is one weighted connection between two actors.
//
// In directed graphs From is the earlier actor of the co-occurrences that
// produced the edge and To the later one.
type Edge struct {
	From   int64
	To     int64
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an actor graph with weighted edges.
type Graph struct {
	mu sync.RWMutex

	directed bool
	frozen   bool

	vertices map[int64]struct{}
	edges    []Edge

	// adjacency[from][to] = index into edges; mirrored when !directed.
	adjacency map[int64]map[int64]int
	inDegree  map[int64]int
}

// NewGraph creates an empty Graph. By default the graph is directed, which
// matches the temporal (earlier, later) pair order.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		vertices:  make(map[int64]struct{}),
		adjacency: make(map[int64]map[int64]int),
		inDegree:  make(map[int64]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
