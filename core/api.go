// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, freezing, Stats snapshot and Clone.
// Policy:
//   - No algorithms here; everything is O(1) or a single pass.

package core

import (
	"fmt"
	"math"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Freeze seals the graph. Freezing twice is a no-op.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Directed    bool
	VertexCount int
	EdgeCount   int
	// TotalWeight is the sum of all edge weights.
	TotalWeight int64
	// MinWeight and MaxWeight are zero for an edgeless graph.
	MinWeight int64
	MaxWeight int64
}

// Stats returns the graph order, size and weight range.
// Returns ErrWeightOverflow if the total weight does not fit in int64.
//
// Complexity: O(E).
func (g *Graph) Stats() (Stats, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := Stats{
		Directed:    g.directed,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for i, e := range g.edges {
		if s.TotalWeight > math.MaxInt64-e.Weight {
			return Stats{}, fmt.Errorf("edge %d->%d: %w", e.From, e.To, ErrWeightOverflow)
		}
		s.TotalWeight += e.Weight
		if i == 0 || e.Weight < s.MinWeight {
			s.MinWeight = e.Weight
		}
		if e.Weight > s.MaxWeight {
			s.MaxWeight = e.Weight
		}
	}

	return s, nil
}

// Clone returns a deep, unfrozen copy with the same directedness, vertices
// and edge order.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := NewGraph(WithDirected(g.directed))
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	c.edges = make([]Edge, len(g.edges))
	copy(c.edges, g.edges)
	for from, inner := range g.adjacency {
		cp := make(map[int64]int, len(inner))
		for to, pos := range inner {
			cp[to] = pos
		}
		c.adjacency[from] = cp
	}
	for id, d := range g.inDegree {
		c.inDegree[id] = d
	}

	return c
}
