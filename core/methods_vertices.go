// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-centric queries.
// Determinism:
//   - Vertices() and NeighborIDs() return ids sorted ascending.

package core

import "sort"

// AddVertex inserts id. Adding an existing vertex is a no-op.
// Returns ErrFrozen after Freeze.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id int64) {
	g.vertices[id] = struct{}{}
}

// HasVertex reports whether id is a vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the ids reachable from id by one edge, ascending.
// In undirected graphs this is every adjacent actor.
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	inner := g.adjacency[id]
	out := make([]int64, 0, len(inner))
	for to := range inner {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns the in- and out-degree of id. In undirected graphs both
// values equal the number of incident edges.
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(1).
func (g *Graph) Degree(id int64) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	out = len(g.adjacency[id])
	if !g.directed {
		return out, out, nil
	}

	return g.inDegree[id], out, nil
}
