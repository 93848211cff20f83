// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge queries.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

// AddEdge inserts from→to with the given weight, adding missing endpoints.
//
// Steps:
//  1. Reject frozen graphs, loops and weights < 1.
//  2. Reject an existing (from,to) slot; in undirected graphs (to,from) too.
//  3. Append the edge, link adjacency and mirror it when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, weight int64) error {
	if from == to {
		return ErrLoopNotAllowed
	}
	if weight < 1 {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	if _, taken := g.adjacency[from][to]; taken {
		return ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	pos := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.link(from, to, pos)
	if g.directed {
		g.inDegree[to]++
	} else {
		g.link(to, from, pos)
	}

	return nil
}

func (g *Graph) link(from, to int64, pos int) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[int64]int)
		g.adjacency[from] = inner
	}
	inner[to] = pos
}

// HasEdge reports whether an edge from→to exists. Undirected graphs answer
// for both orientations.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to, if the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to int64) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return g.edges[pos].Weight, true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|. A mirrored undirected edge counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
