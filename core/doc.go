// Package core provides the in-memory Graph produced by the coaction engine:
// a set of actor vertices and weighted edges between them.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are actor ids (int64).
//   - Edges carry an integer Weight >= 1 (the accumulated co-occurrence count).
//   - Directed vs. undirected is fixed at construction (WithDirected).
//     Undirected graphs mirror adjacency so HasEdge(a,b) == HasEdge(b,a).
//   - Self-loops and parallel edges are always rejected.
//   - Freeze() seals the graph; every later mutation returns ErrFrozen.
//     The graph builder freezes what it returns, so consumers can share a
//     Graph across goroutines without copying.
//
// Determinism:
//
//	Vertices() and NeighborIDs() are sorted ascending.
//	Edges() preserves insertion order; the builder inserts in a documented,
//	deterministic order.
//
// Core Methods:
//
//	// Construction (before Freeze)
//	AddVertex(id int64) error                    // O(1)
//	AddEdge(from, to int64, weight int64) error  // O(1)
//	Freeze()                                     // O(1)
//
//	// Query
//	HasVertex(id) bool                           // O(1)
//	HasEdge(from, to) bool                       // O(1)
//	Weight(from, to) (int64, bool)               // O(1)
//	Vertices() []int64                           // O(V log V)
//	Edges() []Edge                               // O(E)
//	NeighborIDs(id) ([]int64, error)             // O(d log d)
//	Degree(id) (in, out int, err error)          // O(1)
//	VertexCount(), EdgeCount()                   // O(1)
//	Stats() (Stats, error)                       // O(E)
//
//	// Copy
//	Clone() *Graph                               // O(V+E), unfrozen copy
//
// Errors:
//
//	ErrVertexNotFound      - missing vertex.
//	ErrBadWeight           - weight < 1.
//	ErrLoopNotAllowed      - from == to.
//	ErrMultiEdgeNotAllowed - the (from,to) slot is already taken (either
//	                         orientation in undirected graphs).
//	ErrFrozen              - mutation after Freeze.
package core
