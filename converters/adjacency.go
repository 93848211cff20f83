// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: core.Graph → dense adjacency matrix (gonum/mat).
// Determinism:
//   - Row/column i corresponds to the i-th vertex in ascending actor order.
//   - Undirected graphs produce a symmetric matrix.
// Complexity: O(V^2) memory, O(V+E) writes.

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coactgraph/core"
)

// ErrEmptyGraph indicates a graph with no vertices; gonum cannot hold a 0x0 matrix.
var ErrEmptyGraph = errors.New("converters: empty graph")

// ToAdjacency returns the weighted adjacency matrix of g together with the
// actor IDs labelling its rows and columns.
func ToAdjacency(g *core.Graph) (*mat.Dense, []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, nil, ErrEmptyGraph
	}

	pos := make(map[int64]int, n)
	for i, id := range ids {
		pos[id] = i
	}

	a := mat.NewDense(n, n, nil)
	directed := g.Directed()
	for _, e := range g.Edges() {
		i, ok := pos[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("ToAdjacency: vertex %d: %w", e.From, core.ErrVertexNotFound)
		}
		j, ok := pos[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("ToAdjacency: vertex %d: %w", e.To, core.ErrVertexNotFound)
		}
		a.Set(i, j, float64(e.Weight))
		if !directed {
			a.Set(j, i, float64(e.Weight))
		}
	}

	return a, ids, nil
}
