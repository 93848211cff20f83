// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for graph tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/coactgraph/core"
	"github.com/stretchr/testify/require"
)

// Common actor ids used across core tests.
const (
	ActorA int64 = 1
	ActorB int64 = 2
	ActorC int64 = 3
	ActorD int64 = 4
)

// Common weights used across core tests.
const (
	Weight1 int64 = 1
	Weight5 int64 = 5
	Weight7 int64 = 7
)

// mustTriangle builds A→B(5), B→C(1), A→C(7) with the given directedness.
func mustTriangle(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	require.NoError(t, g.AddEdge(ActorA, ActorB, Weight5))
	require.NoError(t, g.AddEdge(ActorB, ActorC, Weight1))
	require.NoError(t, g.AddEdge(ActorA, ActorC, Weight7))
	return g
}
