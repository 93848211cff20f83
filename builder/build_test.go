package builder_test

import (
	"testing"

	"github.com/katalvlaran/coactgraph/builder"
	"github.com/katalvlaran/coactgraph/core"
	"github.com/katalvlaran/coactgraph/pairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SelfLoopAndThreshold(t *testing.T) {
	counts := pairs.Counts{{A: 1, B: 2}: 5, {A: 1, B: 1}: 10, {A: 2, B: 3}: 1}

	g, sum, err := builder.BuildWithSummary(counts, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 5}}, g.Edges())
	assert.Equal(t, []int64{1, 2}, g.Vertices())
	assert.True(t, g.Frozen())
	assert.True(t, g.Directed())
	assert.Equal(t, builder.Summary{Pairs: 3, DroppedLoops: 1, DroppedBelow: 1, Kept: 1}, sum)
}

func TestBuild_ThresholdIsInclusive(t *testing.T) {
	counts := pairs.Counts{{A: 1, B: 2}: 4, {A: 2, B: 3}: 5, {A: 3, B: 4}: 6}
	g, err := builder.Build(counts, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 3, Weight: 5}, {From: 3, To: 4, Weight: 6}}, g.Edges())
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil, 1)
	require.ErrorIs(t, err, builder.ErrNilCounts)

	_, err = builder.Build(pairs.Counts{}, -1)
	require.ErrorIs(t, err, builder.ErrNegativeThreshold)
}

func TestBuild_EmptyAndZeroCounts(t *testing.T) {
	g, err := builder.Build(pairs.Counts{}, 0)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())

	g, sum, err := builder.BuildWithSummary(pairs.Counts{{A: 1, B: 2}: 0, {A: 2, B: 3}: 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, sum.DroppedBelow)
}

func TestBuild_Idempotent(t *testing.T) {
	counts := pairs.Counts{}
	for a := int64(0); a < 20; a++ {
		for b := int64(0); b < 20; b++ {
			counts[pairs.Pair{A: a, B: b}] = (a*7 + b*3) % 9
		}
	}
	for _, order := range []builder.EdgeOrder{builder.ByPair, builder.ByWeightDesc} {
		g1, err := builder.Build(counts, 4, builder.WithEdgeOrder(order))
		require.NoError(t, err)
		g2, err := builder.Build(counts, 4, builder.WithEdgeOrder(order))
		require.NoError(t, err)
		assert.Equal(t, g1.Vertices(), g2.Vertices())
		assert.Equal(t, g1.Edges(), g2.Edges())
	}
	assert.Len(t, counts, 400, "input must not be modified")
}

func TestBuild_EdgeOrder(t *testing.T) {
	counts := pairs.Counts{{A: 3, B: 1}: 2, {A: 1, B: 2}: 2, {A: 2, B: 3}: 9}

	g, err := builder.Build(counts, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 9},
		{From: 3, To: 1, Weight: 2},
	}, g.Edges())

	g, err = builder.Build(counts, 1, builder.WithEdgeOrder(builder.ByWeightDesc))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 2, To: 3, Weight: 9},
		{From: 1, To: 2, Weight: 2},
		{From: 3, To: 1, Weight: 2},
	}, g.Edges())
}

func TestBuild_UndirectedFoldsBeforeThreshold(t *testing.T) {
	counts := pairs.Counts{{A: 1, B: 2}: 3, {A: 2, B: 1}: 2, {A: 2, B: 3}: 4}

	directed, err := builder.Build(counts, 5)
	require.NoError(t, err)
	assert.Zero(t, directed.EdgeCount())

	undirected, err := builder.Build(counts, 5, builder.WithDirected(false))
	require.NoError(t, err)
	assert.False(t, undirected.Directed())
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 5}}, undirected.Edges())
	assert.True(t, undirected.HasEdge(2, 1))
}

func TestWithEdgeOrder_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithEdgeOrder(builder.EdgeOrder(42)) })
}
