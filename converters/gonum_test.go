package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/coactgraph/builder"
	"github.com/katalvlaran/coactgraph/converters"
	"github.com/katalvlaran/coactgraph/pairs"
)

var counts = pairs.Counts{{A: 1, B: 2}: 5, {A: 2, B: 1}: 6, {A: 2, B: 3}: 7, {A: 3, B: 3}: 9}

func TestToGonum_Directed(t *testing.T) {
	g, err := builder.Build(counts, 1)
	require.NoError(t, err)

	wg, err := converters.ToGonum(g)
	require.NoError(t, err)
	dg, ok := wg.(*simple.WeightedDirectedGraph)
	require.True(t, ok)

	assert.Equal(t, 3, dg.Nodes().Len())
	assert.Equal(t, 3, dg.Edges().Len())
	w, ok := dg.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	w, ok = dg.Weight(2, 1)
	require.True(t, ok)
	assert.Equal(t, 6.0, w)
	assert.False(t, dg.HasEdgeFromTo(3, 2))
}

func TestToGonum_Undirected(t *testing.T) {
	g, err := builder.Build(counts, 1, builder.WithDirected(false))
	require.NoError(t, err)

	wg, err := converters.ToGonum(g)
	require.NoError(t, err)
	ug, ok := wg.(*simple.WeightedUndirectedGraph)
	require.True(t, ok)
	assert.Equal(t, 2, ug.Edges().Len())
	w, ok := ug.Weight(2, 1)
	require.True(t, ok)
	assert.Equal(t, 11.0, w)
}

func TestToGonumUndirected_SumsOpposingArcs(t *testing.T) {
	g, err := builder.Build(counts, 1)
	require.NoError(t, err)

	ug, err := converters.ToGonumUndirected(g)
	require.NoError(t, err)
	w, ok := ug.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 11.0, w)
	w, ok = ug.Weight(3, 2)
	require.True(t, ok)
	assert.Equal(t, 7.0, w)
}

func TestToGonum_Nil(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.ToGonumDirected(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.ToGonumUndirected(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}
