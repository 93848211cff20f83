package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coactgraph/builder"
	"github.com/katalvlaran/coactgraph/converters"
	"github.com/katalvlaran/coactgraph/core"
)

func TestToAdjacency_Directed(t *testing.T) {
	g, err := builder.Build(counts, 1)
	require.NoError(t, err)

	a, ids, err := converters.ToAdjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	want := mat.NewDense(3, 3, []float64{
		0, 5, 0,
		6, 0, 7,
		0, 0, 0,
	})
	assert.True(t, mat.Equal(want, a))
}

func TestToAdjacency_UndirectedIsSymmetric(t *testing.T) {
	g, err := builder.Build(counts, 1, builder.WithDirected(false))
	require.NoError(t, err)

	a, _, err := converters.ToAdjacency(g)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, a.T()))
	assert.Equal(t, 11.0, a.At(0, 1))
	assert.Equal(t, 7.0, a.At(2, 1))
}

func TestToAdjacency_Errors(t *testing.T) {
	_, _, err := converters.ToAdjacency(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	_, _, err = converters.ToAdjacency(core.NewGraph())
	require.ErrorIs(t, err, converters.ErrEmptyGraph)
}
