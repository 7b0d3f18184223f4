package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/graph"
)

func TestNewMatrix_Validation(t *testing.T) {
	t.Parallel()

	_, err := graph.NewMatrix[string, int](nil)
	require.ErrorIs(t, err, graph.ErrEmptyNodeSet)

	_, err = graph.NewMatrix[string, int]([]string{"A", "B", "A"})
	require.ErrorIs(t, err, graph.ErrDuplicateNode)
}

func TestMatrix_SetWeightUnset(t *testing.T) {
	t.Parallel()

	input := []string{"C", "A", "B"}
	m, err := graph.NewMatrix[string, int](input, graph.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, input, "caller slice must not be reordered")
	assert.Equal(t, []string{"A", "B", "C"}, m.Nodes())
	assert.Equal(t, 3, m.Len())

	require.NoError(t, m.Set("A", "B", 0))
	w, ok := m.Weight("A", "B")
	require.True(t, ok, "zero weight is still an edge")
	assert.Zero(t, w)

	_, ok = m.Weight("B", "A")
	assert.False(t, ok)
	_, ok = m.Weight("A", "missing")
	assert.False(t, ok)

	require.NoError(t, m.Unset("A", "B"))
	require.ErrorIs(t, m.Unset("A", "B"), graph.ErrEdgeNotFound)
	require.ErrorIs(t, m.Set("A", "Q", 1), graph.ErrNodeNotFound)
	require.ErrorIs(t, m.Set("A", "A", 1), graph.ErrLoopNotAllowed)
}

func TestMatrix_UndirectedEdgesRowMajor(t *testing.T) {
	t.Parallel()

	m, err := graph.NewMatrix[int, float64]([]int{3, 1, 2}, graph.WithLoops())
	require.NoError(t, err)
	require.NoError(t, m.Set(3, 1, 2.5))
	require.NoError(t, m.Set(2, 2, -1))

	assert.False(t, m.Directed())
	assert.Equal(t, []graph.Edge[int, float64]{
		{From: 1, To: 3, Weight: 2.5},
		{From: 2, To: 2, Weight: -1},
		{From: 3, To: 1, Weight: 2.5},
	}, m.Edges())
}
