package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arprax/algos/graphs"
)

// TestTopologicalSort_OrdersEveryEdge checks the defining property on
// a diamond DAG.
func TestTopologicalSort_OrdersEveryEdge(t *testing.T) {
	g := graphs.NewDigraph(6)
	edges := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {0, 5}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	order, err := graphs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.V())

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %d->%d must point forward", e[0], e[1])
	}
}

// TestTopologicalSort_DetectsCycle returns ErrCycle instead of a bogus
// order.
func TestTopologicalSort_DetectsCycle(t *testing.T) {
	g := graphs.NewDigraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	_, err := graphs.TopologicalSort(g)
	assert.ErrorIs(t, err, graphs.ErrCycle)
}

// TestTopologicalSort_SelfLoopIsCycle treats v->v as the smallest
// cycle.
func TestTopologicalSort_SelfLoopIsCycle(t *testing.T) {
	g := graphs.NewDigraph(2)
	require.NoError(t, g.AddEdge(0, 0))

	_, err := graphs.TopologicalSort(g)
	assert.ErrorIs(t, err, graphs.ErrCycle)
}

// TestTopologicalSort_RequiresDigraph rejects undirected input.
func TestTopologicalSort_RequiresDigraph(t *testing.T) {
	_, err := graphs.TopologicalSort(graphs.NewGraph(3))
	assert.ErrorIs(t, err, graphs.ErrNotDirected)

	_, err = graphs.TopologicalSort(nil)
	assert.ErrorIs(t, err, graphs.ErrNilGraph)
}

// TestTopologicalSort_EdgelessGraph yields all vertices.
func TestTopologicalSort_EdgelessGraph(t *testing.T) {
	order, err := graphs.TopologicalSort(graphs.NewDigraph(4))

	require.NoError(t, err)
	assert.Len(t, order, 4)
}
