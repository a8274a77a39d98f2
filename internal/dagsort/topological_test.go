package dagsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallaplan/planner/internal/dagsort"
	"github.com/mallaplan/planner/internal/graphcore"
)

// TestTopologicalSort_OrdersPrerequisitesBeforeDependents verifies every
// edge's From precedes its To in the returned order.
func TestTopologicalSort_OrdersPrerequisitesBeforeDependents(t *testing.T) {
	g := graphcore.NewGraph(graphcore.WithDirected(true))
	requireEdge(t, g, "calc1", "calc2")
	requireEdge(t, g, "calc1", "linear-algebra")
	requireEdge(t, g, "linear-algebra", "calc2")

	order, err := dagsort.TopologicalSort(g)
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos["calc1"], pos["calc2"])
	assert.Less(t, pos["calc1"], pos["linear-algebra"])
	assert.Less(t, pos["linear-algebra"], pos["calc2"])
}

// TestTopologicalSort_CyclicGraphErrors verifies a cycle is rejected.
func TestTopologicalSort_CyclicGraphErrors(t *testing.T) {
	g := graphcore.NewGraph(graphcore.WithDirected(true))
	requireEdge(t, g, "calc1", "calc2")
	requireEdge(t, g, "calc2", "calc1")

	_, err := dagsort.TopologicalSort(g)
	assert.ErrorIs(t, err, dagsort.ErrCycleDetected)
}

// TestTopologicalSort_UndirectedGraphRejected verifies TopologicalSort
// refuses an undirected graph outright.
func TestTopologicalSort_UndirectedGraphRejected(t *testing.T) {
	g := graphcore.NewGraph()
	_, err := dagsort.TopologicalSort(g)
	assert.Error(t, err)
}

// TestTopologicalSort_NilGraph surfaces ErrGraphNil.
func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := dagsort.TopologicalSort(nil)
	assert.ErrorIs(t, err, dagsort.ErrGraphNil)
}
