// Package reach computes how many courses a given course transitively
// unblocks in a prerequisite graphcore.Graph, via a plain breadth-first
// search. The teacher's general bfs package once offered cancellation
// hooks, neighbor filtering, and depth limiting; UnlockCount never needed
// any of that, so this keeps only the walk it actually does.
package reach

import (
	"errors"
	"fmt"

	"github.com/mallaplan/planner/internal/graphcore"
)

// ErrGraphNil is returned when a nil *graphcore.Graph is passed to
// UnlockCount.
var ErrGraphNil = errors.New("reach: graph is nil")

// ErrStartVertexNotFound is returned when id does not exist in the graph.
var ErrStartVertexNotFound = errors.New("reach: start vertex not found")

// UnlockCount returns the number of vertices reachable from id by following
// outgoing edges, not counting id itself. Over a prerequisite DAG where an
// edge prereq→course means "prereq unblocks course", this is the size of
// the transitive closure of courses that completing id eventually unblocks
// — the out_degree used for the PERT unlock bonus.
//
// Complexity: O(V+E) for a single call (BFS visits each reachable vertex
// and edge once). Callers computing this for every vertex in a DAG with V
// vertices and E edges pay O(V·(V+E)) total, acceptable for curricula of a
// few hundred courses.
func UnlockCount(g *graphcore.Graph, id string) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(id) {
		return 0, ErrStartVertexNotFound
	}

	visited := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighbors, err := g.NeighborIDs(cur)
		if err != nil {
			return 0, fmt.Errorf("reach: fetching neighbors of %q: %w", cur, err)
		}
		for _, nbr := range neighbors {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	// visited includes id itself; exclude it from the count.
	return len(visited) - 1, nil
}
