package dagsort

import (
	"errors"
	"fmt"

	"github.com/mallaplan/planner/internal/graphcore"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dagsort: failed to fetch neighbors")

// topoSorter holds the traversal state for one TopologicalSort call.
type topoSorter struct {
	graph *graphcore.Graph
	state map[string]int
	order []string
}

// TopologicalSort computes a linear ordering of g's vertices such that for
// every directed edge u→v, u appears before v. g must be directed.
//
// Complexity: O(V+E).
func TopologicalSort(g *graphcore.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dagsort: TopologicalSort requires a directed graph")
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}
	return sorter.order, nil
}

// visit performs a post-order DFS from id, returning ErrCycleDetected if a
// back-edge to a Gray vertex is found.
func (t *topoSorter) visit(id string) error {
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if !e.Directed || e.From != id {
			continue
		}
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)
	return nil
}
