package dagsort

import (
	"fmt"

	"github.com/mallaplan/planner/internal/graphcore"
)

// DetectCycle reports whether g contains a cycle. If it does, the second
// return value is one example cycle as a closed chain of vertex IDs
// (first == last), suitable for reporting in an error message — curriculum
// only needs to show the caller *a* cycle, not enumerate every one.
//
// Complexity: O(V+E), the DFS stops at the first back-edge found.
func DetectCycle(g *graphcore.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	var path []string

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		cycle, err := dfsVisit(g, v, "", state, &path)
		if err != nil {
			return false, nil, fmt.Errorf("dagsort: DetectCycle: %w", err)
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}
	return false, nil, nil
}

// dfsVisit explores from id, tracking parent to skip trivial back-edges. It
// returns the first cycle it finds as a closed vertex chain, or nil if the
// subtree rooted at id is cycle-free.
func dfsVisit(g *graphcore.Graph, id, parent string, state map[string]int, path *[]string) ([]string, error) {
	state[id] = Gray
	*path = append(*path, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	for _, e := range edges {
		if shouldSkipEdge(e, id, parent, g) {
			continue
		}
		nbr := getNeighborID(e, id, g)

		switch state[nbr] {
		case White:
			cycle, err := dfsVisit(g, nbr, id, state, path)
			if err != nil {
				return nil, err
			}
			if cycle != nil {
				return cycle, nil
			}
		case Gray:
			idx := indexOf(*path, nbr)
			segLen := len(*path) - idx
			// Self-loop: only a cycle if loops are actually allowed.
			if segLen < 2 && !g.Looped() {
				continue
			}
			// Trivial 2-cycle (u,v,u) is not a real cycle in an undirected graph.
			if segLen == 2 && !g.Directed() {
				continue
			}
			cycle := append([]string(nil), (*path)[idx:]...)
			cycle = append(cycle, nbr)
			return cycle, nil
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black
	return nil, nil
}

// shouldSkipEdge reports whether e should be ignored while traversing from
// id: a disallowed self-loop, a trivial backtrack to parent on an
// undirected graph, or a directed edge not originating at id.
func shouldSkipEdge(e *graphcore.Edge, id, parent string, g *graphcore.Graph) bool {
	if e.From == e.To && !g.Looped() {
		return true
	}
	if !e.Directed && !g.Directed() && e.To == parent {
		return true
	}
	if e.Directed && e.From != id {
		return true
	}
	return false
}

// getNeighborID returns the vertex on the far side of e from id.
func getNeighborID(e *graphcore.Edge, id string, g *graphcore.Graph) string {
	if !g.Directed() && !e.Directed && e.To == id {
		return e.From
	}
	return e.To
}

// indexOf returns the first index of target in path, or -1 if absent.
func indexOf(path []string, target string) int {
	for i, v := range path {
		if v == target {
			return i
		}
	}
	return -1
}
