package pert

import (
	"fmt"
	"sort"

	"github.com/mallaplan/planner/curriculum"
	"github.com/mallaplan/planner/internal/dagsort"
	"github.com/mallaplan/planner/internal/graphcore"
)

// Compute runs the forward and backward PERT passes over cat's prerequisite
// DAG and returns one Node per course, keyed by NameKey.
//
// Complexity: O(V+E) for the topological sort plus O(V+E) for each pass.
// Determinism: ties are broken by ascending NameKey throughout, matching
// curriculum.Catalog.Courses()'s iteration order.
func Compute(cat *curriculum.Catalog) (map[string]*Node, error) {
	g := cat.Graph()

	order, err := dagsort.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("pert: %w", err)
	}

	preds, succs, err := adjacency(g, order)
	if err != nil {
		return nil, err
	}

	earliest := make(map[string]int, len(order))
	for _, v := range order {
		max := -1
		ps := append([]string(nil), preds[v]...)
		sort.Strings(ps)
		for _, u := range ps {
			if earliest[u] > max {
				max = earliest[u]
			}
		}
		earliest[v] = max + 1
	}

	maxEarliest := 0
	for _, v := range order {
		if earliest[v] > maxEarliest {
			maxEarliest = earliest[v]
		}
	}

	latest := make(map[string]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		ss := append([]string(nil), succs[v]...)
		sort.Strings(ss)
		if len(ss) == 0 {
			latest[v] = earliest[v]
			continue
		}
		min := -1
		for _, w := range ss {
			if min == -1 || latest[w] < min {
				min = latest[w]
			}
		}
		latest[v] = min - 1
	}

	nodes := make(map[string]*Node, len(order))
	for _, v := range order {
		course, ok := cat.Course(v)
		outDegree := 0
		if ok {
			outDegree = course.OutDegree
		}
		slack := latest[v] - earliest[v]
		nodes[v] = &Node{
			NameKey:       v,
			EarliestStart: earliest[v],
			LatestStart:   latest[v],
			Slack:         slack,
			Critical:      slack == 0,
			OutDegree:     outDegree,
		}
	}

	return nodes, nil
}

// adjacency builds forward predecessor/successor adjacency lists for every
// vertex in order, from g's directed edges.
func adjacency(g *graphcore.Graph, order []string) (preds, succs map[string][]string, err error) {
	preds = make(map[string][]string, len(order))
	succs = make(map[string][]string, len(order))
	for _, v := range order {
		neighbors, nerr := g.Neighbors(v)
		if nerr != nil {
			return nil, nil, fmt.Errorf("pert: fetching neighbors of %q: %w", v, nerr)
		}
		for _, e := range neighbors {
			if !e.Directed || e.From != v {
				continue
			}
			succs[v] = append(succs[v], e.To)
			preds[e.To] = append(preds[e.To], v)
		}
	}
	return preds, succs, nil
}
