package curriculum

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mallaplan/planner/internal/dagsort"
	"github.com/mallaplan/planner/internal/graphcore"
	"github.com/mallaplan/planner/internal/reach"
	"github.com/mallaplan/planner/mastermap"
)

// Assemble builds a Catalog from m: resolves each skeleton's
// PrerequisiteIDs (malla_ids) to name keys via m.ByMallaID, drops
// references that do not resolve (recorded as a DanglingPrerequisite
// Warning, not an error), and rejects the whole input with
// ErrCyclicCurriculum if the resulting graph has a cycle.
//
// Complexity: O(V+E) to build the graph and run cycle detection, plus
// O(V·(V+E)) to compute each course's OutDegree via reach.UnlockCount.
func Assemble(m *mastermap.MasterMap) (*Catalog, []Warning, error) {
	skeletons := m.Skeletons()
	sort.Slice(skeletons, func(i, j int) bool { return skeletons[i].NameKey < skeletons[j].NameKey })

	g := graphcore.NewGraph(graphcore.WithDirected(true))
	for _, s := range skeletons {
		if err := g.AddVertex(s.NameKey); err != nil {
			return nil, nil, fmt.Errorf("curriculum: adding vertex %q: %w", s.NameKey, err)
		}
	}

	var warnings []Warning
	prereqKeys := make(map[string][]string, len(skeletons))
	for _, s := range skeletons {
		for _, id := range s.PrerequisiteIDs {
			prereq, ok := m.ByMallaID(id)
			if !ok {
				warnings = append(warnings, Warning{
					Kind:    "DanglingPrerequisite",
					Message: fmt.Sprintf("course %q references unknown prerequisite id %d; edge dropped", s.NameKey, id),
				})
				continue
			}
			if _, err := g.AddEdge(prereq.NameKey, s.NameKey); err != nil {
				// AddEdge fails only on ErrDuplicateEdge here (vertices were
				// just added above), i.e. a duplicate prerequisite id within
				// the same row, which is harmless to skip.
				continue
			}
			prereqKeys[s.NameKey] = append(prereqKeys[s.NameKey], prereq.NameKey)
		}
	}

	if hasCycle, cycle, err := dagsort.DetectCycle(g); err != nil {
		return nil, nil, fmt.Errorf("curriculum: cycle check: %w", err)
	} else if hasCycle {
		return nil, nil, fmt.Errorf("%w: %s", ErrCyclicCurriculum, strings.Join(cycle, " -> "))
	}

	catalog := &Catalog{
		courses: make(map[string]*Course, len(skeletons)),
		order:   make([]string, 0, len(skeletons)),
		graph:   g,
	}
	for _, s := range skeletons {
		keys := append([]string(nil), prereqKeys[s.NameKey]...)
		sort.Strings(keys)

		outDegree, err := reach.UnlockCount(g, s.NameKey)
		if err != nil {
			return nil, nil, fmt.Errorf("curriculum: computing out_degree for %q: %w", s.NameKey, err)
		}

		catalog.courses[s.NameKey] = &Course{
			NameKey:              s.NameKey,
			Name:                 s.Name,
			MallaID:              s.MallaID,
			Semester:             s.Semester,
			CodeOffering:         s.CodeOffering,
			CodeDifficulty:       s.CodeDifficulty,
			Difficulty:           s.Difficulty,
			IsElective:           s.IsElective,
			PrerequisiteNameKeys: keys,
			OutDegree:            outDegree,
		}
		catalog.order = append(catalog.order, s.NameKey)
	}

	return catalog, warnings, nil
}
