package clique

import (
	"context"
	"sort"
	"time"

	"github.com/mallaplan/planner/internal/conflict"
)

// exhaustiveCompletion enumerates up to cfg.ExhaustiveBudget extensions of
// the best partial solution built so far by backtracking over order:
// at each position, branch into "include" (if compatible) and "skip",
// depth-first, recording every schedule reached. This trades the greedy
// pass's single-pass bound for exploring more of the combination space when
// the greedy seeds alone produced too few distinct schedules
// (spec.md §4.7's diversity threshold K_MIN).
//
// Cancellation is checked every cfg.CancelEvery expansions. partial is true
// only when cancellation or the soft deadline stopped the walk; running out
// of cfg.ExhaustiveBudget is the normal bound and does not set it.
func exhaustiveCompletion(ctx context.Context, m *conflict.Matrix, weight []int, order []int, cfg Config, deadline time.Time, seen map[string]bool) (found []Candidate, partial bool) {
	iterations := 0

	var chosen []int
	courses := make(map[string]bool)
	total := 0

	var walk func(pos int) bool // returns false to abort (cancelled/budget spent)
	walk = func(pos int) bool {
		iterations++
		if iterations >= cfg.ExhaustiveBudget {
			return false
		}
		if iterations%cfg.CancelEvery == 0 && cancelled(ctx, deadline) {
			partial = true
			return false
		}

		if len(chosen) > 0 {
			sorted := append([]int(nil), chosen...)
			sort.Ints(sorted)
			cand := Candidate{SectionIndices: sorted, TotalScore: total}
			sig := cand.signature()
			if !seen[sig] {
				seen[sig] = true
				found = append(found, cand)
			}
		}

		if pos >= len(order) || len(chosen) >= cfg.MaxCourses {
			return true
		}

		idx := order[pos]
		course := m.Sections[idx].NameKey

		// Branch 1: include idx, if compatible and its course is unused.
		if !courses[course] && !conflictsWithAny(m, idx, chosen) {
			chosen = append(chosen, idx)
			courses[course] = true
			total += weight[idx]

			if !walk(pos + 1) {
				return false
			}

			total -= weight[idx]
			delete(courses, course)
			chosen = chosen[:len(chosen)-1]
		}

		// Branch 2: skip idx.
		return walk(pos + 1)
	}

	walk(0)

	return found, partial
}
