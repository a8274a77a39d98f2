// Package clique selects a bounded, diverse set of pairwise non-conflicting
// sections maximizing aggregated weight (C7): a weighted maximum-clique
// search over the complement of the conflict graph, traded for a hard
// wall-clock bound via multi-seed bounded greedy with bounded exhaustive
// completion (spec.md §4.7). The weighted-clique problem is NP-hard; this
// package verifies feasibility and monotonicity, never global optimality.
package clique

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mallaplan/planner/internal/conflict"
)

// ErrNoSections is returned when Select is called with zero sections.
var ErrNoSections = errors.New("clique: no sections to select from")

// Candidate is one pairwise non-conflicting schedule: a set of section
// indices (into the Matrix's Sections slice) and its aggregate weight.
type Candidate struct {
	SectionIndices []int
	TotalScore     int
}

// signature returns a deterministic string uniquely identifying the set of
// sections chosen, used for deduplication.
func (c Candidate) signature() string {
	ids := make([]string, len(c.SectionIndices))
	for i, x := range c.SectionIndices {
		ids[i] = strconv.Itoa(x)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// Select runs the bounded multi-seed greedy search and returns up to
// cfg.KTotal distinct Candidates sorted by TotalScore descending, then by
// signature ascending for tie-break. partial is true if the search was cut
// short by cancellation or the time budget.
//
// weight[i] is the precomputed section weight (priority score plus
// preferred-time bonus, spec.md §3/§4.7) for m.Sections[i]. order is
// determined once: weight descending, ties by NameKey then SectionLabel.
func Select(ctx context.Context, m *conflict.Matrix, weight []int, cfg Config) (candidates []Candidate, partial bool, err error) {
	n := m.Len()
	if n == 0 {
		return nil, false, ErrNoSections
	}
	if len(weight) != n {
		return nil, false, errors.New("clique: weight slice length must match section count")
	}

	order := sortedOrder(m, weight)

	deadline := time.Time{}
	if cfg.TimeBudget > 0 {
		deadline = time.Now().Add(cfg.TimeBudget)
	}

	seen := make(map[string]bool)
	var all []Candidate

	seeds := cfg.Seeds
	if seeds > n {
		seeds = n
	}
	for s := 0; s < seeds; s++ {
		if cancelled(ctx, deadline) {
			partial = true
			break
		}
		cand := greedyFrom(m, weight, order, order[s], cfg.MaxCourses)
		sig := cand.signature()
		if !seen[sig] {
			seen[sig] = true
			all = append(all, cand)
		}
	}

	if !partial && distinctCount(all) < cfg.KMin {
		extra, exPartial := exhaustiveCompletion(ctx, m, weight, order, cfg, deadline, seen)
		all = append(all, extra...)
		partial = partial || exPartial
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].TotalScore != all[j].TotalScore {
			return all[i].TotalScore > all[j].TotalScore
		}
		return all[i].signature() < all[j].signature()
	})

	if len(all) > cfg.KTotal {
		all = all[:cfg.KTotal]
	}

	return all, partial, nil
}

func distinctCount(cs []Candidate) int { return len(cs) }

// cancelled reports whether ctx is done or the soft deadline has passed.
func cancelled(ctx context.Context, deadline time.Time) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return !deadline.IsZero() && time.Now().After(deadline)
}

// sortedOrder returns section indices sorted by weight descending, ties
// broken by NameKey then SectionLabel ascending (spec.md §4.7).
func sortedOrder(m *conflict.Matrix, weight []int) []int {
	order := make([]int, m.Len())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if weight[a] != weight[b] {
			return weight[a] > weight[b]
		}
		sa, sb := m.Sections[a], m.Sections[b]
		if sa.NameKey != sb.NameKey {
			return sa.NameKey < sb.NameKey
		}
		return sa.SectionLabel < sb.SectionLabel
	})
	return order
}

// greedyFrom builds one schedule seeded at startIdx: startIdx is chosen
// unconditionally, then the remaining sections are scanned once in weight
// order, each added if it conflicts with nothing chosen yet and its course
// is not already represented.
func greedyFrom(m *conflict.Matrix, weight []int, order []int, startIdx int, maxCourses int) Candidate {
	chosen := []int{startIdx}
	courses := map[string]bool{m.Sections[startIdx].NameKey: true}
	total := weight[startIdx]

	for _, idx := range order {
		if len(chosen) >= maxCourses {
			break
		}
		if idx == startIdx {
			continue
		}
		if courses[m.Sections[idx].NameKey] {
			continue
		}
		if conflictsWithAny(m, idx, chosen) {
			continue
		}
		chosen = append(chosen, idx)
		courses[m.Sections[idx].NameKey] = true
		total += weight[idx]
	}

	sort.Ints(chosen)
	return Candidate{SectionIndices: chosen, TotalScore: total}
}

func conflictsWithAny(m *conflict.Matrix, idx int, chosen []int) bool {
	for _, c := range chosen {
		if m.Conflicts(idx, c) {
			return true
		}
	}
	return false
}
