package planner

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/mallaplan/planner/curriculum"
	"github.com/mallaplan/planner/filter"
	"github.com/mallaplan/planner/internal/clique"
	"github.com/mallaplan/planner/internal/conflict"
	"github.com/mallaplan/planner/mastermap"
	"github.com/mallaplan/planner/pert"
	"github.com/mallaplan/planner/schedule"
	"github.com/mallaplan/planner/section"
)

// Plan runs the full pipeline — rows -> C2 -> C3 -> C4 -> C5 -> C6 -> C7 ->
// C8 -> C9 -> response (spec.md §2) — and is the planner's only entry
// point. It is a synchronous, CPU-bound, pure function of (rows, request):
// no suspension points and no shared mutable state. The Master Map is built
// afresh from rows on every call; Plan does not consult a mastermap.Cache.
func Plan(ctx context.Context, rows Rows, req Request) (*Response, error) {
	m, err := mastermap.Build(rows.Difficulty, rows.Offering, rows.Curriculum)
	if err != nil {
		return nil, &Error{Kind: ErrorKindDuplicateName, Message: err.Error()}
	}

	cat, curriculumWarnings, err := curriculum.Assemble(m)
	if err != nil {
		return nil, &Error{Kind: ErrorKindCyclicCurriculum, Message: err.Error()}
	}

	nodes, err := pert.Compute(cat)
	if err != nil {
		return nil, &Error{Kind: ErrorKindInputParse, Message: err.Error()}
	}

	sections, sectionWarnings, err := section.Build(cat, rows.Offering)
	if err != nil {
		return nil, &Error{Kind: ErrorKindInputParse, Message: err.Error()}
	}

	var warnings []string
	for _, w := range curriculumWarnings {
		warnings = append(warnings, w.Kind+": "+w.Message)
	}
	for _, w := range sectionWarnings {
		warnings = append(warnings, w.Kind+": "+w.Message)
	}

	approved, unresolvedApproved := resolveKeys(cat, req.ApprovedCourseKeys)
	prioritized, unresolvedPriority := resolveKeys(cat, req.PriorityCourseKeys)
	for _, ref := range append(unresolvedApproved, unresolvedPriority...) {
		warnings = append(warnings, fmt.Sprintf("UnresolvedCourseReference: %q did not match any course", ref))
	}

	viable := filterViable(sections, approved)
	remainingUnapproved := len(viable) > 0

	if !remainingUnapproved {
		msg := "no unapproved courses remain"
		if len(sections) == 0 {
			msg = "empty offering: no sections to schedule"
		}
		return &Response{
			DocumentsRead: documentsRead(rows),
			ScheduleCount: 0,
			Schedules:     nil,
			Diagnostics: Diagnostics{
				Warnings: append(warnings, msg),
			},
			AverageDifficulty: averageDifficulty(cat),
		}, nil
	}

	preferred := parsePreferredTimes(req.PreferredTimes)
	maxSemester := maxSemesterOf(cat.Courses())

	weights := make([]int, len(viable))
	for i, s := range viable {
		course, _ := cat.Course(s.NameKey)
		score := priorityScore(course, nodes[s.NameKey], maxSemester, prioritized[s.NameKey])
		if withinPreferred(s, preferred) {
			score += preferredTimeBonus
		}
		weights[i] = score
	}

	matrix := conflict.Build(viable)
	candidates, partial, err := clique.Select(ctx, matrix, weights, clique.DefaultConfig())
	if err != nil {
		return nil, &Error{Kind: ErrorKindInputParse, Message: err.Error()}
	}

	ranked := make([]schedule.Schedule, 0, len(candidates))
	for _, cand := range candidates {
		var entries []schedule.Entry
		for _, idx := range cand.SectionIndices {
			s := viable[idx]
			course, _ := cat.Course(s.NameKey)
			priority := priorityScore(course, nodes[s.NameKey], maxSemester, prioritized[s.NameKey])
			entries = append(entries, schedule.Entry{Section: s, Priority: priority})
		}
		ranked = append(ranked, schedule.Schedule{Entries: entries, TotalScore: cand.TotalScore})
	}

	filtered, applied := filter.Apply(ranked, req.Filters)

	livenessFallback := false
	if len(applied) == 0 && len(filtered) == 0 && len(ranked) > 0 {
		// Structurally unreachable (no filters is an identity pass-through),
		// but spec.md §4.8's liveness law is a hard contract: guard it
		// explicitly rather than trust the identity property silently.
		filtered = ranked
		livenessFallback = true
		warnings = append(warnings, "LivenessViolation: filter pipeline unexpectedly emptied an unfiltered ranking")
	} else if len(applied) > 0 && len(filtered) == 0 {
		warnings = append(warnings, "filters removed all schedules — consider relaxing")
	}

	if len(filtered) > NMax {
		filtered = filtered[:NMax]
	}

	return &Response{
		DocumentsRead: documentsRead(rows),
		ScheduleCount: len(filtered),
		Schedules:     filtered,
		Diagnostics: Diagnostics{
			LivenessFallback: livenessFallback,
			FiltersApplied:   applied,
			PartialResult:    partial,
			Warnings:         warnings,
		},
		AverageDifficulty: averageDifficulty(cat),
	}, nil
}

func documentsRead(rows Rows) int {
	return len(rows.Difficulty) + len(rows.Offering) + len(rows.Curriculum)
}

// averageDifficulty summarizes the catalog's known approval percentages
// (SPEC_FULL.md §3.1). gonum/stat.Mean over an unweighted sample is a
// one-line computation, but it is the pack's numerics library for exactly
// this kind of descriptive statistic.
func averageDifficulty(cat *curriculum.Catalog) float64 {
	var values []float64
	for _, c := range cat.Courses() {
		if c.Difficulty != nil {
			values = append(values, *c.Difficulty)
		}
	}
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
