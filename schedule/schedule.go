// Package schedule defines the planner's output shape: a ranked,
// pairwise-non-conflicting set of sections (spec.md §3's Schedule).
package schedule

import "github.com/mallaplan/planner/section"

// Entry pairs a chosen Section with the priority score it contributed.
type Entry struct {
	Section  *section.Section
	Priority int
}

// Schedule is one candidate set of sections plus its aggregate score.
//
// Invariant: no two Entries' Sections have overlapping meetings; no two
// Entries' Sections belong to the same course.
type Schedule struct {
	Entries    []Entry
	TotalScore int
}
