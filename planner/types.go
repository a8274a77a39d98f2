// Package planner is the planner's single entry point (C9, the Response
// Builder, plus the orchestration spec.md §2 calls "the planner"): it wires
// C1 through C8 into one synchronous, deterministic Plan call from raw rows
// and a Request to a Response.
package planner

import (
	"github.com/mallaplan/planner/filter"
	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/schedule"
)

// NMax is the maximum number of schedules returned in a Response.
const NMax = 10

// Rows bundles the three row streams the planner consumes from its
// spreadsheet-parsing collaborator (spec.md §6.1).
type Rows struct {
	Difficulty []rowmodel.DifficultyRow
	Offering   []rowmodel.OfferingRow
	Curriculum []rowmodel.CurriculumRow
}

// Request is the planner's entry point payload (spec.md §6.2).
type Request struct {
	ApprovedCourseKeys []string
	PriorityCourseKeys []string
	PreferredTimes     []string // e.g. "LU 08:00-10:00"
	MallaID            string
	Filters            filter.Filters
}

// Diagnostics explains any fallback or partial behavior (spec.md §6.3).
type Diagnostics struct {
	LivenessFallback bool
	FiltersApplied   []string
	PartialResult    bool
	Warnings         []string
}

// Response is the planner's output (spec.md §6.3), enriched with an
// average-difficulty summary statistic (SPEC_FULL.md §3.1).
type Response struct {
	DocumentsRead     int
	ScheduleCount     int
	Schedules         []schedule.Schedule
	Diagnostics       Diagnostics
	AverageDifficulty float64
}

// ErrorKind enumerates the fatal and user-visible error kinds of spec.md §7.
type ErrorKind string

const (
	ErrorKindInputParse       ErrorKind = "InputParse"
	ErrorKindDuplicateName    ErrorKind = "DuplicateName"
	ErrorKindCyclicCurriculum ErrorKind = "CyclicCurriculum"
)

// Error is the planner's error envelope (spec.md §6.4). Only fatal
// conditions (InputParse, DuplicateName, CyclicCurriculum) are returned as
// an *Error from Plan; everything else (dangling prerequisites, unresolved
// references, empty offerings, liveness fallback, cancellation) is
// accumulated into a successful Response's Diagnostics instead.
type Error struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }
