// Package filter applies the optional user filters enumerated in spec.md
// §6.2 to a ranked list of Schedules (C8). Each filter is a pure,
// side-effect-free predicate; the pipeline's composition order is fixed —
// time-window, then instructor, then inter-activity gap, then line balance
// — so that removing any prefix of enabled filters yields a consistent
// superset of the result.
package filter

import (
	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/schedule"
)

// TimeRange is one day+range entry of a free_day_time filter.
type TimeRange struct {
	Day         rowmodel.Day
	StartMinute int
	EndMinute   int
}

// TimeWindow corresponds to request.filters.free_day_time: keep schedules
// whose meetings avoid the named free days entirely and fall within the
// given ranges on the days that remain.
type TimeWindow struct {
	Enabled      bool
	FreeDays     []rowmodel.Day
	Ranges       []TimeRange
	MinimizeGaps bool // carried from the request; no predicate or ranking step reads it
}

// InstructorPref corresponds to request.filters.instructor_pref.
type InstructorPref struct {
	Enabled bool
	Prefer  []string
	Avoid   []string
}

// InterActivity corresponds to request.filters.inter_activity: require at
// least MinMinutes between consecutive meetings on the same day.
type InterActivity struct {
	Enabled    bool
	MinMinutes int
}

// LineBalance corresponds to request.filters.line_balance: each named
// "line" (e.g. a major track) must not exceed its configured course count.
type LineBalance struct {
	Enabled bool
	Lines   map[string]int
	// LineOf classifies a NameKey into zero or more line names; supplied by
	// the caller since line membership is not part of Section/Course data.
	LineOf func(nameKey string) []string
}

// Filters is the closed set of optional filters a request may enable.
type Filters struct {
	TimeWindow     TimeWindow
	InstructorPref InstructorPref
	InterActivity  InterActivity
	LineBalance    LineBalance
}

// predicate is the uniform "accept(Schedule) -> bool" contract every filter
// compiles to (spec.md §9, "Dynamic dispatch on filters").
type predicate func(schedule.Schedule) bool

// Compile returns the enabled predicates in the pipeline's fixed order,
// together with their names for diagnostics.filters_applied.
func Compile(f Filters) (preds []predicate, names []string) {
	if f.TimeWindow.Enabled {
		preds = append(preds, timeWindowPredicate(f.TimeWindow))
		names = append(names, "free_day_time")
	}
	if f.InstructorPref.Enabled {
		preds = append(preds, instructorPredicate(f.InstructorPref))
		names = append(names, "instructor_pref")
	}
	if f.InterActivity.Enabled {
		preds = append(preds, interActivityPredicate(f.InterActivity))
		names = append(names, "inter_activity")
	}
	if f.LineBalance.Enabled {
		preds = append(preds, lineBalancePredicate(f.LineBalance))
		names = append(names, "line_balance")
	}
	return preds, names
}

// Apply runs ranked through the compiled predicates, keeping schedules that
// pass every enabled filter, in ranked order. It does not truncate to
// N_MAX or decide liveness fallback — that is the Response Builder's job
// (package planner), which has the context (remaining unapproved courses)
// to know when a fallback is warranted.
func Apply(ranked []schedule.Schedule, f Filters) (passed []schedule.Schedule, applied []string) {
	preds, names := Compile(f)
	if len(preds) == 0 {
		return ranked, nil
	}

	for _, s := range ranked {
		ok := true
		for _, p := range preds {
			if !p(s) {
				ok = false
				break
			}
		}
		if ok {
			passed = append(passed, s)
		}
	}

	return passed, names
}
