package filter

import (
	"sort"

	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/schedule"
)

// timeWindowPredicate rejects any schedule with a meeting on a free day, or
// a meeting outside every configured range on a day a range is given for.
func timeWindowPredicate(f TimeWindow) predicate {
	free := make(map[rowmodel.Day]bool, len(f.FreeDays))
	for _, d := range f.FreeDays {
		free[d] = true
	}
	rangesByDay := make(map[rowmodel.Day][]TimeRange)
	for _, r := range f.Ranges {
		rangesByDay[r.Day] = append(rangesByDay[r.Day], r)
	}

	return func(s schedule.Schedule) bool {
		for _, entry := range s.Entries {
			for _, m := range entry.Section.Meetings {
				if free[m.Day] {
					return false
				}
				ranges, ok := rangesByDay[m.Day]
				if !ok {
					continue
				}
				if !withinAnyRange(m, ranges) {
					return false
				}
			}
		}
		return true
	}
}

func withinAnyRange(m rowmodel.Meeting, ranges []TimeRange) bool {
	for _, r := range ranges {
		if m.StartMinute >= r.StartMinute && m.EndMinute <= r.EndMinute {
			return true
		}
	}
	return false
}

// instructorPredicate rejects schedules containing any Avoid instructor.
// The Prefer list is not read here or anywhere else in the pipeline: sections
// from other instructors are never rejected and preferred instructors earn no
// bonus; instructor_pref only enforces Avoid.
func instructorPredicate(f InstructorPref) predicate {
	avoid := make(map[string]bool, len(f.Avoid))
	for _, name := range f.Avoid {
		avoid[name] = true
	}

	return func(s schedule.Schedule) bool {
		for _, entry := range s.Entries {
			if avoid[entry.Section.Instructor] {
				return false
			}
		}
		return true
	}
}

// interActivityPredicate rejects schedules with less than MinMinutes
// between the end of one meeting and the start of the next meeting on the
// same day.
func interActivityPredicate(f InterActivity) predicate {
	return func(s schedule.Schedule) bool {
		byDay := make(map[rowmodel.Day][]rowmodel.Meeting)
		for _, entry := range s.Entries {
			for _, m := range entry.Section.Meetings {
				byDay[m.Day] = append(byDay[m.Day], m)
			}
		}
		for _, meetings := range byDay {
			sort.Slice(meetings, func(i, j int) bool { return meetings[i].StartMinute < meetings[j].StartMinute })
			for i := 1; i < len(meetings); i++ {
				gap := meetings[i].StartMinute - meetings[i-1].EndMinute
				if gap < f.MinMinutes {
					return false
				}
			}
		}
		return true
	}
}

// lineBalancePredicate rejects schedules where any named line's course
// count exceeds its configured maximum.
func lineBalancePredicate(f LineBalance) predicate {
	return func(s schedule.Schedule) bool {
		if f.LineOf == nil {
			return true
		}
		counts := make(map[string]int)
		for _, entry := range s.Entries {
			for _, line := range f.LineOf(entry.Section.NameKey) {
				counts[line]++
			}
		}
		for line, max := range f.Lines {
			if counts[line] > max {
				return false
			}
		}
		return true
	}
}
