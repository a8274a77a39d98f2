package httpapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mallaplan/planner/filter"
	"github.com/mallaplan/planner/planner"
	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/schedule"
)

// toRequest builds a planner.Request from the decoded wire payload.
func toRequest(w requestWire) (planner.Request, error) {
	req := planner.Request{
		ApprovedCourseKeys: w.ApprovedCourseKeys,
		PriorityCourseKeys: w.PriorityCourseKeys,
		PreferredTimes:     w.PreferredTimes,
		MallaID:            w.MallaID,
	}

	if w.Filters == nil {
		return req, nil
	}

	f, err := toFilters(*w.Filters)
	if err != nil {
		return planner.Request{}, err
	}
	req.Filters = f
	return req, nil
}

func toFilters(w filtersWire) (filter.Filters, error) {
	var f filter.Filters

	if w.FreeDayTime != nil {
		freeDays, err := toDays(w.FreeDayTime.FreeDays)
		if err != nil {
			return filter.Filters{}, fmt.Errorf("free_day_time.free_days: %w", err)
		}
		ranges, err := toRanges(w.FreeDayTime.Ranges)
		if err != nil {
			return filter.Filters{}, fmt.Errorf("free_day_time.ranges: %w", err)
		}
		f.TimeWindow = filter.TimeWindow{
			Enabled:      w.FreeDayTime.Enabled,
			FreeDays:     freeDays,
			Ranges:       ranges,
			MinimizeGaps: w.FreeDayTime.MinimizeGaps,
		}
	}

	if w.InterActivity != nil {
		f.InterActivity = filter.InterActivity{
			Enabled:    w.InterActivity.Enabled,
			MinMinutes: w.InterActivity.MinMinutes,
		}
	}

	if w.InstructorPref != nil {
		f.InstructorPref = filter.InstructorPref{
			Enabled: w.InstructorPref.Enabled,
			Prefer:  w.InstructorPref.Prefer,
			Avoid:   w.InstructorPref.Avoid,
		}
	}

	if w.LineBalance != nil {
		f.LineBalance = filter.LineBalance{
			Enabled: w.LineBalance.Enabled,
			Lines:   w.LineBalance.Lines,
			// No line-membership metadata travels over the wire (spec.md
			// §6.2 does not define one); until a caller wires a real
			// classifier through the Go API directly, every section
			// classifies into no line, making this filter a pass-through.
			LineOf: func(string) []string { return nil },
		}
	}

	return f, nil
}

func toDays(raw []string) ([]rowmodel.Day, error) {
	out := make([]rowmodel.Day, 0, len(raw))
	for _, s := range raw {
		d, err := parseDay(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func toRanges(raw []timeRangeWire) ([]filter.TimeRange, error) {
	out := make([]filter.TimeRange, 0, len(raw))
	for _, r := range raw {
		d, err := parseDay(r.Day)
		if err != nil {
			return nil, err
		}
		start, err := parseClock(r.Start)
		if err != nil {
			return nil, fmt.Errorf("start %q: %w", r.Start, err)
		}
		end, err := parseClock(r.End)
		if err != nil {
			return nil, fmt.Errorf("end %q: %w", r.End, err)
		}
		out = append(out, filter.TimeRange{Day: d, StartMinute: start, EndMinute: end})
	}
	return out, nil
}

var wireDays = map[string]rowmodel.Day{
	"MO": rowmodel.Monday,
	"TU": rowmodel.Tuesday,
	"WE": rowmodel.Wednesday,
	"TH": rowmodel.Thursday,
	"FR": rowmodel.Friday,
	"SA": rowmodel.Saturday,
}

func parseDay(s string) (rowmodel.Day, error) {
	d, ok := wireDays[strings.ToUpper(s)]
	if !ok {
		return "", fmt.Errorf("unknown day %q", s)
	}
	return d, nil
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return h*60 + min, nil
}

// fromResponse translates a planner.Response into its wire shape.
func fromResponse(r *planner.Response) responseWire {
	schedules := make([]scheduleWire, 0, len(r.Schedules))
	for _, s := range r.Schedules {
		schedules = append(schedules, fromSchedule(s))
	}

	return responseWire{
		DocumentsRead: r.DocumentsRead,
		ScheduleCount: r.ScheduleCount,
		Schedules:     schedules,
		Diagnostics: diagnosticsWire{
			LivenessFallback: r.Diagnostics.LivenessFallback,
			FiltersApplied:   r.Diagnostics.FiltersApplied,
			PartialResult:    r.Diagnostics.PartialResult,
			Warnings:         r.Diagnostics.Warnings,
		},
		AverageDifficulty: r.AverageDifficulty,
	}
}

func fromSchedule(s schedule.Schedule) scheduleWire {
	sections := make([]sectionWire, 0, len(s.Entries))
	for _, e := range s.Entries {
		meetings := make([]meetingWire, 0, len(e.Section.Meetings))
		for _, m := range e.Section.Meetings {
			meetings = append(meetings, meetingWire{
				Day:   string(m.Day),
				Start: minutesToClock(m.StartMinute),
				End:   minutesToClock(m.EndMinute),
			})
		}
		sections = append(sections, sectionWire{
			Course:       e.Section.NameKey,
			SectionLabel: e.Section.SectionLabel,
			Instructor:   e.Section.Instructor,
			Meetings:     meetings,
			Priority:     e.Priority,
		})
	}
	return scheduleWire{Sections: sections, TotalScore: s.TotalScore}
}

func minutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func fromCurriculumRowsWire(rows []curriculumRowWire) []rowmodel.CurriculumRow {
	out := make([]rowmodel.CurriculumRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowmodel.CurriculumRow{
			MallaID:         r.MallaID,
			Name:            r.Name,
			Semester:        r.Semester,
			PrerequisiteIDs: r.PrerequisiteIDs,
			IsCriticalHint:  r.IsCriticalHint,
		})
	}
	return out
}

func fromOfferingRowsWire(rows []offeringRowWire) []rowmodel.OfferingRow {
	out := make([]rowmodel.OfferingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowmodel.OfferingRow{
			Code:         r.Code,
			Name:         r.Name,
			SectionLabel: r.SectionLabel,
			Meetings:     r.Meetings,
			Instructor:   r.Instructor,
			RawCode:      r.RawCode,
		})
	}
	return out
}

func fromDifficultyRowsWire(rows []difficultyRowWire) []rowmodel.DifficultyRow {
	out := make([]rowmodel.DifficultyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowmodel.DifficultyRow{
			Code:            r.Code,
			Name:            r.Name,
			ApprovalPercent: string(r.ApprovalPercent),
			IsElective:      r.IsElective,
		})
	}
	return out
}

// fromError translates a *planner.Error into its wire envelope.
func fromError(err *planner.Error) errorWire {
	return errorWire{ErrorKind: string(err.Kind), Message: err.Message, Details: err.Details}
}
