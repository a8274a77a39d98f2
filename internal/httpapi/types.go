// Package httpapi translates the JSON wire format of POST /v1/plan
// (spec.md §6.2-§6.4) to and from the planner package's Go types.
package httpapi

import (
	"encoding/json"
	"fmt"
)

// flexNumber accepts approval_percent in either its JSON string form
// ("78%", "78,5") or a bare JSON number (78.5), per spec.md §6.1.
type flexNumber string

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("httpapi: approval_percent must be a string or number: %w", err)
	}
	*f = flexNumber(n.String())
	return nil
}

// meetingWire is one parsed meeting on the wire.
type meetingWire struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// timeRangeWire is one day+range entry of a free_day_time filter.
type timeRangeWire struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// filtersWire mirrors spec.md §6.2's filters object.
type filtersWire struct {
	FreeDayTime *struct {
		Enabled      bool            `json:"enabled"`
		FreeDays     []string        `json:"free_days"`
		Ranges       []timeRangeWire `json:"ranges"`
		MinimizeGaps bool            `json:"minimize_gaps"`
	} `json:"free_day_time"`

	InterActivity *struct {
		Enabled    bool `json:"enabled"`
		MinMinutes int  `json:"min_minutes"`
	} `json:"inter_activity"`

	InstructorPref *struct {
		Enabled bool     `json:"enabled"`
		Prefer  []string `json:"prefer"`
		Avoid   []string `json:"avoid"`
	} `json:"instructor_pref"`

	LineBalance *struct {
		Enabled bool           `json:"enabled"`
		Lines   map[string]int `json:"lines"`
	} `json:"line_balance"`
}

// curriculumRowWire mirrors spec.md §6.1's curriculum row.
type curriculumRowWire struct {
	MallaID         int    `json:"malla_id"`
	Name            string `json:"name"`
	Semester        *int   `json:"semester"`
	PrerequisiteIDs []int  `json:"prerequisite_ids"`
	IsCriticalHint  bool   `json:"is_critical_hint"`
}

// offeringRowWire mirrors spec.md §6.1's offering row. Meetings carries the
// raw grammar string, not a pre-parsed Meeting[] — the wire format allows
// either, but this binding only accepts the string form.
type offeringRowWire struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	SectionLabel string `json:"section_label"`
	Meetings     string `json:"meetings"`
	Instructor   string `json:"instructor"`
	RawCode      string `json:"raw_code"`
}

// difficultyRowWire mirrors spec.md §6.1's difficulty row.
type difficultyRowWire struct {
	Code            string     `json:"code"`
	Name            string     `json:"name"`
	ApprovalPercent flexNumber `json:"approval_percent"`
	IsElective      bool       `json:"is_elective"`
}

// requestWire mirrors spec.md §6.2.
type requestWire struct {
	ApprovedCourseKeys []string     `json:"approved_course_keys"`
	PriorityCourseKeys []string     `json:"priority_course_keys"`
	PreferredTimes     []string     `json:"preferred_times"`
	MallaID            string       `json:"malla_id"`
	Filters            *filtersWire `json:"filters"`
}

// sectionWire mirrors one scheduled section within a response schedule.
type sectionWire struct {
	Course       string        `json:"course"`
	SectionLabel string        `json:"section_label"`
	Instructor   string        `json:"instructor"`
	Meetings     []meetingWire `json:"meetings"`
	Priority     int           `json:"priority"`
}

// scheduleWire mirrors one Schedule entry of spec.md §6.3.
type scheduleWire struct {
	Sections   []sectionWire `json:"sections"`
	TotalScore int           `json:"total_score"`
}

// diagnosticsWire mirrors spec.md §6.3's diagnostics object.
type diagnosticsWire struct {
	LivenessFallback bool     `json:"liveness_fallback"`
	FiltersApplied   []string `json:"filters_applied"`
	PartialResult    bool     `json:"partial_result"`
	Warnings         []string `json:"warnings"`
}

// responseWire mirrors spec.md §6.3.
type responseWire struct {
	DocumentsRead     int             `json:"documents_read"`
	ScheduleCount     int             `json:"schedule_count"`
	Schedules         []scheduleWire  `json:"schedules"`
	Diagnostics       diagnosticsWire `json:"diagnostics"`
	AverageDifficulty float64         `json:"average_difficulty"`
}

// errorWire mirrors spec.md §6.4's error envelope.
type errorWire struct {
	ErrorKind string         `json:"error_kind"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}
