package planner

import (
	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/section"
)

// preferredTimeBonus added to a section's weight when every one of its
// meetings falls within the caller's preferred_times windows (spec.md
// §4.7's "preferred-time bonus").
const preferredTimeBonus = 15

// parsePreferredTimes parses request.preferred_times entries (each one
// meeting-grammar pattern, e.g. "LU 08:00-10:00") into Meetings describing
// the caller's preferred windows. Malformed entries are skipped rather than
// failing the whole call — a preference string is advisory, not a fatal
// input.
func parsePreferredTimes(raw []string) []rowmodel.Meeting {
	var out []rowmodel.Meeting
	for _, s := range raw {
		ms, err := rowmodel.ParseMeetings(s)
		if err != nil {
			continue
		}
		out = append(out, ms...)
	}
	return out
}

// withinPreferred reports whether every meeting of s falls within at least
// one preferred window on the same day.
func withinPreferred(s *section.Section, preferred []rowmodel.Meeting) bool {
	if len(preferred) == 0 {
		return false
	}
	for _, m := range s.Meetings {
		fits := false
		for _, p := range preferred {
			if p.Day == m.Day && m.StartMinute >= p.StartMinute && m.EndMinute <= p.EndMinute {
				fits = true
				break
			}
		}
		if !fits {
			return false
		}
	}
	return true
}
