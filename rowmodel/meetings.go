package rowmodel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// dayTokens maps the offering table's Spanish day abbreviations to Day.
var dayTokens = map[string]Day{
	"LU": Monday,
	"MA": Tuesday,
	"MI": Wednesday,
	"JU": Thursday,
	"VI": Friday,
	"SA": Saturday,
}

// patternRe splits one meeting pattern into its leading day-token run and
// its trailing "HH:MM - HH:MM" time range.
var patternRe = regexp.MustCompile(`^(.+?)\s+(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})$`)

// ParseMeetings parses an offering row's raw meeting string into Meetings.
//
// Grammar: `(day_token (' ' day_token)* ' ' HH:MM ' - ' HH:MM)+`, patterns
// separated by ';'. Each pattern expands into a Cartesian product: one
// Meeting per listed day, all sharing the same time range.
func ParseMeetings(raw string) ([]Meeting, error) {
	var out []Meeting

	for _, pattern := range strings.Split(raw, ";") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		m := patternRe.FindStringSubmatch(pattern)
		if m == nil {
			return nil, fmt.Errorf("rowmodel: malformed meeting pattern %q", pattern)
		}

		days, err := parseDayTokens(m[1])
		if err != nil {
			return nil, fmt.Errorf("rowmodel: %w in pattern %q", err, pattern)
		}

		start, err := parseClock(m[2])
		if err != nil {
			return nil, fmt.Errorf("rowmodel: bad start time in pattern %q: %w", pattern, err)
		}
		end, err := parseClock(m[3])
		if err != nil {
			return nil, fmt.Errorf("rowmodel: bad end time in pattern %q: %w", pattern, err)
		}
		if end <= start {
			return nil, fmt.Errorf("rowmodel: end time must be after start time in pattern %q", pattern)
		}

		for _, d := range days {
			out = append(out, Meeting{Day: d, StartMinute: start, EndMinute: end})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("rowmodel: meeting string %q has no meetings", raw)
	}

	return out, nil
}

// parseDayTokens splits a whitespace-separated run of day tokens and maps
// each to a Day, preserving order but not deduplicating (a malformed row
// repeating a day produces two identical Meetings, which conflict.Build
// treats as a harmless self-overlap).
func parseDayTokens(s string) ([]Day, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no day tokens")
	}
	days := make([]Day, 0, len(fields))
	for _, f := range fields {
		d, ok := dayTokens[strings.ToUpper(f)]
		if !ok {
			return nil, fmt.Errorf("unknown day token %q", f)
		}
		days = append(days, d)
	}
	return days, nil
}

// parseClock parses "HH:MM" into minutes since midnight. It does not require
// multiples of 5 here; ParseMeetings' caller-facing invariant (end > start,
// both multiples of 5) is a property of well-formed offering data, not
// something this parser enforces beyond the ordering check above.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hour in %q: %w", s, err)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minute in %q: %w", s, err)
	}
	if h < 0 || h > 24 || min < 0 || min >= 60 {
		return 0, fmt.Errorf("time out of range: %q", s)
	}
	return h*60 + min, nil
}
