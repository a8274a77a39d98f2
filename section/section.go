// Package section builds Section values — concrete scheduled instances of a
// Course — from offering rows, resolving each row's catalog code against
// the assembled curriculum.Catalog.
package section

import (
	"fmt"
	"sort"

	"github.com/mallaplan/planner/curriculum"
	"github.com/mallaplan/planner/rowmodel"
)

// Section is a concrete, scheduled instance of a Course (spec.md §3).
type Section struct {
	NameKey      string
	SectionLabel string
	Meetings     []rowmodel.Meeting
	Instructor   string
	RawCode      string
}

// Warning is a non-fatal diagnostic accumulated while building sections.
type Warning struct {
	Kind    string
	Message string
}

// Build parses each offering row's meeting string and resolves it against
// cat by CodeOffering. Rows whose code matches no course are dropped with a
// warning rather than failing the whole call — an unrecognized section in
// one term's offering should not abort planning for every other course.
func Build(cat *curriculum.Catalog, rows []rowmodel.OfferingRow) ([]*Section, []Warning, error) {
	byCode := make(map[string]string, cat.Len())
	for _, c := range cat.Courses() {
		if c.CodeOffering != "" {
			byCode[c.CodeOffering] = c.NameKey
		}
	}

	var out []*Section
	var warnings []Warning
	for _, row := range rows {
		key, ok := byCode[row.Code]
		if !ok {
			warnings = append(warnings, Warning{
				Kind:    "UnresolvedCourseReference",
				Message: fmt.Sprintf("offering section %q references unknown course code %q; section dropped", row.SectionLabel, row.Code),
			})
			continue
		}

		meetings, err := rowmodel.ParseMeetings(row.Meetings)
		if err != nil {
			return nil, nil, fmt.Errorf("section: %w", err)
		}

		out = append(out, &Section{
			NameKey:      key,
			SectionLabel: row.SectionLabel,
			Meetings:     meetings,
			Instructor:   row.Instructor,
			RawCode:      row.RawCode,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].NameKey != out[j].NameKey {
			return out[i].NameKey < out[j].NameKey
		}
		return out[i].SectionLabel < out[j].SectionLabel
	})

	return out, warnings, nil
}

// ID returns a deterministic identifier for a section, its NameKey and
// SectionLabel joined by "#". The clique selector does not use it; its
// signatures are built from section indices.
func (s *Section) ID() string {
	return s.NameKey + "#" + s.SectionLabel
}
