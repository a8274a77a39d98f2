// Package conflict builds the bitwise time-overlap table over candidate
// sections (C6): a symmetric boolean matrix where entry (i,j) is true iff
// sections i and j belong to the same course or any of their meetings
// overlap.
//
// Each section's weekly schedule is represented as a per-day bitset of
// 5-minute slots (spec.md §4.6), so overlap testing is a word-at-a-time AND
// rather than an interval-intersection scan.
package conflict

import (
	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/section"
)

const (
	slotsPerDay = 288              // 1440 minutes / 5-minute slots
	slotMinutes = 5
	wordBits    = 64
	words       = (slotsPerDay + wordBits - 1) / wordBits
)

var dayIndex = map[rowmodel.Day]int{
	rowmodel.Monday:    0,
	rowmodel.Tuesday:   1,
	rowmodel.Wednesday: 2,
	rowmodel.Thursday:  3,
	rowmodel.Friday:    4,
	rowmodel.Saturday:  5,
	// index 6 is reserved for Sunday; the offering grammar never produces
	// it, so it is always zero.
}

const numDays = 7

type dayBits [words]uint64

func (d *dayBits) setRange(startMinute, endMinute int) {
	startSlot := startMinute / slotMinutes
	endSlot := endMinute / slotMinutes
	for s := startSlot; s < endSlot; s++ {
		d[s/wordBits] |= 1 << uint(s%wordBits)
	}
}

func (d dayBits) intersects(o dayBits) bool {
	for i := range d {
		if d[i]&o[i] != 0 {
			return true
		}
	}
	return false
}

// Matrix is the symmetric section-pair conflict table.
type Matrix struct {
	Sections []*section.Section
	bits     [][numDays]dayBits
}

// Build computes the conflict matrix for sections. Cost is O(n * m) to
// build bitsets (n sections, m meetings each) plus O(n^2) bit-word
// comparisons to answer every Conflicts query, acceptable for n <= 1000
// per spec.md §4.6.
func Build(sections []*section.Section) *Matrix {
	m := &Matrix{
		Sections: sections,
		bits:     make([][numDays]dayBits, len(sections)),
	}
	for i, s := range sections {
		for _, meeting := range s.Meetings {
			d, ok := dayIndex[meeting.Day]
			if !ok {
				continue
			}
			m.bits[i][d].setRange(meeting.StartMinute, meeting.EndMinute)
		}
	}
	return m
}

// Conflicts reports whether sections i and j cannot both appear in the same
// schedule: they belong to the same course, or at least one of their
// meetings overlaps.
func (m *Matrix) Conflicts(i, j int) bool {
	if i == j {
		return true
	}
	if m.Sections[i].NameKey == m.Sections[j].NameKey {
		return true
	}
	for d := 0; d < numDays; d++ {
		if m.bits[i][d].intersects(m.bits[j][d]) {
			return true
		}
	}
	return false
}

// Len returns the number of sections in the matrix.
func (m *Matrix) Len() int { return len(m.Sections) }
