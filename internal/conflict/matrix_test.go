package conflict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mallaplan/planner/internal/conflict"
	"github.com/mallaplan/planner/rowmodel"
	"github.com/mallaplan/planner/section"
)

func sec(key, label string, meetings ...rowmodel.Meeting) *section.Section {
	return &section.Section{NameKey: key, SectionLabel: label, Meetings: meetings}
}

// TestConflicts_SameCourse verifies two sections of the same course always
// conflict, regardless of time.
func TestConflicts_SameCourse(t *testing.T) {
	a := sec("a", "1", rowmodel.Meeting{Day: rowmodel.Monday, StartMinute: 0, EndMinute: 60})
	b := sec("a", "2", rowmodel.Meeting{Day: rowmodel.Tuesday, StartMinute: 600, EndMinute: 660})

	m := conflict.Build([]*section.Section{a, b})
	assert.True(t, m.Conflicts(0, 1))
}

// TestConflicts_OverlappingTimes verifies overlapping meetings on the same
// day conflict.
func TestConflicts_OverlappingTimes(t *testing.T) {
	a := sec("a", "1", rowmodel.Meeting{Day: rowmodel.Monday, StartMinute: 480, EndMinute: 600})
	b := sec("b", "1", rowmodel.Meeting{Day: rowmodel.Monday, StartMinute: 540, EndMinute: 660})

	m := conflict.Build([]*section.Section{a, b})
	assert.True(t, m.Conflicts(0, 1))
}

// TestConflicts_AdjacentNoOverlap verifies back-to-back meetings (end ==
// next start) do not conflict: [start,end) is half-open.
func TestConflicts_AdjacentNoOverlap(t *testing.T) {
	a := sec("a", "1", rowmodel.Meeting{Day: rowmodel.Monday, StartMinute: 480, EndMinute: 600})
	b := sec("b", "1", rowmodel.Meeting{Day: rowmodel.Monday, StartMinute: 600, EndMinute: 720})

	m := conflict.Build([]*section.Section{a, b})
	assert.False(t, m.Conflicts(0, 1))
}

// TestConflicts_DifferentDays verifies same time range on different days
// does not conflict.
func TestConflicts_DifferentDays(t *testing.T) {
	a := sec("a", "1", rowmodel.Meeting{Day: rowmodel.Monday, StartMinute: 480, EndMinute: 600})
	b := sec("b", "1", rowmodel.Meeting{Day: rowmodel.Tuesday, StartMinute: 480, EndMinute: 600})

	m := conflict.Build([]*section.Section{a, b})
	assert.False(t, m.Conflicts(0, 1))
}
