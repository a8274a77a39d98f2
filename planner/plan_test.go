package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallaplan/planner/planner"
	"github.com/mallaplan/planner/rowmodel"
)

func baseRows() planner.Rows {
	return planner.Rows{
		Curriculum: []rowmodel.CurriculumRow{
			{MallaID: 1, Name: "A"},
			{MallaID: 2, Name: "B", PrerequisiteIDs: []int{1}},
			{MallaID: 3, Name: "C"},
		},
		Offering: []rowmodel.OfferingRow{
			{Code: "A1", Name: "A", SectionLabel: "1", Meetings: "LU 08:00 - 10:00"},
			{Code: "B1", Name: "B", SectionLabel: "1", Meetings: "MA 08:00 - 10:00"},
			{Code: "C1", Name: "C", SectionLabel: "1", Meetings: "MI 08:00 - 10:00"},
		},
	}
}

func containsCourse(resp *planner.Response, key string) bool {
	for _, s := range resp.Schedules {
		for _, e := range s.Entries {
			if e.Section.NameKey == key {
				return true
			}
		}
	}
	return false
}

// TestPlan_S1_NoApprovals verifies S1: all three courses appear together in
// some returned schedule.
func TestPlan_S1_NoApprovals(t *testing.T) {
	resp, err := planner.Plan(context.Background(), baseRows(), planner.Request{})
	require.NoError(t, err)
	require.NotZero(t, resp.ScheduleCount)

	found := false
	for _, s := range resp.Schedules {
		if len(s.Entries) == 3 {
			found = true
		}
	}
	assert.True(t, found, "expected at least one schedule containing A, B, and C")
}

// TestPlan_S2_ApprovedExcluded verifies S2: approving A excludes it from
// every returned schedule.
func TestPlan_S2_ApprovedExcluded(t *testing.T) {
	resp, err := planner.Plan(context.Background(), baseRows(), planner.Request{
		ApprovedCourseKeys: []string{"A"},
	})
	require.NoError(t, err)
	assert.False(t, containsCourse(resp, "a"))
	assert.True(t, containsCourse(resp, "b"))
	assert.True(t, containsCourse(resp, "c"))
}

// TestPlan_S5_AllApproved verifies S5: approving every course yields zero
// schedules with a "no unapproved courses remain" diagnostic, not a
// liveness violation.
func TestPlan_S5_AllApproved(t *testing.T) {
	resp, err := planner.Plan(context.Background(), baseRows(), planner.Request{
		ApprovedCourseKeys: []string{"A", "B", "C"},
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ScheduleCount)
	assert.False(t, resp.Diagnostics.LivenessFallback)
	assert.Contains(t, resp.Diagnostics.Warnings, "no unapproved courses remain")
}

// TestPlan_S7_CyclicCurriculum verifies S7: a prerequisite cycle is a fatal
// CyclicCurriculum error, not a Response.
func TestPlan_S7_CyclicCurriculum(t *testing.T) {
	rows := planner.Rows{
		Curriculum: []rowmodel.CurriculumRow{
			{MallaID: 1, Name: "A", PrerequisiteIDs: []int{2}},
			{MallaID: 2, Name: "B", PrerequisiteIDs: []int{1}},
		},
	}
	_, err := planner.Plan(context.Background(), rows, planner.Request{})
	require.Error(t, err)
	perr, ok := err.(*planner.Error)
	require.True(t, ok)
	assert.Equal(t, planner.ErrorKindCyclicCurriculum, perr.Kind)
}

// TestPlan_S4_CrossYearCodeDrift verifies S4: the same course referenced by
// its offering code or its difficulty code resolves to the same entity.
func TestPlan_S4_CrossYearCodeDrift(t *testing.T) {
	rows := planner.Rows{
		Curriculum: []rowmodel.CurriculumRow{
			{MallaID: 1, Name: "X"},
		},
		Offering: []rowmodel.OfferingRow{
			{Code: "CIG1002", Name: "X", SectionLabel: "1", Meetings: "LU 08:00 - 10:00"},
		},
		Difficulty: []rowmodel.DifficultyRow{
			{Code: "CIG1013", Name: "X", ApprovalPercent: "80"},
		},
	}

	byOffering, err := planner.Plan(context.Background(), rows, planner.Request{ApprovedCourseKeys: []string{"CIG1002"}})
	require.NoError(t, err)
	byDifficulty, err := planner.Plan(context.Background(), rows, planner.Request{ApprovedCourseKeys: []string{"CIG1013"}})
	require.NoError(t, err)

	assert.Equal(t, 0, byOffering.ScheduleCount)
	assert.Equal(t, 0, byDifficulty.ScheduleCount)
}

// TestPlan_Deterministic verifies invariant 1 across full Plan calls.
func TestPlan_Deterministic(t *testing.T) {
	r1, err := planner.Plan(context.Background(), baseRows(), planner.Request{})
	require.NoError(t, err)
	r2, err := planner.Plan(context.Background(), baseRows(), planner.Request{})
	require.NoError(t, err)
	assert.Equal(t, r1.Schedules, r2.Schedules)
}
