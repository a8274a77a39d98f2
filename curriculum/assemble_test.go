package curriculum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallaplan/planner/curriculum"
	"github.com/mallaplan/planner/mastermap"
	"github.com/mallaplan/planner/rowmodel"
)

// TestAssemble_ResolvesPrerequisites verifies S1's curriculum: B requires A.
func TestAssemble_ResolvesPrerequisites(t *testing.T) {
	rows := []rowmodel.CurriculumRow{
		{MallaID: 1, Name: "A"},
		{MallaID: 2, Name: "B", PrerequisiteIDs: []int{1}},
		{MallaID: 3, Name: "C"},
	}
	m, err := mastermap.Build(nil, nil, rows)
	require.NoError(t, err)

	cat, warnings, err := curriculum.Assemble(m)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	b, ok := cat.Course("b")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, b.PrerequisiteNameKeys)

	a, ok := cat.Course("a")
	require.True(t, ok)
	assert.Equal(t, 1, a.OutDegree) // unlocks B only
}

// TestAssemble_DanglingPrerequisite verifies a reference to an unknown
// malla_id drops the edge and emits a warning instead of failing.
func TestAssemble_DanglingPrerequisite(t *testing.T) {
	rows := []rowmodel.CurriculumRow{
		{MallaID: 1, Name: "A", PrerequisiteIDs: []int{999}},
	}
	m, err := mastermap.Build(nil, nil, rows)
	require.NoError(t, err)

	cat, warnings, err := curriculum.Assemble(m)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "DanglingPrerequisite", warnings[0].Kind)

	a, ok := cat.Course("a")
	require.True(t, ok)
	assert.Empty(t, a.PrerequisiteNameKeys)
}

// TestAssemble_CyclicCurriculum verifies S7: A -> B -> A fails fatally.
func TestAssemble_CyclicCurriculum(t *testing.T) {
	rows := []rowmodel.CurriculumRow{
		{MallaID: 1, Name: "A", PrerequisiteIDs: []int{2}},
		{MallaID: 2, Name: "B", PrerequisiteIDs: []int{1}},
	}
	m, err := mastermap.Build(nil, nil, rows)
	require.NoError(t, err)

	_, _, err = curriculum.Assemble(m)
	assert.ErrorIs(t, err, curriculum.ErrCyclicCurriculum)
}
