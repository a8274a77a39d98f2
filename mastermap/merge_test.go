package mastermap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallaplan/planner/mastermap"
	"github.com/mallaplan/planner/rowmodel"
)

// TestBuild_MergesAcrossSources verifies S4: a course with different codes
// in the offering and difficulty tables, same name, merges into one entry
// resolvable by either code.
func TestBuild_MergesAcrossSources(t *testing.T) {
	difficulty := []rowmodel.DifficultyRow{
		{Code: "CIG1013", Name: "Estructuras de Datos", ApprovalPercent: "80", IsElective: false},
	}
	offering := []rowmodel.OfferingRow{
		{Code: "CIG1002", Name: "Estructuras de Datos", SectionLabel: "1"},
	}
	curriculum := []rowmodel.CurriculumRow{
		{MallaID: 1, Name: "Estructuras de Datos"},
	}

	m, err := mastermap.Build(difficulty, offering, curriculum)
	require.NoError(t, err)

	byDiff := m.Lookup("CIG1013")
	byOff := m.Lookup("CIG1002")
	require.NotNil(t, byDiff)
	require.NotNil(t, byOff)
	assert.Same(t, byDiff, byOff)
	assert.Equal(t, "CIG1002", byDiff.CodeOffering)
	assert.Equal(t, "CIG1013", byDiff.CodeDifficulty)
}

// TestBuild_NeverOverwritesWithEmpty verifies invariant 7 (Master Map
// monotonicity): a later row with an empty code does not clear an
// already-set code.
func TestBuild_NeverOverwritesWithEmpty(t *testing.T) {
	offering := []rowmodel.OfferingRow{
		{Code: "CIG1002", Name: "Redes", SectionLabel: "1"},
		{Code: "", Name: "Redes", SectionLabel: "2"},
	}

	m, err := mastermap.Build(nil, offering, nil)
	require.NoError(t, err)

	s := m.Lookup("CIG1002")
	require.NotNil(t, s)
	assert.Equal(t, "CIG1002", s.CodeOffering)
}

// TestBuild_DuplicateNameConflict verifies that two distinct codes
// normalizing to the same name within one source is a fatal DuplicateName.
func TestBuild_DuplicateNameConflict(t *testing.T) {
	offering := []rowmodel.OfferingRow{
		{Code: "AAA1", Name: "Cálculo I", SectionLabel: "1"},
		{Code: "BBB2", Name: "Calculo I", SectionLabel: "1"},
	}

	_, err := mastermap.Build(nil, offering, nil)
	assert.ErrorIs(t, err, mastermap.ErrDuplicateName)
}

// TestBuild_DanglingMallaIDLookup verifies ByMallaID resolves prerequisites
// by curriculum id, returning false for ids that were never merged.
func TestBuild_DanglingMallaIDLookup(t *testing.T) {
	curriculum := []rowmodel.CurriculumRow{
		{MallaID: 1, Name: "Álgebra Lineal", PrerequisiteIDs: []int{99}},
	}

	m, err := mastermap.Build(nil, nil, curriculum)
	require.NoError(t, err)

	_, ok := m.ByMallaID(99)
	assert.False(t, ok)

	s, ok := m.ByMallaID(1)
	require.True(t, ok)
	assert.Equal(t, []int{99}, s.PrerequisiteIDs)
}
