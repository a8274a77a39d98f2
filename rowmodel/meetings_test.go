package rowmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallaplan/planner/rowmodel"
)

// TestParseMeetings_SingleDay verifies a single-day, single-pattern string.
func TestParseMeetings_SingleDay(t *testing.T) {
	ms, err := rowmodel.ParseMeetings("LU 08:00 - 10:00")
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, rowmodel.Monday, ms[0].Day)
	assert.Equal(t, 480, ms[0].StartMinute)
	assert.Equal(t, 600, ms[0].EndMinute)
}

// TestParseMeetings_CartesianProduct verifies that a pattern listing
// multiple days expands into one Meeting per day, same time range.
func TestParseMeetings_CartesianProduct(t *testing.T) {
	ms, err := rowmodel.ParseMeetings("LU MI VI 14:00 - 16:00")
	require.NoError(t, err)
	require.Len(t, ms, 3)
	days := []rowmodel.Day{ms[0].Day, ms[1].Day, ms[2].Day}
	assert.ElementsMatch(t, []rowmodel.Day{rowmodel.Monday, rowmodel.Wednesday, rowmodel.Friday}, days)
	for _, m := range ms {
		assert.Equal(t, 840, m.StartMinute)
		assert.Equal(t, 960, m.EndMinute)
	}
}

// TestParseMeetings_MultiplePatterns verifies ';'-separated patterns combine.
func TestParseMeetings_MultiplePatterns(t *testing.T) {
	ms, err := rowmodel.ParseMeetings("LU 08:00 - 10:00; JU 10:00 - 12:00")
	require.NoError(t, err)
	require.Len(t, ms, 2)
}

// TestParseMeetings_EndBeforeStart rejects inverted ranges.
func TestParseMeetings_EndBeforeStart(t *testing.T) {
	_, err := rowmodel.ParseMeetings("LU 10:00 - 08:00")
	assert.Error(t, err)
}

// TestParseMeetings_UnknownDay rejects tokens outside {LU,MA,MI,JU,VI,SA}.
func TestParseMeetings_UnknownDay(t *testing.T) {
	_, err := rowmodel.ParseMeetings("DO 08:00 - 10:00")
	assert.Error(t, err)
}

// TestParseMeetings_Empty rejects the empty string.
func TestParseMeetings_Empty(t *testing.T) {
	_, err := rowmodel.ParseMeetings("")
	assert.Error(t, err)
}
