package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyStateRoundTrip(t *testing.T) {
	state := WeeklyState{
		Monday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"9:00 AM", "5:00 PM"}),
		},
		Wednesday: {
			Enabled: false,
		},
		Sunday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"10:00 AM", "2:00 PM"}),
		},
	}

	got := WeeklyArrayToState(WeeklyStateToArray(state))
	assert.Equal(t, state, got)
}

func TestWeeklyStateToArray_FollowsWeekOrder(t *testing.T) {
	state := WeeklyState{
		Sunday:  {Enabled: true},
		Monday:  {Enabled: true},
		Friday:  {Enabled: false},
		Tuesday: {Enabled: true},
	}

	entries := WeeklyStateToArray(state)
	require.Len(t, entries, 4)

	assert.Equal(t, Monday, entries[0].DayOfWeek)
	assert.Equal(t, Tuesday, entries[1].DayOfWeek)
	assert.Equal(t, Friday, entries[2].DayOfWeek)
	assert.Equal(t, Sunday, entries[3].DayOfWeek)
}

func TestWeeklyStateToArray_SkipsAbsentDays(t *testing.T) {
	state := WeeklyState{
		Thursday: {Enabled: true, TimeSlots: slots([2]string{"8:00 AM", "12:00 PM"})},
	}

	entries := WeeklyStateToArray(state)
	require.Len(t, entries, 1)
	assert.Equal(t, Thursday, entries[0].DayOfWeek)
}

func TestOverrideStateRoundTrip(t *testing.T) {
	state := OverrideState{
		"2026-02-14": slots([2]string{"9:00 AM", "12:00 PM"}),
		"2026-01-01": nil,
	}

	got := OverrideArrayToState(OverrideStateToArray(state))
	assert.Equal(t, state, got)
}

func TestOverrideStateToArray_SortedByDate(t *testing.T) {
	state := OverrideState{
		"2026-03-01": nil,
		"2026-01-15": nil,
		"2026-02-20": nil,
	}

	entries := OverrideStateToArray(state)
	require.Len(t, entries, 3)

	assert.Equal(t, "2026-01-15", entries[0].Date)
	assert.Equal(t, "2026-02-20", entries[1].Date)
	assert.Equal(t, "2026-03-01", entries[2].Date)
}
