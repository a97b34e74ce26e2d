package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slots(pairs ...[2]string) []TimeSlot {
	out := make([]TimeSlot, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, TimeSlot{StartTime: p[0], EndTime: p[1]})
	}
	return out
}

func TestValidateTimeSlots_Valid(t *testing.T) {
	weekly := WeeklyState{
		Monday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"9:00 AM", "12:00 PM"}, [2]string{"1:00 PM", "5:00 PM"}),
		},
		Tuesday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"8:00 AM", "4:00 PM"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.True(t, r.IsValid)
	assert.Empty(t, r.ErrorMessage)
}

func TestValidateTimeSlots_BackToBackSlotsAllowed(t *testing.T) {
	weekly := WeeklyState{
		Monday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"9:00 AM", "12:00 PM"}, [2]string{"12:00 PM", "5:00 PM"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.True(t, r.IsValid)
}

func TestValidateTimeSlots_OverlapRejected(t *testing.T) {
	weekly := WeeklyState{
		Monday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"9:00 AM", "1:00 PM"}, [2]string{"12:00 PM", "5:00 PM"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.False(t, r.IsValid)
	assert.Equal(t, "Overlapping time slots in Monday", r.ErrorMessage)
}

func TestValidateTimeSlots_StartNotBeforeEnd(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"start after end", "5:00 PM", "9:00 AM"},
		{"start equals end", "9:00 AM", "9:00 AM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			weekly := WeeklyState{
				Friday: {
					Enabled:   true,
					TimeSlots: slots([2]string{tc.start, tc.end}),
				},
			}

			r := ValidateTimeSlots(weekly, nil)
			assert.False(t, r.IsValid)
			assert.Equal(t, "Invalid time range in Friday: start must be before end", r.ErrorMessage)
		})
	}
}

func TestValidateTimeSlots_InvalidFormat(t *testing.T) {
	weekly := WeeklyState{
		Wednesday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"nine o'clock", "5:00 PM"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.False(t, r.IsValid)
	assert.Equal(t, "Invalid time format in Wednesday: nine o'clock", r.ErrorMessage)
}

func TestValidateTimeSlots_DisabledDaySkipped(t *testing.T) {
	// Stale overlapping slots on a disabled day must not fail validation.
	weekly := WeeklyState{
		Monday: {
			Enabled:   false,
			TimeSlots: slots([2]string{"9:00 AM", "1:00 PM"}, [2]string{"12:00 PM", "5:00 PM"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.True(t, r.IsValid)
}

func TestValidateTimeSlots_DifferentDaysNeverConflict(t *testing.T) {
	weekly := WeeklyState{
		Monday:  {Enabled: true, TimeSlots: slots([2]string{"9:00 AM", "5:00 PM"})},
		Tuesday: {Enabled: true, TimeSlots: slots([2]string{"9:00 AM", "5:00 PM"})},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.True(t, r.IsValid)
}

func TestValidateTimeSlots_OverridesChecked(t *testing.T) {
	overrides := []OverrideEntry{
		{
			Date:      "2026-01-15",
			TimeSlots: slots([2]string{"9:00 AM", "1:00 PM"}, [2]string{"11:00 AM", "3:00 PM"}),
		},
	}

	r := ValidateTimeSlots(WeeklyState{}, overrides)
	assert.False(t, r.IsValid)
	assert.Equal(t, "Overlapping time slots in 2026-01-15", r.ErrorMessage)
}

func TestValidateTimeSlots_EmptyOverrideIsValid(t *testing.T) {
	// A zero-slot override means unavailable all day, which is legal.
	overrides := []OverrideEntry{{Date: "2026-01-15"}}

	r := ValidateTimeSlots(WeeklyState{}, overrides)
	assert.True(t, r.IsValid)
}

func TestValidateTimeSlots_FirstViolationWins(t *testing.T) {
	// Monday precedes Friday in the listed order, so Monday's message wins
	// even though Friday is also broken.
	weekly := WeeklyState{
		Friday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"5:00 PM", "9:00 AM"}),
		},
		Monday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"9:00 AM", "1:00 PM"}, [2]string{"12:00 PM", "5:00 PM"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.False(t, r.IsValid)
	assert.Equal(t, "Overlapping time slots in Monday", r.ErrorMessage)
}

func TestValidateTimeSlots_TwentyFourHourClockAccepted(t *testing.T) {
	weekly := WeeklyState{
		Monday: {
			Enabled:   true,
			TimeSlots: slots([2]string{"09:00", "17:00"}),
		},
	}

	r := ValidateTimeSlots(weekly, nil)
	assert.True(t, r.IsValid)
}
