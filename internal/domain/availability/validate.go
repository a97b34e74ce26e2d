package availability

import "fmt"

// Result is the explicit outcome of schedule validation. Business-rule
// violations come back here, never as errors.
type Result struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func valid() Result {
	return Result{IsValid: true}
}

func invalid(format string, args ...any) Result {
	return Result{IsValid: false, ErrorMessage: fmt.Sprintf(format, args...)}
}

// ValidateTimeSlots checks every enabled weekday and every override date for
// two rules: each slot's start must precede its end, and no two slots within
// the same day/date may intersect. Slots on different days never conflict.
// Days are checked in their listed order and the first violation wins.
func ValidateTimeSlots(weekly WeeklyState, overrides []OverrideEntry) Result {
	for _, day := range WeekdayOrder {
		sched, ok := weekly[day]
		if !ok || !sched.Enabled {
			// A disabled day is skipped even if stale slot data is attached.
			continue
		}
		if r := validateDay(day.DisplayName(), sched.TimeSlots); !r.IsValid {
			return r
		}
	}

	for _, ov := range overrides {
		if r := validateDay(ov.Date, ov.TimeSlots); !r.IsValid {
			return r
		}
	}

	return valid()
}

type interval struct {
	start int
	end   int
}

func validateDay(name string, slots []TimeSlot) Result {
	intervals := make([]interval, 0, len(slots))

	for _, slot := range slots {
		start, err := ParseClockMinutes(slot.StartTime)
		if err != nil {
			return invalid("Invalid time format in %s: %s", name, slot.StartTime)
		}
		end, err := ParseClockMinutes(slot.EndTime)
		if err != nil {
			return invalid("Invalid time format in %s: %s", name, slot.EndTime)
		}

		if start >= end {
			return invalid("Invalid time range in %s: start must be before end", name)
		}

		intervals = append(intervals, interval{start: start, end: end})
	}

	// Pairwise [start,end) intersection within this day only.
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if a.start < b.end && b.start < a.end {
				return invalid("Overlapping time slots in %s", name)
			}
		}
	}

	return valid()
}
