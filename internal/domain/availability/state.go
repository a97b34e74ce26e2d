package availability

import "sort"

// Conversions between the keyed object form used by schedule forms and the
// array-of-records form used for persistence. Both directions are lossless:
// arrayToState(stateToArray(s)) == s for any valid state.

func WeeklyStateToArray(state WeeklyState) []WeeklyEntry {
	out := make([]WeeklyEntry, 0, len(state))
	for _, day := range WeekdayOrder {
		sched, ok := state[day]
		if !ok {
			continue
		}
		out = append(out, WeeklyEntry{
			DayOfWeek: day,
			Enabled:   sched.Enabled,
			TimeSlots: sched.TimeSlots,
		})
	}
	return out
}

func WeeklyArrayToState(entries []WeeklyEntry) WeeklyState {
	state := make(WeeklyState, len(entries))
	for _, e := range entries {
		state[e.DayOfWeek] = DaySchedule{
			Enabled:   e.Enabled,
			TimeSlots: e.TimeSlots,
		}
	}
	return state
}

func OverrideStateToArray(state OverrideState) []OverrideEntry {
	dates := make([]string, 0, len(state))
	for date := range state {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]OverrideEntry, 0, len(dates))
	for _, date := range dates {
		out = append(out, OverrideEntry{
			Date:      date,
			TimeSlots: state[date],
		})
	}
	return out
}

func OverrideArrayToState(entries []OverrideEntry) OverrideState {
	state := make(OverrideState, len(entries))
	for _, e := range entries {
		state[e.Date] = e.TimeSlots
	}
	return state
}
