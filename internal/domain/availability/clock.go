package availability

import (
	"fmt"
	"strings"
	"time"
)

// Accepted wall-clock layouts. Forms send "8:00 AM"; older rows and some
// clients use 24h "08:00".
var clockLayouts = []string{"3:04 PM", "15:04"}

// ParseClockMinutes converts a wall-clock string to minutes since midnight.
func ParseClockMinutes(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(trimmed)); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized clock time %q", s)
}

// AnchorToUTC resolves a wall-clock string against a calendar date in loc and
// returns the UTC instant. The anchor date matters: "8:00 AM" maps to a
// different UTC offset on either side of a DST transition.
func AnchorToUTC(clock string, anchor time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := ParseClockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}

	local := time.Date(
		anchor.Year(), anchor.Month(), anchor.Day(),
		minutes/60, minutes%60, 0, 0,
		loc,
	)
	return local.UTC(), nil
}

// ClockFromUTC formats a stored UTC instant back into the localized
// wall-clock form for display.
func ClockFromUTC(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM")
}
