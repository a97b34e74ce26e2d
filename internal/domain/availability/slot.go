package availability

// TimeSlot is a wall-clock interval within one day. Times are strings like
// "8:00 AM" (or "08:00"); they only gain meaning once anchored to a calendar
// date in an organization's timezone.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// WeekdayOrder is the natural listed order of the schedule form.
var WeekdayOrder = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DisplayName returns the human form used in validation messages.
func (w Weekday) DisplayName() string {
	if n, ok := weekdayNames[w]; ok {
		return n
	}
	return string(w)
}

func (w Weekday) Valid() bool {
	_, ok := weekdayNames[w]
	return ok
}

// DaySchedule is one weekday's recurring availability.
type DaySchedule struct {
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// WeeklyState is the display-friendly keyed form: day name -> schedule.
type WeeklyState map[Weekday]DaySchedule

// WeeklyEntry is the persistence-friendly record form.
type WeeklyEntry struct {
	DayOfWeek Weekday    `json:"dayOfWeek"`
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// OverrideEntry pairs a specific calendar date (ISO "2006-01-02") with its own
// slots. An entry with zero slots means unavailable for the whole date; the
// weekly schedule never applies to a date that has an override.
type OverrideEntry struct {
	Date      string     `json:"date"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// OverrideState is the keyed form: ISO date -> slots.
type OverrideState map[string][]TimeSlot
