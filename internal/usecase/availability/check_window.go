package availability

import (
	"context"
	"errors"
	"time"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type CheckWindowInput struct {
	ProviderType models.ProviderType
	RefID        uint

	// Window in UTC.
	Start time.Time
	End   time.Time

	Location *time.Location
}

// CheckWindow answers whether a provider is available for a time window. An
// override for the window's date supersedes the weekly schedule entirely: an
// override with zero slots means unavailable all day, and only when no
// override exists does the weekly recurring schedule apply.
type CheckWindow struct {
	repo domain.Repository
}

func NewCheckWindow(repo domain.Repository) *CheckWindow {
	return &CheckWindow{repo: repo}
}

func (uc *CheckWindow) Execute(
	ctx context.Context,
	in CheckWindowInput,
) (bool, error) {

	provider, err := uc.repo.GetProvider(ctx, in.ProviderType, in.RefID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	localStart := in.Start.In(in.Location)
	date := time.Date(
		localStart.Year(), localStart.Month(), localStart.Day(),
		0, 0, 0, 0, time.UTC,
	)

	override, err := uc.repo.GetOverrideForDate(ctx, provider.ID, date)
	if err == nil {
		return uc.windowFits(override.TimeSlots, localStart, in.Start, in.End, in.Location)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	weekly, err := uc.repo.GetWeeklyForDay(ctx, provider.ID, weekdayOf(localStart))
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !weekly.Enabled {
		return false, nil
	}

	return uc.windowFits(weekly.TimeSlots, localStart, in.Start, in.End, in.Location)
}

// windowFits re-anchors every stored slot to the query date and reports
// whether one of them contains the [start,end) window.
func (uc *CheckWindow) windowFits(
	records models.TimeSlotList,
	anchor time.Time,
	start time.Time,
	end time.Time,
	loc *time.Location,
) (bool, error) {

	for _, r := range records {
		slotStartStored, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return false, err
		}
		slotEndStored, err := time.Parse(time.RFC3339, r.EndTime)
		if err != nil {
			return false, err
		}

		slotStart, err := domain.AnchorToUTC(domain.ClockFromUTC(slotStartStored, loc), anchor, loc)
		if err != nil {
			return false, err
		}
		slotEnd, err := domain.AnchorToUTC(domain.ClockFromUTC(slotEndStored, loc), anchor, loc)
		if err != nil {
			return false, err
		}

		if !start.Before(slotStart) && !end.After(slotEnd) {
			return true, nil
		}
	}

	return false, nil
}

func weekdayOf(t time.Time) domain.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return domain.Monday
	case time.Tuesday:
		return domain.Tuesday
	case time.Wednesday:
		return domain.Wednesday
	case time.Thursday:
		return domain.Thursday
	case time.Friday:
		return domain.Friday
	case time.Saturday:
		return domain.Saturday
	default:
		return domain.Sunday
	}
}
