package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type CompleteAvailability struct {
	WeeklyHours   domain.WeeklyState     `json:"weeklyHours"`
	OverrideHours []domain.OverrideEntry `json:"overrideHours"`

	// HasData distinguishes "never configured" (false) from "configured with
	// zero availability" (true with empty sets).
	HasData bool `json:"hasData"`
}

type GetCompleteAvailability struct {
	repo domain.Repository
}

func NewGetCompleteAvailability(repo domain.Repository) *GetCompleteAvailability {
	return &GetCompleteAvailability{repo: repo}
}

func (uc *GetCompleteAvailability) Execute(
	ctx context.Context,
	providerType models.ProviderType,
	refID uint,
	loc *time.Location,
) (*CompleteAvailability, error) {

	provider, err := uc.repo.GetProvider(ctx, providerType, refID)
	if errors.Is(err, domain.ErrNotFound) {
		return &CompleteAvailability{
			WeeklyHours:   domain.WeeklyState{},
			OverrideHours: []domain.OverrideEntry{},
			HasData:       false,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	weeklyRows, err := uc.repo.ListWeeklyHours(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	overrideRows, err := uc.repo.ListOverrideHours(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	var weeklyEntries []domain.WeeklyEntry
	for _, row := range weeklyRows {
		slots, err := slotsFromUTC(row.TimeSlots, loc)
		if err != nil {
			return nil, fmt.Errorf("weekly hours %d: %w", row.ID, err)
		}
		weeklyEntries = append(weeklyEntries, domain.WeeklyEntry{
			DayOfWeek: domain.Weekday(row.DayOfWeek),
			Enabled:   row.Enabled,
			TimeSlots: slots,
		})
	}

	overrides := make([]domain.OverrideEntry, 0, len(overrideRows))
	for _, row := range overrideRows {
		slots, err := slotsFromUTC(row.TimeSlots, loc)
		if err != nil {
			return nil, fmt.Errorf("override hours %d: %w", row.ID, err)
		}
		overrides = append(overrides, domain.OverrideEntry{
			Date:      row.Date.Format("2006-01-02"),
			TimeSlots: slots,
		})
	}

	return &CompleteAvailability{
		WeeklyHours:   domain.WeeklyArrayToState(weeklyEntries),
		OverrideHours: overrides,
		HasData:       true,
	}, nil
}

func slotsFromUTC(records models.TimeSlotList, loc *time.Location) ([]domain.TimeSlot, error) {
	out := make([]domain.TimeSlot, 0, len(records))
	for _, r := range records {
		start, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("malformed stored start time %q", r.StartTime)
		}
		end, err := time.Parse(time.RFC3339, r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("malformed stored end time %q", r.EndTime)
		}
		out = append(out, domain.TimeSlot{
			StartTime: domain.ClockFromUTC(start, loc),
			EndTime:   domain.ClockFromUTC(end, loc),
		})
	}
	return out, nil
}
