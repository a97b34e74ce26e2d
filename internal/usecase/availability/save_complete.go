package availability

import (
	"context"
	"errors"
	"time"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveCompleteInput struct {
	OrganizationID uint
	UserID         uint

	ProviderType models.ProviderType
	RefID        uint

	WeeklyHours   domain.WeeklyState
	OverrideHours []domain.OverrideEntry

	Location *time.Location
}

// ======================================================
// USE CASE
// ======================================================

// SaveCompleteAvailability replaces a provider's entire schedule: the anchor
// row is resolved or lazily created, all weekly and override children are
// deleted and the supplied sets are re-inserted with each wall-clock time
// converted to a UTC instant. Weekly slots anchor at today, override slots at
// their own date, both in the organization's timezone.
type SaveCompleteAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveCompleteAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SaveCompleteAvailability {
	return &SaveCompleteAvailability{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveCompleteAvailability) Execute(
	ctx context.Context,
	in SaveCompleteInput,
) error {

	if !in.ProviderType.Valid() {
		return httperr.ErrBusiness("invalid_provider_type")
	}

	if r := domain.ValidateTimeSlots(in.WeeklyHours, in.OverrideHours); !r.IsValid {
		return httperr.ErrBusiness("invalid_time_slots")
	}

	provider, err := uc.repo.GetProvider(ctx, in.ProviderType, in.RefID)
	if errors.Is(err, domain.ErrNotFound) {
		provider = &models.AvailabilityProvider{
			OrganizationID: in.OrganizationID,
			ProviderType:   in.ProviderType,
			RefID:          in.RefID,
		}
		if err := uc.repo.CreateProvider(ctx, provider); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	today := time.Now().In(in.Location)

	var weekly []models.WeeklyHour
	for _, entry := range domain.WeeklyStateToArray(in.WeeklyHours) {
		slots, err := convertSlotsToUTC(entry.TimeSlots, today, in.Location)
		if err != nil {
			return httperr.ErrBusiness("invalid_time_slots")
		}
		weekly = append(weekly, models.WeeklyHour{
			AvailabilityProviderID: provider.ID,
			DayOfWeek:              string(entry.DayOfWeek),
			Enabled:                entry.Enabled,
			TimeSlots:              slots,
		})
	}

	var overrides []models.OverrideHour
	for _, entry := range in.OverrideHours {
		anchor, err := time.ParseInLocation("2006-01-02", entry.Date, in.Location)
		if err != nil {
			return httperr.ErrBusiness("invalid_override_date")
		}
		slots, err := convertSlotsToUTC(entry.TimeSlots, anchor, in.Location)
		if err != nil {
			return httperr.ErrBusiness("invalid_time_slots")
		}
		overrides = append(overrides, models.OverrideHour{
			AvailabilityProviderID: provider.ID,
			Date:                   dateOnly(anchor),
			TimeSlots:              slots,
		})
	}

	if err := uc.repo.ReplaceHours(ctx, provider.ID, weekly, overrides); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.UserID,
		Action:         "availability_updated",
		Entity:         "availability_provider",
		EntityID:       &provider.ID,
		Metadata: map[string]any{
			"provider_type": in.ProviderType,
			"ref_id":        in.RefID,
		},
	})

	return nil
}

func convertSlotsToUTC(
	slots []domain.TimeSlot,
	anchor time.Time,
	loc *time.Location,
) (models.TimeSlotList, error) {

	out := make(models.TimeSlotList, 0, len(slots))
	for _, s := range slots {
		start, err := domain.AnchorToUTC(s.StartTime, anchor, loc)
		if err != nil {
			return nil, err
		}
		end, err := domain.AnchorToUTC(s.EndTime, anchor, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, models.TimeSlotRecord{
			StartTime: start.Format(time.RFC3339),
			EndTime:   end.Format(time.RFC3339),
		})
	}
	return out, nil
}

// dateOnly keeps the calendar date as a UTC midnight for the date column.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
