package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	provider *models.AvailabilityProvider
	weekly   []models.WeeklyHour
	override []models.OverrideHour

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetProvider(
	_ context.Context,
	providerType models.ProviderType,
	refID uint,
) (*models.AvailabilityProvider, error) {
	if r.provider != nil && r.provider.ProviderType == providerType && r.provider.RefID == refID {
		return r.provider, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) CreateProvider(
	_ context.Context,
	provider *models.AvailabilityProvider,
) error {
	r.nextID++
	provider.ID = r.nextID
	r.provider = provider
	return nil
}

func (r *fakeRepo) ReplaceHours(
	_ context.Context,
	providerID uint,
	weekly []models.WeeklyHour,
	overrides []models.OverrideHour,
) error {
	r.weekly = weekly
	r.override = overrides
	return nil
}

func (r *fakeRepo) ListWeeklyHours(_ context.Context, _ uint) ([]models.WeeklyHour, error) {
	return r.weekly, nil
}

func (r *fakeRepo) ListOverrideHours(_ context.Context, _ uint) ([]models.OverrideHour, error) {
	return r.override, nil
}

func (r *fakeRepo) GetOverrideForDate(
	_ context.Context,
	_ uint,
	date time.Time,
) (*models.OverrideHour, error) {
	for i := range r.override {
		if r.override[i].Date.Equal(date) {
			return &r.override[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) GetWeeklyForDay(
	_ context.Context,
	_ uint,
	day domain.Weekday,
) (*models.WeeklyHour, error) {
	for i := range r.weekly {
		if r.weekly[i].DayOfWeek == string(day) {
			return &r.weekly[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// ======================================================
// HELPERS
// ======================================================

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func toronto(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)
	return loc
}

func allWeekdays(start, end string) domain.WeeklyState {
	state := domain.WeeklyState{}
	for _, day := range domain.WeekdayOrder {
		state[day] = domain.DaySchedule{
			Enabled:   true,
			TimeSlots: []domain.TimeSlot{{StartTime: start, EndTime: end}},
		}
	}
	return state
}

// ======================================================
// SAVE / GET
// ======================================================

func TestSaveComplete_CreatesProviderLazily(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewSaveCompleteAvailability(repo, testDispatcher())

	err := uc.Execute(context.Background(), SaveCompleteInput{
		OrganizationID: 1,
		UserID:         7,
		ProviderType:   models.ProviderExaminer,
		RefID:          42,
		WeeklyHours:    allWeekdays("9:00 AM", "5:00 PM"),
		Location:       toronto(t),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.provider)
	assert.Equal(t, models.ProviderExaminer, repo.provider.ProviderType)
	assert.Equal(t, uint(42), repo.provider.RefID)
	assert.Len(t, repo.weekly, 7)
}

func TestSaveComplete_RejectsInvalidSlots(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewSaveCompleteAvailability(repo, testDispatcher())

	err := uc.Execute(context.Background(), SaveCompleteInput{
		OrganizationID: 1,
		ProviderType:   models.ProviderExaminer,
		RefID:          42,
		WeeklyHours: domain.WeeklyState{
			domain.Monday: {
				Enabled: true,
				TimeSlots: []domain.TimeSlot{
					{StartTime: "5:00 PM", EndTime: "9:00 AM"},
				},
			},
		},
		Location: toronto(t),
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_time_slots"))
	assert.Nil(t, repo.provider)
}

func TestSaveComplete_RejectsUnknownProviderType(t *testing.T) {
	uc := NewSaveCompleteAvailability(&fakeRepo{}, testDispatcher())

	err := uc.Execute(context.Background(), SaveCompleteInput{
		ProviderType: "BARISTA",
		RefID:        1,
		Location:     time.UTC,
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_provider_type"))
}

func TestGetComplete_NoProviderMeansNoData(t *testing.T) {
	uc := NewGetCompleteAvailability(&fakeRepo{})

	got, err := uc.Execute(context.Background(), models.ProviderExaminer, 42, time.UTC)
	require.NoError(t, err)

	assert.False(t, got.HasData)
	assert.Empty(t, got.WeeklyHours)
	assert.Empty(t, got.OverrideHours)
}

func TestSaveThenGet_RoundTripsWallClock(t *testing.T) {
	loc := toronto(t)
	repo := &fakeRepo{}

	saveUC := NewSaveCompleteAvailability(repo, testDispatcher())
	getUC := NewGetCompleteAvailability(repo)

	weekly := domain.WeeklyState{
		domain.Monday: {
			Enabled: true,
			TimeSlots: []domain.TimeSlot{
				{StartTime: "9:00 AM", EndTime: "5:00 PM"},
			},
		},
	}
	overrides := []domain.OverrideEntry{
		{Date: "2026-06-15", TimeSlots: []domain.TimeSlot{
			{StartTime: "10:00 AM", EndTime: "2:00 PM"},
		}},
		{Date: "2026-06-16"},
	}

	err := saveUC.Execute(context.Background(), SaveCompleteInput{
		OrganizationID: 1,
		ProviderType:   models.ProviderInterpreter,
		RefID:          9,
		WeeklyHours:    weekly,
		OverrideHours:  overrides,
		Location:       loc,
	})
	require.NoError(t, err)

	got, err := getUC.Execute(context.Background(), models.ProviderInterpreter, 9, loc)
	require.NoError(t, err)

	assert.True(t, got.HasData)

	monday := got.WeeklyHours[domain.Monday]
	require.Len(t, monday.TimeSlots, 1)
	assert.Equal(t, "9:00 AM", monday.TimeSlots[0].StartTime)
	assert.Equal(t, "5:00 PM", monday.TimeSlots[0].EndTime)

	require.Len(t, got.OverrideHours, 2)
	assert.Equal(t, "2026-06-15", got.OverrideHours[0].Date)
	require.Len(t, got.OverrideHours[0].TimeSlots, 1)
	assert.Equal(t, "10:00 AM", got.OverrideHours[0].TimeSlots[0].StartTime)
	assert.Empty(t, got.OverrideHours[1].TimeSlots)
}

// ======================================================
// CHECK WINDOW
// ======================================================

func seedSchedule(
	t *testing.T,
	repo *fakeRepo,
	loc *time.Location,
	weekly domain.WeeklyState,
	overrides []domain.OverrideEntry,
) {
	t.Helper()

	err := NewSaveCompleteAvailability(repo, testDispatcher()).
		Execute(context.Background(), SaveCompleteInput{
			OrganizationID: 1,
			ProviderType:   models.ProviderExaminer,
			RefID:          42,
			WeeklyHours:    weekly,
			OverrideHours:  overrides,
			Location:       loc,
		})
	require.NoError(t, err)
}

func window(t *testing.T, loc *time.Location, date, from, to string) (time.Time, time.Time) {
	t.Helper()

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+from, loc)
	require.NoError(t, err)
	end, err := time.ParseInLocation("2006-01-02 15:04", date+" "+to, loc)
	require.NoError(t, err)

	return start.UTC(), end.UTC()
}

func TestCheckWindow_NoProvider(t *testing.T) {
	uc := NewCheckWindow(&fakeRepo{})

	ok, err := uc.Execute(context.Background(), CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        42,
		Start:        time.Now().UTC(),
		End:          time.Now().UTC().Add(time.Hour),
		Location:     time.UTC,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckWindow_WeeklySchedule(t *testing.T) {
	loc := toronto(t)
	repo := &fakeRepo{}
	seedSchedule(t, repo, loc, allWeekdays("9:00 AM", "5:00 PM"), nil)

	uc := NewCheckWindow(repo)

	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"inside slot", "10:00", "11:00", true},
		{"exact slot bounds", "09:00", "17:00", true},
		{"starts before opening", "08:30", "10:00", false},
		{"ends after closing", "16:30", "17:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := window(t, loc, "2026-06-15", tc.from, tc.to)

			ok, err := uc.Execute(context.Background(), CheckWindowInput{
				ProviderType: models.ProviderExaminer,
				RefID:        42,
				Start:        start,
				End:          end,
				Location:     loc,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestCheckWindow_DisabledDay(t *testing.T) {
	loc := toronto(t)
	repo := &fakeRepo{}

	weekly := allWeekdays("9:00 AM", "5:00 PM")
	weekly[domain.Monday] = domain.DaySchedule{Enabled: false}
	seedSchedule(t, repo, loc, weekly, nil)

	// 2026-06-15 is a Monday.
	start, end := window(t, loc, "2026-06-15", "10:00", "11:00")

	ok, err := NewCheckWindow(repo).Execute(context.Background(), CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        42,
		Start:        start,
		End:          end,
		Location:     loc,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckWindow_OverrideSupersedesWeekly(t *testing.T) {
	loc := toronto(t)
	repo := &fakeRepo{}

	overrides := []domain.OverrideEntry{
		{Date: "2026-06-15", TimeSlots: []domain.TimeSlot{
			{StartTime: "1:00 PM", EndTime: "3:00 PM"},
		}},
	}
	seedSchedule(t, repo, loc, allWeekdays("9:00 AM", "5:00 PM"), overrides)

	uc := NewCheckWindow(repo)

	// Morning fits the weekly schedule but the override replaces it.
	start, end := window(t, loc, "2026-06-15", "10:00", "11:00")
	ok, err := uc.Execute(context.Background(), CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        42,
		Start:        start,
		End:          end,
		Location:     loc,
	})
	require.NoError(t, err)
	assert.False(t, ok)

	// The override's own slot works.
	start, end = window(t, loc, "2026-06-15", "13:00", "14:00")
	ok, err = uc.Execute(context.Background(), CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        42,
		Start:        start,
		End:          end,
		Location:     loc,
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckWindow_EmptyOverrideClosesDay(t *testing.T) {
	loc := toronto(t)
	repo := &fakeRepo{}

	overrides := []domain.OverrideEntry{{Date: "2026-06-15"}}
	seedSchedule(t, repo, loc, allWeekdays("9:00 AM", "5:00 PM"), overrides)

	start, end := window(t, loc, "2026-06-15", "10:00", "11:00")

	ok, err := NewCheckWindow(repo).Execute(context.Background(), CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        42,
		Start:        start,
		End:          end,
		Location:     loc,
	})
	require.NoError(t, err)
	assert.False(t, ok)

	// The weekly schedule still applies to the next day.
	start, end = window(t, loc, "2026-06-16", "10:00", "11:00")
	ok, err = NewCheckWindow(repo).Execute(context.Background(), CheckWindowInput{
		ProviderType: models.ProviderExaminer,
		RefID:        42,
		Start:        start,
		End:          end,
		Location:     loc,
	})
	require.NoError(t, err)
	assert.True(t, ok)
}
