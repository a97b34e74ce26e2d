package availability

import (
	"context"
	"errors"
	"time"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

// ErrNotFound is returned when no record backs a lookup; callers use it to
// tell "never configured" apart from infrastructure failures.
var ErrNotFound = errors.New("availability record not found")

type Repository interface {
	// -------- Provider anchor row --------
	GetProvider(
		ctx context.Context,
		providerType models.ProviderType,
		refID uint,
	) (*models.AvailabilityProvider, error)

	CreateProvider(
		ctx context.Context,
		provider *models.AvailabilityProvider,
	) error

	// -------- Schedule children --------

	// ReplaceHours deletes all weekly and override children of the provider
	// and inserts the supplied sets in one transaction.
	ReplaceHours(
		ctx context.Context,
		providerID uint,
		weekly []models.WeeklyHour,
		overrides []models.OverrideHour,
	) error

	ListWeeklyHours(
		ctx context.Context,
		providerID uint,
	) ([]models.WeeklyHour, error)

	ListOverrideHours(
		ctx context.Context,
		providerID uint,
	) ([]models.OverrideHour, error)

	// -------- Point lookups for window checks --------
	GetOverrideForDate(
		ctx context.Context,
		providerID uint,
		date time.Time,
	) (*models.OverrideHour, error)

	GetWeeklyForDay(
		ctx context.Context,
		providerID uint,
		day Weekday,
	) (*models.WeeklyHour, error)
}
