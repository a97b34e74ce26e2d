package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/availability"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

var _ domain.Repository = (*AvailabilityGormRepository)(nil)

// --------------------------------------------------
// Provider anchor row
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetProvider(
	ctx context.Context,
	providerType models.ProviderType,
	refID uint,
) (*models.AvailabilityProvider, error) {

	var p models.AvailabilityProvider
	if err := r.db.WithContext(ctx).
		Where("provider_type = ? AND ref_id = ?", providerType, refID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *AvailabilityGormRepository) CreateProvider(
	ctx context.Context,
	provider *models.AvailabilityProvider,
) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

// --------------------------------------------------
// Schedule children
// --------------------------------------------------

func (r *AvailabilityGormRepository) ReplaceHours(
	ctx context.Context,
	providerID uint,
	weekly []models.WeeklyHour,
	overrides []models.OverrideHour,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("availability_provider_id = ?", providerID).
			Delete(&models.WeeklyHour{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("availability_provider_id = ?", providerID).
			Delete(&models.OverrideHour{}).Error; err != nil {
			return err
		}

		if len(weekly) > 0 {
			if err := tx.Create(&weekly).Error; err != nil {
				return err
			}
		}

		if len(overrides) > 0 {
			if err := tx.Create(&overrides).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *AvailabilityGormRepository) ListWeeklyHours(
	ctx context.Context,
	providerID uint,
) ([]models.WeeklyHour, error) {

	var hours []models.WeeklyHour
	if err := r.db.WithContext(ctx).
		Where("availability_provider_id = ?", providerID).
		Find(&hours).Error; err != nil {
		return nil, err
	}

	return hours, nil
}

func (r *AvailabilityGormRepository) ListOverrideHours(
	ctx context.Context,
	providerID uint,
) ([]models.OverrideHour, error) {

	var hours []models.OverrideHour
	if err := r.db.WithContext(ctx).
		Where("availability_provider_id = ?", providerID).
		Order("date ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}

	return hours, nil
}

// --------------------------------------------------
// Point lookups for window checks
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetOverrideForDate(
	ctx context.Context,
	providerID uint,
	date time.Time,
) (*models.OverrideHour, error) {

	var oh models.OverrideHour
	if err := r.db.WithContext(ctx).
		Where("availability_provider_id = ? AND date = ?", providerID, date).
		First(&oh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &oh, nil
}

func (r *AvailabilityGormRepository) GetWeeklyForDay(
	ctx context.Context,
	providerID uint,
	day domain.Weekday,
) (*models.WeeklyHour, error) {

	var wh models.WeeklyHour
	if err := r.db.WithContext(ctx).
		Where("availability_provider_id = ? AND day_of_week = ?", providerID, string(day)).
		First(&wh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &wh, nil
}
