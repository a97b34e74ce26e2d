package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/referral"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type ReferralGormRepository struct {
	db *gorm.DB
}

func NewReferralGormRepository(db *gorm.DB) *ReferralGormRepository {
	return &ReferralGormRepository{db: db}
}

var _ domain.Repository = (*ReferralGormRepository)(nil)

func (r *ReferralGormRepository) SubmitDraft(
	ctx context.Context,
	organizationID uint,
	state domain.DraftState,
) (*models.Referral, error) {

	var ref *models.Referral

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimant, err := findOrCreateClaimant(tx, organizationID, state.Claimant)
		if err != nil {
			return err
		}

		ref = &models.Referral{
			OrganizationID: organizationID,
			ClaimantID:     claimant.ID,

			InsuranceCompany: state.Insurance.Company,
			ClaimNumber:      state.Insurance.ClaimNumber,
			AdjusterName:     state.Insurance.AdjusterName,
			AdjusterEmail:    state.Insurance.AdjusterEmail,

			LawFirm:    state.Legal.LawFirm,
			FileNumber: state.Legal.FileNumber,
			LawyerName: state.Legal.LawyerName,
			Side:       state.Legal.Side,

			ExamTypeID:          state.Examination.ExamTypeID,
			PreferredDate:       state.Examination.PreferredDate,
			InterpreterLanguage: state.Examination.InterpreterLanguage,
			NeedsChaperone:      state.Examination.NeedsChaperone,
			NeedsTransport:      state.Examination.NeedsTransport,

			Status: "submitted",
			Notes:  state.Examination.Notes,
		}

		return tx.Create(ref).Error
	})
	if err != nil {
		return nil, err
	}

	return ref, nil
}

// findOrCreateClaimant deduplicates intake claimants by phone inside the
// submit transaction.
func findOrCreateClaimant(
	tx *gorm.DB,
	organizationID uint,
	step domain.ClaimantStep,
) (*models.Claimant, error) {

	var claimant models.Claimant
	err := tx.
		Where("organization_id = ? AND phone = ?", organizationID, step.Phone).
		First(&claimant).Error

	if err == nil {
		return &claimant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	claimant = models.Claimant{
		OrganizationID: organizationID,
		Name:           step.Name,
		Phone:          step.Phone,
		Email:          step.Email,
		DateOfBirth:    step.DateOfBirth,
		Address:        step.Address,
	}

	if err := tx.Create(&claimant).Error; err != nil {
		return nil, err
	}

	return &claimant, nil
}

func (r *ReferralGormRepository) GetReferral(
	ctx context.Context,
	organizationID uint,
	referralID uint,
) (*models.Referral, error) {

	var ref models.Referral
	if err := r.db.WithContext(ctx).
		Preload("Claimant").
		Where("id = ? AND organization_id = ?", referralID, organizationID).
		First(&ref).Error; err != nil {
		return nil, err
	}

	return &ref, nil
}

func (r *ReferralGormRepository) ListReferrals(
	ctx context.Context,
	organizationID uint,
	status string,
) ([]models.Referral, error) {

	q := r.db.WithContext(ctx).
		Preload("Claimant").
		Where("organization_id = ?", organizationID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var list []models.Referral
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}
