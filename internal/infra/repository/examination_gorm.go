package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/examination"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type ExaminationGormRepository struct {
	db *gorm.DB
}

func NewExaminationGormRepository(db *gorm.DB) *ExaminationGormRepository {
	return &ExaminationGormRepository{db: db}
}

var _ domain.Repository = (*ExaminationGormRepository)(nil)

// --------------------------------------------------
// Organization
// --------------------------------------------------

func (r *ExaminationGormRepository) GetOrganizationByID(
	ctx context.Context,
	id uint,
) (*models.Organization, error) {

	var org models.Organization
	if err := r.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, err
	}

	return &org, nil
}

// --------------------------------------------------
// Exam type
// --------------------------------------------------

func (r *ExaminationGormRepository) GetExamType(
	ctx context.Context,
	organizationID uint,
	examTypeID uint,
) (*models.ExamType, error) {

	var et models.ExamType
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", examTypeID, organizationID).
		First(&et).Error; err != nil {
		return nil, err
	}

	return &et, nil
}

// --------------------------------------------------
// Examination
// --------------------------------------------------

func (r *ExaminationGormRepository) CreateExamination(
	ctx context.Context,
	ex *models.Examination,
) error {
	return r.db.WithContext(ctx).Create(ex).Error
}

func (r *ExaminationGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	examinerID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Examination{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"examiner_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			examinerID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *ExaminationGormRepository) GetExaminationForOrg(
	ctx context.Context,
	examinationID uint,
	organizationID uint,
) (*models.Examination, error) {

	var ex models.Examination
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", examinationID, organizationID).
		First(&ex).Error; err != nil {
		return nil, err
	}

	return &ex, nil
}

func (r *ExaminationGormRepository) UpdateExamination(
	ctx context.Context,
	ex *models.Examination,
) error {
	return r.db.WithContext(ctx).Save(ex).Error
}

func (r *ExaminationGormRepository) ListExaminationsForPeriod(
	ctx context.Context,
	organizationID uint,
	start time.Time,
	end time.Time,
) ([]models.Examination, error) {

	var list []models.Examination
	if err := r.db.WithContext(ctx).
		Preload("Referral").
		Preload("Referral.Claimant").
		Preload("Examiner").
		Preload("ExamType").
		Where(
			"organization_id = ? AND start_time >= ? AND start_time < ?",
			organizationID, start, end,
		).
		Order("start_time ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}
