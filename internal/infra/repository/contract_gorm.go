package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type ContractGormRepository struct {
	db *gorm.DB
}

func NewContractGormRepository(db *gorm.DB) *ContractGormRepository {
	return &ContractGormRepository{db: db}
}

var _ domain.Repository = (*ContractGormRepository)(nil)

// --------------------------------------------------
// Organization
// --------------------------------------------------

func (r *ContractGormRepository) GetOrganizationByID(
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
// Template
// --------------------------------------------------

func (r *ContractGormRepository) GetTemplate(
	ctx context.Context,
	organizationID uint,
	templateID uint,
) (*models.ContractTemplate, error) {

	var tpl models.ContractTemplate
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", templateID, organizationID).
		First(&tpl).Error; err != nil {
		return nil, err
	}

	return &tpl, nil
}

// --------------------------------------------------
// Fee structure
// --------------------------------------------------

func (r *ContractGormRepository) GetFeeStructure(
	ctx context.Context,
	organizationID uint,
	feeStructureID uint,
) (*models.FeeStructure, error) {

	var fs models.FeeStructure
	if err := r.db.WithContext(ctx).
		Preload("Variables").
		Where("id = ? AND organization_id = ?", feeStructureID, organizationID).
		First(&fs).Error; err != nil {
		return nil, err
	}

	return &fs, nil
}

func (r *ContractGormRepository) ListFeeStructures(
	ctx context.Context,
	organizationID uint,
) ([]models.FeeStructure, error) {

	var list []models.FeeStructure
	if err := r.db.WithContext(ctx).
		Preload("Variables").
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

// --------------------------------------------------
// Contract
// --------------------------------------------------

func (r *ContractGormRepository) CreateContract(
	ctx context.Context,
	ct *models.Contract,
) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *ContractGormRepository) GetContract(
	ctx context.Context,
	organizationID uint,
	contractID uint,
) (*models.Contract, error) {

	var ct models.Contract
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", contractID, organizationID).
		First(&ct).Error; err != nil {
		return nil, err
	}

	return &ct, nil
}

func (r *ContractGormRepository) UpdateContract(
	ctx context.Context,
	ct *models.Contract,
) error {
	return r.db.WithContext(ctx).Save(ct).Error
}
