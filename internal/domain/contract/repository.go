package contract

import (
	"context"

	"github.com/ThriveAssessments/case-manager/internal/models"
)

type Repository interface {
	// -------- Organization (thrive.* render values) --------
	GetOrganizationByID(
		ctx context.Context,
		id uint,
	) (*models.Organization, error)

	// -------- Template --------
	GetTemplate(
		ctx context.Context,
		organizationID uint,
		templateID uint,
	) (*models.ContractTemplate, error)

	// -------- Fee structure (Variables preloaded) --------
	GetFeeStructure(
		ctx context.Context,
		organizationID uint,
		feeStructureID uint,
	) (*models.FeeStructure, error)

	ListFeeStructures(
		ctx context.Context,
		organizationID uint,
	) ([]models.FeeStructure, error)

	// -------- Contract --------
	CreateContract(
		ctx context.Context,
		ct *models.Contract,
	) error

	GetContract(
		ctx context.Context,
		organizationID uint,
		contractID uint,
	) (*models.Contract, error)

	UpdateContract(
		ctx context.Context,
		ct *models.Contract,
	) error
}

// DocumentStore is the object-storage collaborator holding rendered contract
// documents and signature images.
type DocumentStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
