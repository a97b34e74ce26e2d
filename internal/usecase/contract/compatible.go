package contract

import (
	"context"

	domain "github.com/ThriveAssessments/case-manager/internal/domain/contract"
	"github.com/ThriveAssessments/case-manager/internal/httperr"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

type TemplateRequirements struct {
	// Fee keys the template needs; empty means fee-structure selection is
	// optional for this template.
	RequiredFeeVariables []string `json:"required_fee_variables"`

	// contract.* / custom.* keys to collect from the user before creation.
	RequiredUserVariables []string `json:"required_user_variables"`

	FeeStructureOptional bool `json:"fee_structure_optional"`

	CompatibleFeeStructures []models.FeeStructure `json:"compatible_fee_structures"`
}

// ListCompatibleFeeStructures computes everything the contract-creation form
// needs for a template: its placeholder requirements and the fee structures
// that satisfy them.
type ListCompatibleFeeStructures struct {
	repo domain.Repository
}

func NewListCompatibleFeeStructures(repo domain.Repository) *ListCompatibleFeeStructures {
	return &ListCompatibleFeeStructures{repo: repo}
}

func (uc *ListCompatibleFeeStructures) Execute(
	ctx context.Context,
	organizationID uint,
	templateID uint,
) (*TemplateRequirements, error) {

	tpl, err := uc.repo.GetTemplate(ctx, organizationID, templateID)
	if err != nil {
		return nil, httperr.ErrBusiness("template_not_found")
	}

	requiredFee := domain.ExtractRequiredFeeVariables(tpl.HTMLContent)

	structures, err := uc.repo.ListFeeStructures(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	compatible := domain.CompatibleFeeStructures(requiredFee, structures, tpl.HTMLContent)
	if compatible == nil {
		compatible = []models.FeeStructure{}
	}

	return &TemplateRequirements{
		RequiredFeeVariables:    requiredFee.Keys(),
		RequiredUserVariables:   domain.RequiredUserVariables(tpl.HTMLContent).Keys(),
		FeeStructureOptional:    requiredFee.Len() == 0,
		CompatibleFeeStructures: compatible,
	}, nil
}
